package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pipeline.GroupSize != 3 {
		t.Errorf("Pipeline.GroupSize = %d, want 3", cfg.Pipeline.GroupSize)
	}
	if cfg.Pipeline.Speed != 1.0 {
		t.Errorf("Pipeline.Speed = %v, want 1.0", cfg.Pipeline.Speed)
	}
	if cfg.Pipeline.TempDir != "temp_txt" {
		t.Errorf("Pipeline.TempDir = %q, want %q", cfg.Pipeline.TempDir, "temp_txt")
	}
	if cfg.Pipeline.OutDir != "audio_output" {
		t.Errorf("Pipeline.OutDir = %q, want %q", cfg.Pipeline.OutDir, "audio_output")
	}
	if cfg.OCR.Enabled {
		t.Error("OCR.Enabled = true, want false")
	}
	if cfg.OCR.Columns != 1 {
		t.Errorf("OCR.Columns = %d, want 1", cfg.OCR.Columns)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("OCR.Language = %q, want %q", cfg.OCR.Language, "eng")
	}
	if cfg.OCR.Scale != 3 {
		t.Errorf("OCR.Scale = %v, want 3", cfg.OCR.Scale)
	}
	if cfg.Layout.Model != "publaynet" {
		t.Errorf("Layout.Model = %q, want %q", cfg.Layout.Model, "publaynet")
	}
	if cfg.Layout.MaxDim != 2000 {
		t.Errorf("Layout.MaxDim = %d, want 2000", cfg.Layout.MaxDim)
	}
	if cfg.Quality.MinAlnumRatio != 0.5 {
		t.Errorf("Quality.MinAlnumRatio = %v, want 0.5", cfg.Quality.MinAlnumRatio)
	}
	if cfg.Audio.Voice != "af_heart" {
		t.Errorf("Audio.Voice = %q, want %q", cfg.Audio.Voice, "af_heart")
	}
	if cfg.Audio.Bitrate != "96k" {
		t.Errorf("Audio.Bitrate = %q, want %q", cfg.Audio.Bitrate, "96k")
	}
	if cfg.Logging.Style != "console" {
		t.Errorf("Logging.Style = %q, want %q", cfg.Logging.Style, "console")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[pipeline]
group = 5
speed = 1.25

[ocr]
enabled = true
columns = 2

[layout]
enabled = true
model = "prima"
endpoint = "http://localhost:8001/detect"

[audio]
voice = "af_bella"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pipeline.GroupSize != 5 {
		t.Errorf("Pipeline.GroupSize = %d, want 5", cfg.Pipeline.GroupSize)
	}
	if cfg.Pipeline.Speed != 1.25 {
		t.Errorf("Pipeline.Speed = %v, want 1.25", cfg.Pipeline.Speed)
	}
	if !cfg.OCR.Enabled {
		t.Error("OCR.Enabled = false, want true")
	}
	if cfg.OCR.Columns != 2 {
		t.Errorf("OCR.Columns = %d, want 2", cfg.OCR.Columns)
	}
	if !cfg.Layout.Enabled {
		t.Error("Layout.Enabled = false, want true")
	}
	if cfg.Layout.Model != "prima" {
		t.Errorf("Layout.Model = %q, want %q", cfg.Layout.Model, "prima")
	}
	if cfg.Layout.Endpoint != "http://localhost:8001/detect" {
		t.Errorf("Layout.Endpoint = %q, want the configured URL", cfg.Layout.Endpoint)
	}
	if cfg.Audio.Voice != "af_bella" {
		t.Errorf("Audio.Voice = %q, want %q", cfg.Audio.Voice, "af_bella")
	}

	// Settings the file does not name keep their defaults.
	if cfg.Pipeline.Skip != 0 {
		t.Errorf("Pipeline.Skip = %d, want 0", cfg.Pipeline.Skip)
	}
	if cfg.Pipeline.TempDir != "temp_txt" {
		t.Errorf("Pipeline.TempDir = %q, want %q", cfg.Pipeline.TempDir, "temp_txt")
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("OCR.Language = %q, want %q", cfg.OCR.Language, "eng")
	}
	if cfg.Layout.MaxDim != 2000 {
		t.Errorf("Layout.MaxDim = %d, want 2000", cfg.Layout.MaxDim)
	}
	if cfg.Audio.Model != "prince-canuma/Kokoro-82M" {
		t.Errorf("Audio.Model = %q, want the default model", cfg.Audio.Model)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[pipeline\ngroup = 5\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid TOML, got nil")
	}
}

func TestCatalogDefault(t *testing.T) {
	catalog, err := Default().Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	for _, name := range []string{"publaynet", "prima"} {
		if _, ok := catalog[name]; !ok {
			t.Errorf("Catalog() missing built-in model %q", name)
		}
	}
}

func TestCatalogConfiguredModel(t *testing.T) {
	path := writeConfig(t, `
[layout.models.custom]
threshold = 0.6
text_types = ["Body"]
anchor_types = ["Head"]

[layout.models.custom.labels]
0 = "Body"
1 = "Head"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	spec, ok := catalog["custom"]
	if !ok {
		t.Fatal("Catalog() missing configured model custom")
	}
	if spec.Threshold != 0.6 {
		t.Errorf("Threshold = %v, want 0.6", spec.Threshold)
	}
	if spec.LabelMap[0] != "Body" || spec.LabelMap[1] != "Head" {
		t.Errorf("LabelMap = %v, want class 0 Body and class 1 Head", spec.LabelMap)
	}
	if !spec.HasTextType("Body") {
		t.Error("HasTextType(Body) = false, want true")
	}
	if !spec.HasAnchorType("Head") {
		t.Error("HasAnchorType(Head) = false, want true")
	}

	// Built-ins survive alongside configured models.
	if _, ok := catalog["publaynet"]; !ok {
		t.Error("Catalog() lost built-in model publaynet")
	}
}

func TestCatalogOverridesBuiltin(t *testing.T) {
	path := writeConfig(t, `
[layout.models.publaynet]
threshold = 0.7
text_types = ["Text"]

[layout.models.publaynet.labels]
0 = "Text"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	spec := catalog["publaynet"]
	if spec.Threshold != 0.7 {
		t.Errorf("Threshold = %v, want the configured 0.7", spec.Threshold)
	}
	if len(spec.LabelMap) != 1 {
		t.Errorf("LabelMap has %d entries, want the configured 1", len(spec.LabelMap))
	}
}

func TestCatalogBadClassID(t *testing.T) {
	cfg := Default()
	cfg.Layout.Models = map[string]ModelConfig{
		"broken": {Labels: map[string]string{"zero": "Text"}},
	}

	_, err := cfg.Catalog()
	if err == nil {
		t.Fatal("Catalog() expected error for non-integer class id, got nil")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not name the offending model", err)
	}
}

func TestLayoutTimeout(t *testing.T) {
	s := LayoutSettings{TimeoutSeconds: 90}
	if got := s.Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s", got)
	}
}

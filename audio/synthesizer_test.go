package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeScript installs an executable shell script standing in for an
// external tool
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-tool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

// readRecordedArgs loads the newline-separated args a fake tool captured
func readRecordedArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestDefaultSynthesizerConfig(t *testing.T) {
	config := DefaultSynthesizerConfig()
	if config.Model != "prince-canuma/Kokoro-82M" {
		t.Errorf("Expected Kokoro model, got %q", config.Model)
	}
	if config.Voice != "af_heart" {
		t.Errorf("Expected voice af_heart, got %q", config.Voice)
	}
	if config.LangCode != "a" {
		t.Errorf("Expected lang code a, got %q", config.LangCode)
	}
	if config.Speed != 1.0 {
		t.Errorf("Expected speed 1.0, got %v", config.Speed)
	}
	if config.SampleRate != 24000 {
		t.Errorf("Expected sample rate 24000, got %d", config.SampleRate)
	}
}

func TestSynthesizer_BuildsCommand(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	script := writeScript(t, fmt.Sprintf(`printf '%%s\n' "$@" > %s
prev=""
for a in "$@"; do
  if [ "$prev" = "--file_prefix" ]; then prefix="$a"; fi
  prev="$a"
done
: > "${prefix}.wav"
`, argsFile))

	config := DefaultSynthesizerConfig()
	config.Command = script
	config.BaseArgs = nil
	config.Speed = 1.5

	prefix := filepath.Join(t.TempDir(), "pages_01-03")
	wav, err := NewSynthesizerWithConfig(config).Synthesize(context.Background(), "Hello there.", prefix)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if wav != prefix+".wav" {
		t.Errorf("Synthesize() = %q, want %q", wav, prefix+".wav")
	}
	if _, err := os.Stat(wav); err != nil {
		t.Errorf("expected wav at %s: %v", wav, err)
	}

	want := []string{
		"--model", "prince-canuma/Kokoro-82M",
		"--text", "Hello there.",
		"--voice", "af_heart",
		"--speed", "1.5",
		"--lang_code", "a",
		"--file_prefix", prefix,
		"--audio_format", "wav",
		"--sample_rate", "24000",
		"--join_audio",
	}
	if got := readRecordedArgs(t, argsFile); !reflect.DeepEqual(got, want) {
		t.Errorf("recorded args = %q, want %q", got, want)
	}
}

func TestSynthesizer_NoOutput(t *testing.T) {
	config := DefaultSynthesizerConfig()
	config.Command = writeScript(t, "exit 0\n")
	config.BaseArgs = nil

	prefix := filepath.Join(t.TempDir(), "pages_01-03")
	_, err := NewSynthesizerWithConfig(config).Synthesize(context.Background(), "text", prefix)
	if !errors.Is(err, ErrNoAudio) {
		t.Errorf("Synthesize() error = %v, want ErrNoAudio", err)
	}
}

func TestSynthesizer_CommandFails(t *testing.T) {
	config := DefaultSynthesizerConfig()
	config.Command = writeScript(t, "echo boom >&2\nexit 3\n")
	config.BaseArgs = nil

	prefix := filepath.Join(t.TempDir(), "pages_01-03")
	_, err := NewSynthesizerWithConfig(config).Synthesize(context.Background(), "text", prefix)
	if err == nil {
		t.Fatal("Synthesize() error = nil, want error for failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Synthesize() error = %q, want it to carry the tool output", err)
	}
}

// Package config loads pipeline configuration from TOML files.
//
// Every setting has a default matching the standard command-line behavior,
// so an absent or sparse file is fine: [Load] starts from [Default] and
// lets the file override what it names. The [layout.models] table extends
// or overrides the built-in layout model catalog.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/recital/layout"
)

// Config is the full pipeline configuration
type Config struct {
	Pipeline PipelineSettings `toml:"pipeline"`
	OCR      OCRSettings      `toml:"ocr"`
	Layout   LayoutSettings   `toml:"layout"`
	Quality  QualitySettings  `toml:"quality"`
	Audio    AudioSettings    `toml:"audio"`
	Logging  LoggingSettings  `toml:"logging"`
}

// PipelineSettings control page grouping and output placement
type PipelineSettings struct {
	// GroupSize is the number of pages per output MP3
	GroupSize int `toml:"group"`

	// Skip drops this many pages from the front after numeric sort
	Skip int `toml:"skip"`

	// Speed is the speaking speed multiplier, valid between 0.5 and 2.0
	Speed float64 `toml:"speed"`

	// TempDir is where extracted per-page text files are stored, under a
	// subdirectory named for the PDF
	TempDir string `toml:"tempdir"`

	// OutDir is where generated MP3s are written
	OutDir string `toml:"outdir"`
}

// OCRSettings control the scanned-document path
type OCRSettings struct {
	// Enabled switches extraction from the text layer to rendering and
	// OCR
	Enabled bool `toml:"enabled"`

	// Columns splits each page into this many vertical strips when no
	// layout detection is used
	Columns int `toml:"columns"`

	// HeaderHeight is cropped from the top of each page, in pixels at 72
	// DPI
	HeaderHeight int `toml:"header_height"`

	// FooterHeight is cropped from the bottom of each page, in pixels at
	// 72 DPI
	FooterHeight int `toml:"footer_height"`

	// Language is the Tesseract language string, e.g. "eng" or "eng+fra"
	Language string `toml:"language"`

	// Scale is the render scale; 1.0 is 72 DPI
	Scale float64 `toml:"scale"`

	// StartPage is the first page processed, 0-indexed
	StartPage int `toml:"start_page"`
}

// LayoutSettings control detector-driven region extraction
type LayoutSettings struct {
	// Enabled switches the OCR path from manual column splitting to
	// layout detection
	Enabled bool `toml:"enabled"`

	// Model names the catalog entry to use
	Model string `toml:"model"`

	// Endpoint is the detection service URL; required when Enabled
	Endpoint string `toml:"endpoint"`

	// MaxDim caps the longer image dimension uploaded to the service;
	// zero disables downscaling
	MaxDim int `toml:"max_dim"`

	// TimeoutSeconds bounds one detection request; zero means no timeout
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Models extends or overrides the built-in model catalog
	Models map[string]ModelConfig `toml:"models"`
}

// ModelConfig describes one layout model in configuration form
type ModelConfig struct {
	// Labels maps detector class ids (decimal strings, since TOML keys
	// are strings) to type labels
	Labels map[string]string `toml:"labels"`

	// TextTypes are the labels that carry readable text
	TextTypes []string `toml:"text_types"`

	// AnchorTypes are the labels used to bound the content band
	AnchorTypes []string `toml:"anchor_types"`

	// Threshold is the minimum detection score
	Threshold float64 `toml:"threshold"`
}

// QualitySettings control block filtering
type QualitySettings struct {
	// MinAlnumRatio is the minimum alphanumeric density per block
	MinAlnumRatio float64 `toml:"min_alnum_ratio"`

	// OutlierSigma is the standard-deviation multiple above the mean
	// line length at which a block is rejected
	OutlierSigma float64 `toml:"outlier_sigma"`

	// MinSamples is the baseline size required before the outlier check
	// arms
	MinSamples int `toml:"min_samples"`

	// DisableLengthCheck turns the outlier check off entirely
	DisableLengthCheck bool `toml:"disable_length_check"`
}

// AudioSettings control synthesis and transcoding
type AudioSettings struct {
	// Command is the TTS executable
	Command string `toml:"command"`

	// BaseArgs are prepended before the generated TTS flags
	BaseArgs []string `toml:"base_args"`

	// Model is the TTS model path or repo id
	Model string `toml:"model"`

	// Voice is the voice style
	Voice string `toml:"voice"`

	// LangCode selects the language; "a" is American English
	LangCode string `toml:"lang_code"`

	// SampleRate is the wav sample rate in Hz
	SampleRate int `toml:"sample_rate"`

	// Bitrate is the MP3 bitrate
	Bitrate string `toml:"bitrate"`

	// FFmpeg is the ffmpeg executable
	FFmpeg string `toml:"ffmpeg"`
}

// LoggingSettings control log output
type LoggingSettings struct {
	// Style is "console" or "json"
	Style string `toml:"style"`

	// Level is the minimum level: debug, info, warn, or error
	Level string `toml:"level"`
}

// Default returns the configuration used when no file overrides it
func Default() *Config {
	return &Config{
		Pipeline: PipelineSettings{
			GroupSize: 3,
			Skip:      0,
			Speed:     1.0,
			TempDir:   "temp_txt",
			OutDir:    "audio_output",
		},
		OCR: OCRSettings{
			Enabled:   false,
			Columns:   1,
			Language:  "eng",
			Scale:     3,
			StartPage: 0,
		},
		Layout: LayoutSettings{
			Enabled: false,
			Model:   "publaynet",
			MaxDim:  2000,
		},
		Quality: QualitySettings{
			MinAlnumRatio: 0.5,
			OutlierSigma:  2.0,
			MinSamples:    5,
		},
		Audio: AudioSettings{
			Command:    "python3",
			BaseArgs:   []string{"-m", "mlx_audio.tts.generate"},
			Model:      "prince-canuma/Kokoro-82M",
			Voice:      "af_heart",
			LangCode:   "a",
			SampleRate: 24000,
			Bitrate:    "96k",
			FFmpeg:     "ffmpeg",
		},
		Logging: LoggingSettings{
			Style: "console",
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. Settings the file
// does not name keep their default values.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML configuration: %w", err)
	}
	return cfg, nil
}

// Timeout returns the detection request timeout as a duration
func (s LayoutSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Catalog returns the layout model catalog: the built-in models overlaid
// with any models configured under [layout.models]
func (c *Config) Catalog() (layout.Catalog, error) {
	catalog := layout.DefaultCatalog()
	for name, mc := range c.Layout.Models {
		spec, err := mc.Spec()
		if err != nil {
			return nil, fmt.Errorf("layout model %q: %w", name, err)
		}
		catalog[name] = spec
	}
	return catalog, nil
}

// Spec converts the TOML model description into a layout spec. TOML keys
// are strings, so class ids arrive as decimal strings and are parsed here.
func (m ModelConfig) Spec() (layout.ModelSpec, error) {
	labels := make(map[int]string, len(m.Labels))
	for id, label := range m.Labels {
		n, err := strconv.Atoi(id)
		if err != nil {
			return layout.ModelSpec{}, fmt.Errorf("class id %q is not an integer", id)
		}
		labels[n] = label
	}
	return layout.ModelSpec{
		LabelMap:    labels,
		TextTypes:   m.TextTypes,
		AnchorTypes: m.AnchorTypes,
		Threshold:   m.Threshold,
	}, nil
}

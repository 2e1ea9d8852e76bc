package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoAudio is returned when the synthesis command exits successfully but
// leaves no audio file behind
var ErrNoAudio = errors.New("synthesis produced no audio output")

// SynthesizerConfig holds configuration for the TTS command
type SynthesizerConfig struct {
	// Command is the executable to run
	// Default: "python3"
	Command string

	// BaseArgs are prepended before the generated flags
	// Default: ["-m", "mlx_audio.tts.generate"]
	BaseArgs []string

	// Model is the TTS model path or repo id
	// Default: "prince-canuma/Kokoro-82M"
	Model string

	// Voice is the voice style
	// Default: "af_heart"
	Voice string

	// LangCode selects the language; "a" is American English
	// Default: "a"
	LangCode string

	// Speed is the speaking speed multiplier
	// Default: 1.0
	Speed float64

	// SampleRate is the wav sample rate in Hz
	// Default: 24000
	SampleRate int
}

// DefaultSynthesizerConfig returns sensible default configuration
func DefaultSynthesizerConfig() SynthesizerConfig {
	return SynthesizerConfig{
		Command:    "python3",
		BaseArgs:   []string{"-m", "mlx_audio.tts.generate"},
		Model:      "prince-canuma/Kokoro-82M",
		Voice:      "af_heart",
		LangCode:   "a",
		Speed:      1.0,
		SampleRate: 24000,
	}
}

// Synthesizer renders text to a wav file through an external TTS command.
// Long texts produce multiple clips that the tool joins into one file, so
// each call yields exactly one wav at the requested prefix.
type Synthesizer struct {
	config SynthesizerConfig
}

// NewSynthesizer creates a synthesizer with default configuration
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		config: DefaultSynthesizerConfig(),
	}
}

// NewSynthesizerWithConfig creates a synthesizer with custom configuration
func NewSynthesizerWithConfig(config SynthesizerConfig) *Synthesizer {
	return &Synthesizer{
		config: config,
	}
}

// Synthesize renders text to speech, writing prefix.wav, and returns the
// wav path. A run that exits cleanly without producing the file reports
// ErrNoAudio.
func (s *Synthesizer) Synthesize(ctx context.Context, text, prefix string) (string, error) {
	args := append([]string{}, s.config.BaseArgs...)
	args = append(args,
		"--model", s.config.Model,
		"--text", text,
		"--voice", s.config.Voice,
		"--speed", strconv.FormatFloat(s.config.Speed, 'g', -1, 64),
		"--lang_code", s.config.LangCode,
		"--file_prefix", prefix,
		"--audio_format", "wav",
		"--sample_rate", strconv.Itoa(s.config.SampleRate),
		"--join_audio",
	)

	cmd := exec.CommandContext(ctx, s.config.Command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	wavPath := prefix + ".wav"
	if _, err := os.Stat(wavPath); err != nil {
		return "", fmt.Errorf("%w: expected %s", ErrNoAudio, wavPath)
	}
	return wavPath, nil
}

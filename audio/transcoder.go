package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FFmpegConfig holds configuration for the ffmpeg wrapper
type FFmpegConfig struct {
	// Command is the ffmpeg executable
	// Default: "ffmpeg"
	Command string

	// Bitrate is the MP3 bitrate passed to libmp3lame
	// Default: "96k"
	Bitrate string
}

// DefaultFFmpegConfig returns sensible default configuration
func DefaultFFmpegConfig() FFmpegConfig {
	return FFmpegConfig{
		Command: "ffmpeg",
		Bitrate: "96k",
	}
}

// FFmpeg encodes and concatenates audio files through the ffmpeg command
type FFmpeg struct {
	config FFmpegConfig
}

// NewFFmpeg creates an ffmpeg wrapper with default configuration
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		config: DefaultFFmpegConfig(),
	}
}

// NewFFmpegWithConfig creates an ffmpeg wrapper with custom configuration
func NewFFmpegWithConfig(config FFmpegConfig) *FFmpeg {
	return &FFmpeg{
		config: config,
	}
}

// EncodeMP3 converts a wav file to mp3 at the configured bitrate,
// overwriting any existing output
func (f *FFmpeg) EncodeMP3(ctx context.Context, wavPath, mp3Path string) error {
	cmd := exec.CommandContext(ctx, f.config.Command,
		"-y", "-i", wavPath,
		"-codec:a", "libmp3lame", "-b:a", f.config.Bitrate,
		mp3Path,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mp3 encoding failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Concat losslessly joins mp3 files into one output through the concat
// demuxer. The file list ffmpeg reads from is a temporary file, removed
// when the call returns.
func (f *FFmpeg) Concat(ctx context.Context, files []string, output string) error {
	list, err := os.CreateTemp("", "concat_list_*.txt")
	if err != nil {
		return fmt.Errorf("creating concat list: %w", err)
	}
	defer os.Remove(list.Name())

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			list.Close()
			return fmt.Errorf("resolving %s: %w", file, err)
		}
		if _, err := fmt.Fprintf(list, "file '%s'\n", abs); err != nil {
			list.Close()
			return fmt.Errorf("writing concat list: %w", err)
		}
	}
	if err := list.Close(); err != nil {
		return fmt.Errorf("writing concat list: %w", err)
	}

	cmd := exec.CommandContext(ctx, f.config.Command,
		"-y", "-f", "concat", "-safe", "0",
		"-i", list.Name(),
		"-c", "copy", output,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mp3 concatenation failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

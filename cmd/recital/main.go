package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/recital/config"
	"github.com/tsawler/recital/internal/logging"
)

var version = "0.1.0"

var (
	configPath string
	logStyle   string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recital",
	Short: "Recital - turn PDF documents into spoken audio",
	Long: `Recital converts PDF documents into MP3 audiobooks.

A document moves through three stages:
- split: extract per-page text, from the embedded text layer or via OCR
- group: collect the page files into fixed-size groups
- speak: synthesize each group into a single MP3

The process command runs all three stages; split, speak, and reformat
expose the individual steps.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&logStyle, "log-style", "", "Log style: console, json, noop (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(reformatCmd)
}

// loadConfig reads the configured TOML file, or returns the defaults when
// no file was named.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// newLogger builds the logger from the configuration, with the style and
// level flags taking precedence.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	style := cfg.Logging.Style
	if logStyle != "" {
		style = logStyle
	}
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	return logging.New(style, level)
}

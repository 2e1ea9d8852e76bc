// Package logging creates the zap loggers used across the pipeline.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for the given style and level. Style is "console"
// for human-readable output, "json" for structured output, or "noop" to
// discard everything. An empty style means console; an empty level means
// info.
func New(style, level string) (*zap.Logger, error) {
	logLevel := zapcore.InfoLevel
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logLevel = lvl
	}

	switch style {
	case "noop":
		return zap.NewNop(), nil
	case "json":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(logLevel)
		return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	case "console", "":
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(logLevel)
		return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	default:
		return nil, fmt.Errorf("invalid logging style %q: must be console, json, or noop", style)
	}
}

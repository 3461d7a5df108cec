// ============================================================================
// tuplang - TUPL language tools
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command line loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/tuplang/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: text, json, console or logfmt (default: text)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// NoColor disables console colors
	NoColor bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// NewLogger creates a Foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:   level,
		Format:  format,
		Output:  output,
		Name:    cfg.Name,
		NoColor: cfg.NoColor,
	})
}

// NewSimpleLogger creates a text logger at info level writing to stderr
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

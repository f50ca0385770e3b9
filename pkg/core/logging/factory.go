// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/mdwkit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name tags every entry, usually the command name
	Name string

	// Level is one of trace, debug, info, warn, error, fatal
	Level string

	// Format is one of console, text, json, logfmt
	Format string

	// Output defaults to stderr so stdout stays reserved for results
	Output io.Writer

	// AdditionalOutputs receive a copy of every entry
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatConsole.String(),
	}
}

// NewLogger creates a foundation logger from cfg. Unknown level or format
// names are reported; the returned logger then uses the defaults.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	var firstErr error

	level := mdwlog.DefaultLevel()
	if cfg.Level != "" {
		parsed, err := mdwlog.ParseLevel(cfg.Level)
		if err != nil {
			firstErr = err
		} else {
			level = parsed
		}
	}

	format := mdwlog.FormatConsole
	if cfg.Format != "" {
		parsed, err := mdwlog.ParseFormat(cfg.Format)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		format = parsed
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
	return logger, firstErr
}

// NewRunLogger creates a logger whose entries carry a fresh run ID
func NewRunLogger(cfg LoggerConfig) (*mdwlog.Logger, string, error) {
	logger, err := NewLogger(cfg)
	runID := uuid.NewString()
	return logger.WithCorrelationID(runID), runID, err
}

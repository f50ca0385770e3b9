// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     logging
// Description: Key-value logging on top of the foundation logger
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/mdwkit/foundation/core/log"
)

// Logger wraps the foundation logger with alternating key-value arguments
type Logger struct {
	*mdwlog.Logger
}

// Wrap returns a key-value logger around l
func Wrap(l *mdwlog.Logger) *Logger {
	return &Logger{Logger: l}
}

// With returns a logger that adds the given key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.WithFields(KV(keysAndValues...))}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, KV(keysAndValues...))
}

// Info logs an info message
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, KV(keysAndValues...))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, KV(keysAndValues...))
}

// Error logs an error message
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, KV(keysAndValues...))
}

// KV converts alternating key-value pairs to fields. Non-string keys and a
// trailing key without value are dropped.
func KV(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

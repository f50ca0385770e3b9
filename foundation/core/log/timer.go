// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs the result
//              through the owning logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Reduced to stop and stop-with-error

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs "<operation> failed" at error level with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	level, message := t.level, t.operation+" completed"
	if err != nil {
		level, message = LevelError, t.operation+" failed"
	}

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": durationMillis(elapsed),
		"success":     err == nil,
	})
	t.logger.log(level, message, err, fields)
	return elapsed
}

// IsRunning returns true until the timer is stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

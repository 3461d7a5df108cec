// File: timer.go
// Title: Stage Timer
// Description: Measures the duration of a front end stage and logs it on
//              completion through the owning logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-14 v0.2.0: Single completion path, no checkpoints

package log

import (
	"time"
)

// Timer measures one operation. Only the first Stop* call logs.
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

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil, nil)
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err, Fields{"success": false})
}

// StopWithResult stops the timer and logs the outcome. Failed results are
// logged at warn level or above.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	message := t.operation + " completed successfully"
	level := t.level
	if !success {
		message = t.operation + " completed with errors"
		if level < LevelWarn {
			level = LevelWarn
		}
	}

	extra := Fields{"success": success}
	if result != nil {
		extra["result"] = result
	}
	return t.finish(level, message, nil, extra)
}

func (t *Timer) finish(level Level, message string, err error, extra Fields) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(extra)
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6

	t.logger.log(level, message, err, fields)
	return elapsed
}

// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs the duration
//              together with the outcome.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints
// - 2026-10-15 v0.3.0: Single Stop/Fail pair, no checkpoints

package log

import (
	"time"
)

// Timer is returned by Logger.StartTimer. It is not safe for concurrent use.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	done      bool
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop logs "<operation> completed" at debug level and returns the elapsed
// time. Only the first Stop or Fail logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, " completed", nil)
}

// Fail logs "<operation> failed" with err. Coded errors with low severity
// stay at debug level since they are caused by user input.
func (t *Timer) Fail(err error) time.Duration {
	return t.finish(LevelWarn, " failed", err)
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := time.Since(t.start)
	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Microseconds()) / 1000
	if err != nil && isUserError(err) {
		level = LevelDebug
	}
	t.logger.write(level, t.operation+suffix, err, []Fields{t.fields})
	return elapsed
}

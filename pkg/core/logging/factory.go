// ============================================================================
// sigfig - Significant Figures Engine
// ============================================================================
//
// Package:     logging
// Description: Builds Foundation loggers from configuration and wraps them
//              with a key-value API for the CLI, the servers and the service
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"

	mdwlog "github.com/msto63/sigfig/foundation/core/log"
)

// LoggerConfig is the logging part of the sigfig configuration
type LoggerConfig struct {
	ServiceName string
	// Level is one of trace, debug, info, warn, error
	Level string
	// Format is json or text
	Format string
	// Output defaults to stderr
	Output io.Writer
	// LogFile is appended to in addition to Output when set
	LogFile string
}

// NewLogger creates a Foundation logger. Unknown levels and formats fall
// back to info and json, a log file that cannot be opened is reported on
// stderr and skipped. Caller reporting is on at debug level and below.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil && cfg.Level != "" {
		fmt.Fprintf(os.Stderr, "logging: %v, using info\n", err)
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil && cfg.Format != "" {
		fmt.Fprintf(os.Stderr, "logging: %v, using json\n", err)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging: cannot open %s: %v\n", cfg.LogFile, err)
		} else {
			out = io.MultiWriter(out, f)
		}
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       out,
		Name:         cfg.ServiceName,
		EnableCaller: level <= mdwlog.LevelDebug,
	})
}

// Logger adds key-value logging on top of the Foundation logger:
//
//	logger.Info("HTTP request", "method", r.Method, "status", 200)
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates an info level JSON logger on stderr
func New(name string) *Logger {
	return Wrap(NewLogger(LoggerConfig{ServiceName: name}), name)
}

// Wrap adapts an existing Foundation logger
func Wrap(logger *mdwlog.Logger, name string) *Logger {
	return &Logger{Logger: logger.WithCallerSkip(1), name: name}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithRequestID returns a copy that tags every entry with id
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{Logger: l.Logger.WithRequestID(id), name: l.name}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues))
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues))
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues))
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues))
}

// LogError logs err at the level its severity calls for
func (l *Logger) LogError(err error, keysAndValues ...interface{}) {
	l.Logger.LogError(err, toFields(keysAndValues))
}

// StartTimer starts an operation timer carrying the given key-value pairs
func (l *Logger) StartTimer(operation string, keysAndValues ...interface{}) *mdwlog.Timer {
	t := l.Logger.StartTimer(operation)
	for k, v := range toFields(keysAndValues) {
		t.WithField(k, v)
	}
	return t
}

// toFields pairs up keys and values. Non-string keys and a trailing key
// without value are dropped.
func toFields(keysAndValues []interface{}) mdwlog.Fields {
	if len(keysAndValues) < 2 {
		return nil
	}
	fields := make(mdwlog.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}

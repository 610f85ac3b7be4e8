// File: logger.go
// Title: Logger
// Description: Immutable structured logger. Derived loggers share the
//              output and its write lock, so lines from concurrent
//              requests never interleave.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.3.0: Synchronous writes, severity based LogError

package log

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

// Config configures NewWithConfig
type Config struct {
	Level  Level
	Format Format
	// Output defaults to stderr; stdout carries command results
	Output io.Writer
	Name   string
	// EnableCaller adds file:line of the logging call to every entry
	EnableCaller bool
}

// Logger writes structured entries. All With* methods return a copy.
type Logger struct {
	level     Level
	formatter Formatter
	out       io.Writer
	mu        *sync.Mutex
	name      string
	requestID string
	fields    Fields
	caller    bool
	skip      int
}

// New returns an info level JSON logger on stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo})
}

// NewWithConfig creates a logger from cfg
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:     cfg.Level,
		formatter: newFormatter(cfg.Format),
		out:       out,
		mu:        &sync.Mutex{},
		name:      cfg.Name,
		caller:    cfg.EnableCaller,
	}
}

func (l *Logger) derive(fn func(c *Logger)) *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	fn(&c)
	return &c
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithRequestID returns a copy that tags every entry with a request id
func (l *Logger) WithRequestID(id string) *Logger {
	return l.derive(func(c *Logger) { c.requestID = id })
}

// WithCallerSkip returns a copy that skips n additional stack frames when
// reporting the caller. Wrappers around Logger use it to report their own
// callers.
func (l *Logger) WithCallerSkip(n int) *Logger {
	return l.derive(func(c *Logger) { c.skip += n })
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.write(LevelTrace, msg, nil, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.write(LevelDebug, msg, nil, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.write(LevelInfo, msg, nil, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.write(LevelWarn, msg, nil, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.write(LevelError, msg, nil, fields) }

// LogError logs err at a level derived from its severity: bad input is
// info, unknown severity is warn, everything above is error. Code,
// operation and details of coded errors become fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}
	var coded *mdwerror.Error
	if !stderrors.As(err, &coded) {
		l.write(LevelError, err.Error(), err, fields)
		return
	}

	f := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		f["error_operation"] = op
	}
	level := LevelError
	switch coded.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.write(level, coded.Message(), err, append(fields, f))
}

// StartTimer starts timing operation. The result is logged at debug level
// when the timer stops.
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now(), fields: Fields{}}
}

func (l *Logger) write(level Level, msg string, err error, sets []Fields) {
	if !l.Enabled(level) {
		return
	}
	e := &Entry{
		Time:      time.Now(),
		Level:     level,
		Message:   msg,
		Logger:    l.name,
		RequestID: l.requestID,
		Err:       err,
		Fields:    make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		e.Fields[k] = v
	}
	for _, set := range sets {
		for k, v := range set {
			e.Fields[k] = v
		}
	}
	if l.caller {
		// write, the level method, the caller
		if _, file, line, ok := runtime.Caller(2 + l.skip); ok {
			e.Caller = filepath.Base(file) + ":" + strconv.Itoa(line)
		}
	}

	line, ferr := l.formatter.Format(e)
	if ferr != nil {
		return
	}
	l.mu.Lock()
	_, _ = l.out.Write(line)
	l.mu.Unlock()
}

func isUserError(err error) bool {
	var coded *mdwerror.Error
	return stderrors.As(err, &coded) && coded.Severity() == mdwerror.SeverityLow
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// GetDefault returns the process wide fallback logger used by packages that
// were not handed one
func GetDefault() *Logger {
	defaultOnce.Do(func() { defaultLogger = New() })
	return defaultLogger
}

// File: level.go
// Title: Log Levels
// Description: Severity levels for log entries and their parsing from
//              configuration strings.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-15 v0.3.0: Reduced to the levels sigfig emits

package log

import (
	"fmt"
	"strings"
)

// Level orders log entries by importance. Entries below the logger's
// minimum level are dropped before formatting.
type Level int

const (
	// LevelTrace is used for per-token tracing of the expression engine
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the lower case level name used in JSON output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// tag is the three letter form used by the text formatter
func (l Level) tag() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ParseLevel accepts the long and short level names in any case.
// "warning" is accepted as an alias for warn.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if s == n.long || s == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level %q", s)
}

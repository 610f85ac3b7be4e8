// File: format.go
// Title: Log Formatters
// Description: JSON lines for machines and a compact text form for
//              terminals and log files.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt
// - 2026-10-15 v0.3.0: JSON and text only, error details from coded errors

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	}
	return "unknown"
}

// ParseFormat parses "json" or "text". "console" is kept as an alias for
// text so older configuration files still load.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "console":
		return FormatText, nil
	}
	return FormatJSON, fmt.Errorf("invalid log format %q", s)
}

// Formatter renders an entry as one line including the trailing newline
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

func newFormatter(f Format) Formatter {
	if f == FormatText {
		return &TextFormatter{TimeLayout: "15:04:05"}
	}
	return &JSONFormatter{TimeLayout: time.RFC3339}
}

// JSONFormatter writes one JSON object per entry. Fields are written at the
// top level next to timestamp, level and message.
type JSONFormatter struct {
	TimeLayout string
}

// Format implements Formatter
func (f *JSONFormatter) Format(e *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(e.Fields)+7)
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj["timestamp"] = e.Time.Format(f.TimeLayout)
	obj["level"] = e.Level.String()
	obj["message"] = e.Message
	if e.Logger != "" {
		obj["logger"] = e.Logger
	}
	if e.RequestID != "" {
		obj["request_id"] = e.RequestID
	}
	if e.Caller != "" {
		obj["caller"] = e.Caller
	}
	if e.Err != nil {
		obj["error"] = e.Err.Error()
		// coded errors carry their code and details
		if m, ok := e.Err.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				obj["error_details"] = json.RawMessage(raw)
			}
		}
	}

	line, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter writes "15:04:05 [INF] {logger} (req=id) message [k=v ...]"
type TextFormatter struct {
	TimeLayout string
	// NoTime omits the timestamp, used by tests
	NoTime bool
}

// Format implements Formatter
func (f *TextFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.NoTime {
		b.WriteString(e.Time.Format(f.TimeLayout))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] ", e.Level.tag())
	if e.Logger != "" {
		fmt.Fprintf(&b, "{%s} ", e.Logger)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, "(req=%s) ", e.RequestID)
	}
	b.WriteString(e.Message)

	if len(e.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range e.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Fields[k])
		}
		b.WriteByte(']')
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}
	if e.Caller != "" {
		fmt.Fprintf(&b, " @%s", e.Caller)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

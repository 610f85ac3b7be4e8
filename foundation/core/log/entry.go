// File: entry.go
// Title: Log Entries
// Description: The record handed to formatters and the Fields map used to
//              attach structured values to it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual fields
// - 2026-10-15 v0.3.0: Caller stored as file:line, user context removed

package log

import (
	"sort"
	"time"
)

// Fields holds structured values attached to an entry
type Fields map[string]interface{}

// Keys returns the field names sorted, so text output is stable
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entry is one log record
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Err       error
	// Caller is "file.go:line" when caller reporting is enabled
	Caller string
}

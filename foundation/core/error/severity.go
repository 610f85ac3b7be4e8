// File: severity.go
// Title: Error Severity
// Description: Severity decides how loudly an error is logged.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-15 v0.3.0: Derived from the code unless set explicitly

package error

// Severity of an error
type Severity int

const (
	// SeverityLow is bad user input; logged at info or debug level
	SeverityLow Severity = iota
	// SeverityMedium is the default for errors without a specific code
	SeverityMedium
	// SeverityHigh means sigfig itself is impaired, e.g. the history database
	SeverityHigh
)

// String returns the severity name used in logs
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	}
	return "unknown"
}

func severityOf(c Code) Severity {
	switch {
	case c.userError():
		return SeverityLow
	case c == CodeDatabaseError, c == CodeConfigError, c == CodeInvalidConfig:
		return SeverityHigh
	}
	return SeverityMedium
}

// File: error.go
// Title: Structured Error
// Description: The Error type carried through parser, evaluator, rule engine,
//              history store and servers. Errors compare equal under
//              errors.Is when they carry the same specific code, which lets
//              packages export code carrying sentinels.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-15 v0.3.0: Code based Is, no stack capture

package error

import (
	"encoding/json"
	stderrors "errors"
)

// Error is an error with a code, a severity, the failing operation and
// structured details
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	explicit  bool
	operation string
	details   map[string]interface{}
}

// New creates an error with CodeUnknown and medium severity
func New(message string) *Error {
	return &Error{message: message, code: CodeUnknown, severity: SeverityMedium}
}

// Wrap wraps err. Code, severity, operation and details of a wrapped *Error
// are inherited. Wrap returns nil for a nil err.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(message)
	e.cause = err
	var inner *Error
	if stderrors.As(err, &inner) {
		e.code = inner.code
		e.severity = inner.severity
		e.explicit = inner.explicit
		e.operation = inner.operation
		for k, v := range inner.details {
			e.WithDetail(k, v)
		}
	}
	return e
}

// Error returns "message: cause" for wrapped errors
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error with the same code. Errors with CodeUnknown only
// match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e == t || (t.code != CodeUnknown && e.code == t.code)
}

// WithCode sets the code. The severity follows the code unless it was set
// with WithSeverity.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.explicit {
		e.severity = severityOf(code)
	}
	return e
}

// WithSeverity overrides the severity derived from the code
func (e *Error) WithSeverity(s Severity) *Error {
	e.severity = s
	e.explicit = true
	return e
}

// WithDetail attaches a detail such as the offending input or position
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithOperation names the operation that failed
func (e *Error) WithOperation(op string) *Error {
	e.operation = op
	return e
}

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.message }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// Severity returns the error severity
func (e *Error) Severity() Severity { return e.severity }

// Operation returns the failed operation, if set
func (e *Error) Operation() string { return e.operation }

// Detail returns a single detail
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// MarshalJSON writes code, severity, operation, details and cause. The
// logger uses it for error_details.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := struct {
		Message   string                 `json:"message"`
		Code      Code                   `json:"code"`
		Severity  string                 `json:"severity"`
		Operation string                 `json:"operation,omitempty"`
		Details   map[string]interface{} `json:"details,omitempty"`
		Cause     string                 `json:"cause,omitempty"`
	}{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Operation: e.operation,
		Details:   e.details,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// HasCode reports whether err or any error it wraps has code
func HasCode(err error, code Code) bool {
	return code != CodeUnknown && stderrors.Is(err, &Error{code: code})
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

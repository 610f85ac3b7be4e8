// File: utils.go
// Title: Error Builder and Constructors
// Description: Fluent builder and the constructors shared by mathx, calc,
//              config, the history store and the service.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-15 v0.3.0: Numeric and history constructors

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

// As is errors.As, re-exported so callers need only one errors import
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// ErrorBuilder builds an *mdwerror.Error for a module
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	code      mdwerror.Code
	severity  *mdwerror.Severity
	details   [][2]interface{}
}

// NewErrorBuilder starts an error for module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{module: module}
}

func (b *ErrorBuilder) Operation(op string) *ErrorBuilder {
	b.operation = op
	return b
}

func (b *ErrorBuilder) Message(msg string) *ErrorBuilder {
	b.message = msg
	return b
}

func (b *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	b.message = fmt.Sprintf(format, args...)
	return b
}

// Cause makes the built error wrap cause
func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

func (b *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	b.details = append(b.details, [2]interface{}{key, value})
	return b
}

// Severity overrides the severity the code implies
func (b *ErrorBuilder) Severity(s mdwerror.Severity) *ErrorBuilder {
	b.severity = &s
	return b
}

func (b *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	b.code = code
	return b
}

// Build creates the error. Without a code the module's default code is
// used, without a message "<module>.<operation> failed".
func (b *ErrorBuilder) Build() *mdwerror.Error {
	msg := b.message
	if msg == "" {
		msg = b.module + " operation failed"
		if b.operation != "" {
			msg = fmt.Sprintf("%s.%s failed", b.module, b.operation)
		}
	}

	var err *mdwerror.Error
	if b.cause != nil {
		err = mdwerror.Wrap(b.cause, msg)
	} else {
		err = mdwerror.New(msg)
	}

	code := b.code
	if code == "" {
		code = defaultCode(b.module)
	}
	err.WithCode(code).WithDetail("module", b.module)
	if b.operation != "" {
		err.WithOperation(b.operation)
	}
	if b.severity != nil {
		err.WithSeverity(*b.severity)
	}
	for _, d := range b.details {
		err.WithDetail(d[0].(string), d[1])
	}
	return err
}

// InvalidInput reports input that does not match what operation expects
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input %v, expected %s", input, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange reports a numeric argument outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: %v is out of range [%v, %v]", value, min, max).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// MathxInvalidNumber reports input that is not a finite decimal number
func MathxInvalidNumber(operation, input string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Messagef("invalid number %q", input).
		Code(mdwerror.CodeInvalidNumber).
		Detail("input", input).
		Build()
}

// MathxUnknownOperator reports an operator outside + - * /
func MathxUnknownOperator(operation, op string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Messagef("unknown operator %s", op).
		Code(mdwerror.CodeUnknownOperator).
		Detail("operator", op).
		Build()
}

// HistoryDatabaseError wraps a failure of the history database
func HistoryDatabaseError(operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleHistory).
		Operation(operation).
		Messagef("history %s failed", operation).
		Cause(cause).
		Code(mdwerror.CodeDatabaseError).
		Build()
}

// File: codes.go
// Title: Error Codes
// Description: Codes classifying sigfig failures and their mapping to HTTP
//              and gRPC status codes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.3.0: Numeric and expression codes, gRPC status mapping

package error

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error. Codes are stable strings and appear in API
// responses.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// numeric strings, rounding and the rule engine
	CodeInvalidNumber   Code = "INVALID_NUMBER"
	CodeUnknownOperator Code = "UNKNOWN_OPERATOR"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// expression evaluation
	CodeMismatchedParentheses Code = "MISMATCHED_PARENTHESES"
	CodeInvalidExpression     Code = "INVALID_EXPRESSION"
	CodeEmptyExpression       Code = "EMPTY_EXPRESSION"
	CodeNonFiniteResult       Code = "NON_FINITE_RESULT"
	CodeExpressionTooLong     Code = "EXPRESSION_TOO_LONG"

	// history database
	CodeDatabaseError Code = "DATABASE_ERROR"

	// configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the code as sent to clients
func (c Code) String() string {
	return string(c)
}

// userError reports codes caused by bad input rather than by sigfig
func (c Code) userError() bool {
	switch c {
	case CodeInvalidInput, CodeInvalidNumber, CodeUnknownOperator, CodeValueOutOfRange,
		CodeMismatchedParentheses, CodeInvalidExpression, CodeEmptyExpression,
		CodeNonFiniteResult, CodeExpressionTooLong, CodeNotFound, CodeValidationFailed:
		return true
	}
	return false
}

// HTTPStatus returns the HTTP status for responses carrying this code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeExpressionTooLong:
		return http.StatusRequestEntityTooLarge
	case CodeNonFiniteResult:
		return http.StatusUnprocessableEntity
	case CodeDatabaseError:
		return http.StatusServiceUnavailable
	}
	if c.userError() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code for this code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeNonFiniteResult:
		return codes.OutOfRange
	case CodeDatabaseError:
		return codes.Unavailable
	case CodeUnknown:
		return codes.Unknown
	}
	if c.userError() {
		return codes.InvalidArgument
	}
	return codes.Internal
}

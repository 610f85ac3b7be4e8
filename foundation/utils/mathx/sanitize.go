// File: sanitize.go
// Title: Input Sanitizer and Number Validation
// Description: Normalizes raw user text before any analysis and decides whether
//              it denotes a finite number.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation

package mathx

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/msto63/sigfig/foundation/core/errors"
)

// Sanitize trims raw, removes thousands separators and drops every
// remaining whitespace rune. "  1,234 .5 " becomes "1234.5".
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsValidNumber reports whether raw sanitizes to a numeric string with a
// finite value.
func IsValidNumber(raw string) bool {
	_, err := ParseNumber(raw)
	return err == nil
}

// ParseNumber sanitizes raw and returns its value. Strings outside the numeric
// grammar and values that overflow float64 are rejected.
func ParseNumber(raw string) (float64, error) {
	s := Sanitize(raw)
	if _, ok := ParseNotation(s); !ok {
		return 0, errors.MathxInvalidNumber("parse", raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return 0, errors.MathxInvalidNumber("parse", raw)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.MathxInvalidNumber("parse", raw)
	}
	return v, nil
}

// isRangeError reports a ParseFloat underflow or overflow. Underflow yields a
// usable zero; overflow yields ±Inf and is rejected by the caller.
func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

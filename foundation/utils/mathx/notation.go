// File: notation.go
// Title: Numeric String Grammar
// Description: Decomposes a sanitized numeric string into sign, integer digits,
//              fractional digits and an optional exponent. One scanner replaces
//              the per-case pattern matching of the counting rules.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation
// - 2026-10-15 v0.3.1: Saturate exponents that overflow int

package mathx

import (
	"strconv"
	"strings"
)

// MaxExponent bounds Notation.Exponent. Longer exponents saturate so the
// coefficient still decides the count and DecimalPlaces cannot overflow.
const MaxExponent = 1 << 30

// NotationKind distinguishes plain decimals from scientific notation.
type NotationKind int

const (
	// NotationPlain is a decimal without exponent ("0.0045", "100.")
	NotationPlain NotationKind = iota

	// NotationScientific has an exponent part ("1.20e3")
	NotationScientific
)

// String returns the name of the notation kind
func (k NotationKind) String() string {
	switch k {
	case NotationPlain:
		return "plain"
	case NotationScientific:
		return "scientific"
	default:
		return "unknown"
	}
}

// Notation is the decomposition of a numeric string. For scientific notation
// Integer, Fraction and HasPoint describe the coefficient.
type Notation struct {
	Kind     NotationKind
	Negative bool
	Integer  string // digits before the point, may be empty (".5")
	Fraction string // digits after the point, may be empty ("100.")
	HasPoint bool
	Exponent int // saturated at ±MaxExponent
	// ExponentText is the exponent as written, including its sign
	ExponentText string
}

// Coefficient returns the unsigned coefficient as written.
func (n Notation) Coefficient() string {
	if n.HasPoint {
		return n.Integer + "." + n.Fraction
	}
	return n.Integer
}

// Digits returns all written coefficient digits in order.
func (n Notation) Digits() string {
	return n.Integer + n.Fraction
}

// IsZero reports whether every written coefficient digit is zero.
func (n Notation) IsZero() bool {
	return strings.Trim(n.Digits(), "0") == ""
}

// ParseNotation scans a sanitized numeric string. It returns false when s is
// not of the form [+-]digits[.digits][(e|E)[+-]digits] with at least one
// coefficient digit.
func ParseNotation(s string) (Notation, bool) {
	var n Notation
	i := 0

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		n.Negative = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	n.Integer = s[start:i]

	if i < len(s) && s[i] == '.' {
		n.HasPoint = true
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		n.Fraction = s[start:i]
	}

	if n.Integer == "" && n.Fraction == "" {
		return Notation{}, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		start = i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digitsStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == digitsStart {
			return Notation{}, false
		}
		n.Kind = NotationScientific
		n.Exponent = parseExponent(s[start:i])
		n.ExponentText = s[start:i]
	}

	if i != len(s) {
		return Notation{}, false
	}
	return n, true
}

// Analyze sanitizes raw and parses the result.
func Analyze(raw string) (Notation, bool) {
	return ParseNotation(Sanitize(raw))
}

// parseExponent reads a signed digit string, saturating at ±MaxExponent.
func parseExponent(text string) int {
	exp, err := strconv.Atoi(text)
	switch {
	case err != nil && strings.HasPrefix(text, "-"):
		return -MaxExponent
	case err != nil:
		return MaxExponent
	}
	return min(max(exp, -MaxExponent), MaxExponent)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

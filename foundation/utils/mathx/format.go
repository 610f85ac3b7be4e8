// File: format.go
// Title: Number Formatting
// Description: Shortest round-trip formatting for float64 values and the
//              precision layout used for rounded significant figures.
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
)

// FormatNumber renders v with the fewest digits that parse back to v.
// Plain notation is used for decimal exponents in [-7, 21), exponential
// notation ("1e+21", "1.5e-7") outside. Negative zero renders as "0",
// non-finite values as "NaN", "Infinity" and "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	n := e + 1
	k := len(digits)

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	default:
		return sign + exponential(digits, n-1)
	}
}

// formatPrecision lays out exactly len(digits) significant digits whose
// first digit sits at decimal exponent e.
func formatPrecision(negative bool, digits string, e int) string {
	p := len(digits)
	var out string
	switch {
	case e < -6 || e >= p:
		out = exponential(digits, e)
	case e == p-1:
		out = digits
	case e >= 0:
		out = digits[:e+1] + "." + digits[e+1:]
	default:
		out = "0." + strings.Repeat("0", -(e+1)) + digits
	}
	if negative {
		return "-" + out
	}
	return out
}

func exponential(digits string, e int) string {
	var b strings.Builder
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}

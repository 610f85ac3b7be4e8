// File: sigfig.go
// Title: Significant Figure Counter
// Description: Counts the significant figures of a numeric string under the
//              conventional measurement rules.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation

package mathx

import "strings"

// CountSignificantFigures returns the number of significant figures in raw.
// The sign and, for scientific notation, the exponent never contribute.
// Input that is not a numeric string yields 0.
//
//   - With a decimal point, leading zeros are placeholders and every digit
//     after the first non-zero digit counts ("0.004560" -> 4, "100." -> 3).
//     A zero written with a point counts its fractional digits ("0.00" -> 2),
//     at least 1.
//   - Without a decimal point, leading and trailing zeros are placeholders
//     ("1020" -> 3, "100" -> 1); zero itself counts 1.
func CountSignificantFigures(raw string) int {
	n, ok := Analyze(raw)
	if !ok {
		return 0
	}
	return n.SignificantFigures()
}

// SignificantFigures applies the counting rules to the coefficient of n.
func (n Notation) SignificantFigures() int {
	if n.HasPoint {
		if n.IsZero() {
			return max(len(n.Fraction), 1)
		}
		return len(strings.TrimLeft(n.Digits(), "0"))
	}

	significant := strings.TrimLeft(n.Integer, "0")
	if significant == "" {
		return 1
	}
	return len(strings.TrimRight(significant, "0"))
}

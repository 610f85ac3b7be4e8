// File: places.go
// Title: Decimal Place Extractor
// Description: Determines how many decimal places a numeric string expresses.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation

package mathx

// DecimalPlaces returns the number of decimal places expressed by raw and
// false when raw is not a numeric string. For scientific notation the
// exponent shifts the written point, so the result may be negative:
// "1.20e3" expresses -1 decimal places (tens), the same as "1200" written
// with its last significant zero in the tens position.
func DecimalPlaces(raw string) (int, bool) {
	n, ok := Analyze(raw)
	if !ok {
		return 0, false
	}
	return n.DecimalPlaces(), true
}

// DecimalPlaces returns the decimal places of n.
func (n Notation) DecimalPlaces() int {
	if n.Kind == NotationScientific {
		return len(n.Fraction) - n.Exponent
	}
	return len(n.Fraction)
}

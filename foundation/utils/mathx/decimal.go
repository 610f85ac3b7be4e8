// File: decimal.go
// Title: Exact Decimal Rounding
// Description: Rational backed decimal used to round float64 values exactly.
//              Rounding a float64 through binary arithmetic misplaces ties
//              (2.675 is stored as 2.67499999...), so every rounding step here
//              works on the exact rational value of the input.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-15 v0.3.0: Reduced to exact rounding primitives for significant figures;
//                       rounding now operates on the exact quotient

package mathx

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/msto63/sigfig/foundation/core/errors"
)

// RoundingMode defines how ties and discarded digits are resolved. All
// modes operate on the magnitude, so "up" means away from zero.
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds to the nearest even number (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds 0.5 toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

var roundingModeNames = map[RoundingMode]string{
	RoundingModeHalfUp:   "half_up",
	RoundingModeHalfEven: "half_even",
	RoundingModeHalfDown: "half_down",
	RoundingModeUp:       "up",
	RoundingModeDown:     "down",
}

// String returns the configuration name of the mode
func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode parses a configuration name such as "half_even".
// Hyphens and case are ignored.
func ParseRoundingMode(s string) (RoundingMode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for mode, name := range roundingModeNames {
		if name == norm {
			return mode, nil
		}
	}
	return RoundingModeHalfUp, errors.InvalidInput(errors.ModuleMathx, "parse_rounding_mode", s, "half_up, half_even, half_down, up or down")
}

// Decimal is an exact rational number. The zero value is not usable; create
// values with NewDecimal or NewDecimalFromFloat.
type Decimal struct {
	value *big.Rat
}

// NewDecimal parses a numeric string in the sigfig grammar.
func NewDecimal(s string) (Decimal, error) {
	clean := Sanitize(s)
	if _, ok := ParseNotation(clean); !ok {
		return Decimal{}, errors.MathxInvalidNumber("decimal", s)
	}
	rat, ok := new(big.Rat).SetString(clean)
	if !ok {
		return Decimal{}, errors.MathxInvalidNumber("decimal", s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this for constants only.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromFloat returns the exact value of f. NaN and infinities have
// no rational value and return false.
func NewDecimalFromFloat(f float64) (Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, false
	}
	return Decimal{value: new(big.Rat).SetFloat64(f)}, true
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns true if the decimal is zero
func (d Decimal) IsZero() bool {
	return d.value.Sign() == 0
}

// Abs returns the absolute value
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.value)}
}

// Neg returns the negated value
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.value)}
}

// Compare returns -1, 0 or +1 comparing d to other
func (d Decimal) Compare(other Decimal) int {
	return d.value.Cmp(other.value)
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

// Exponent returns floor(log10(|d|)), the decimal position of the leading
// significant digit. Zero has exponent 0.
func (d Decimal) Exponent() int {
	if d.IsZero() {
		return 0
	}
	abs := new(big.Rat).Abs(d.value)
	f, _ := abs.Float64()
	e := 0
	if f > 0 && !math.IsInf(f, 0) {
		e = int(math.Floor(math.Log10(f)))
	}
	// Log10 may be off by one near powers of ten; settle exactly.
	for abs.Cmp(pow10Rat(e)) < 0 {
		e--
	}
	for abs.Cmp(pow10Rat(e+1)) >= 0 {
		e++
	}
	return e
}

// Round rounds to a multiple of 10^-places. Negative places round to tens,
// hundreds and so on.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	n := d.scaledInt(places, mode)
	r := new(big.Rat).SetInt(n)
	if places >= 0 {
		r.Quo(r, pow10Rat(places))
	} else {
		r.Mul(r, pow10Rat(-places))
	}
	if d.Sign() < 0 {
		r.Neg(r)
	}
	return Decimal{value: r}
}

// StringFixed returns d rounded to places fractional digits with exactly that
// many digits after the point. A result that rounds to zero carries no sign.
func (d Decimal) StringFixed(places int, mode RoundingMode) string {
	if places < 0 {
		places = 0
	}
	digits := d.scaledInt(places, mode).String()
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places+1-len(digits)) + digits
		}
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}
	if d.Sign() < 0 && strings.Trim(digits, "0.") != "" {
		return "-" + digits
	}
	return digits
}

// SignificantDigits rounds d to n significant figures. It returns exactly n
// digits and the exponent of the first one; rounding 9.99 to two figures
// yields ("10", 1). Zero yields n zeros and exponent 0.
func (d Decimal) SignificantDigits(n int, mode RoundingMode) (string, int) {
	if n < 1 {
		n = 1
	}
	if d.IsZero() {
		return strings.Repeat("0", n), 0
	}
	e := d.Exponent()
	m := d.scaledInt(n-1-e, mode)
	if m.Cmp(pow10Int(n)) >= 0 {
		m.Quo(m, big.NewInt(10))
		e++
	}
	return m.String(), e
}

// scaledInt returns round(|d| * 10^places) as an integer.
func (d Decimal) scaledInt(places int, mode RoundingMode) *big.Int {
	scaled := new(big.Rat).Abs(d.value)
	if places >= 0 {
		scaled.Mul(scaled, pow10Rat(places))
	} else {
		scaled.Quo(scaled, pow10Rat(-places))
	}
	return roundQuotient(scaled.Num(), scaled.Denom(), mode)
}

// roundQuotient rounds num/den for num >= 0 and den > 0.
func roundQuotient(num, den *big.Int, mode RoundingMode) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	roundUp := false
	switch mode {
	case RoundingModeDown:
	case RoundingModeUp:
		roundUp = true
	default:
		switch new(big.Int).Lsh(r, 1).Cmp(den) {
		case 1:
			roundUp = true
		case 0:
			switch mode {
			case RoundingModeHalfUp:
				roundUp = true
			case RoundingModeHalfEven:
				roundUp = q.Bit(0) == 1
			}
		}
	}
	if roundUp {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func pow10Int(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// pow10Rat returns 10^e for any integer e.
func pow10Rat(e int) *big.Rat {
	if e >= 0 {
		return new(big.Rat).SetInt(pow10Int(e))
	}
	return new(big.Rat).SetFrac(big.NewInt(1), pow10Int(-e))
}

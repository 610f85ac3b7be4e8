// File: round.go
// Title: Precision Rounder
// Description: Rounds values to a number of significant figures or decimal
//              places and produces both the numeric result and its display
//              string.
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
)

const (
	// MaxPrecision is the largest significant figure count and the largest
	// decimal place count the rounder accepts.
	MaxPrecision = 100

	// plainFixedLimit is the magnitude from which fixed-point rendering
	// falls back to FormatNumber.
	plainFixedLimit = 1e21

	// minDecimalPlaces clamps rounding to negative places. Any finite
	// float64 is below 10^309, so coarser rounding is not observable.
	minDecimalPlaces = -400
)

// RoundStatus tells whether a value was rounded or passed through.
type RoundStatus int

const (
	// RoundStatusOK means Value and Display carry the rounded result
	RoundStatusOK RoundStatus = iota

	// RoundStatusPassthrough means the input was not finite or the
	// precision was out of range; the input is returned unchanged
	RoundStatusPassthrough
)

// String returns the name of the status
func (s RoundStatus) String() string {
	if s == RoundStatusOK {
		return "ok"
	}
	return "passthrough"
}

// Rounded is the outcome of a rounding operation.
type Rounded struct {
	Value   float64
	Display string
	Status  RoundStatus
}

// String returns the display form
func (r Rounded) String() string {
	return r.Display
}

// OK reports whether rounding took place
func (r Rounded) OK() bool {
	return r.Status == RoundStatusOK
}

// Rounder rounds with a fixed RoundingMode. The zero value rounds half away
// from zero.
type Rounder struct {
	Mode RoundingMode
}

// DefaultRounder is used by the package level functions.
var DefaultRounder = Rounder{Mode: RoundingModeHalfUp}

// NewRounder returns a rounder using mode.
func NewRounder(mode RoundingMode) Rounder {
	return Rounder{Mode: mode}
}

// SignificantFigures rounds value to n significant figures. Values that are
// not finite and n outside [1, MaxPrecision] pass through unchanged.
func (r Rounder) SignificantFigures(value float64, n int) Rounded {
	if n < 1 || n > MaxPrecision {
		return passthrough(value)
	}
	d, ok := NewDecimalFromFloat(value)
	if !ok {
		return passthrough(value)
	}

	digits, e := d.SignificantDigits(n, r.Mode)
	display := formatPrecision(d.Sign() < 0, digits, e)
	return Rounded{Value: parseDisplay(display, value), Display: display, Status: RoundStatusOK}
}

// DecimalPlaces rounds value to dp decimal places. For dp >= 0 the display
// has exactly dp fractional digits ("2.50"); for dp < 0 the value is rounded
// to 10^-dp and shown as an integer. Values that are not finite and
// dp > MaxPrecision pass through unchanged.
func (r Rounder) DecimalPlaces(value float64, dp int) Rounded {
	if dp > MaxPrecision {
		return passthrough(value)
	}
	d, ok := NewDecimalFromFloat(value)
	if !ok {
		return passthrough(value)
	}

	if dp >= 0 {
		if math.Abs(value) >= plainFixedLimit {
			return Rounded{Value: value, Display: FormatNumber(value), Status: RoundStatusOK}
		}
		display := d.StringFixed(dp, r.Mode)
		return Rounded{Value: parseDisplay(display, value), Display: display, Status: RoundStatusOK}
	}

	rounded := d.Round(max(dp, minDecimalPlaces), r.Mode).Float64()
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return Rounded{Value: rounded, Display: FormatNumber(rounded), Status: RoundStatusOK}
}

// RoundToSignificantFigures rounds with DefaultRounder.
func RoundToSignificantFigures(value float64, n int) Rounded {
	return DefaultRounder.SignificantFigures(value, n)
}

// RoundToDecimalPlaces rounds with DefaultRounder.
func RoundToDecimalPlaces(value float64, dp int) Rounded {
	return DefaultRounder.DecimalPlaces(value, dp)
}

// FormatRoundedToDecimalPlaces returns the display string of
// RoundToDecimalPlaces.
func FormatRoundedToDecimalPlaces(value float64, dp int) string {
	return RoundToDecimalPlaces(value, dp).Display
}

func passthrough(value float64) Rounded {
	return Rounded{Value: value, Display: FormatNumber(value), Status: RoundStatusPassthrough}
}

func parseDisplay(display string, fallback float64) float64 {
	v, err := strconv.ParseFloat(display, 64)
	if err != nil {
		return fallback
	}
	if v == 0 {
		return 0
	}
	return v
}

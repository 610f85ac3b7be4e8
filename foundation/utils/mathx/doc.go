// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx implements the numeric string semantics of sigfig:
//              sanitizing input, decomposing it into plain or scientific
//              notation, counting significant figures and decimal places,
//              rounding to significant figures or decimal places and combining
//              two measured values under the precision propagation rules.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-15 v0.3.0: Significant figure engine; currency and business functions removed

// Package mathx implements significant figure arithmetic on numeric strings.
//
// Package: mathx
// Title: Significant Figures and Precision Rounding
// Description: All functions are pure and safe for concurrent use. Counting
//              functions never fail: invalid input yields 0 (or ok == false),
//              so they compose in formatting pipelines. Only Combine and
//              ParseNumber return errors.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Numeric strings
//
// Input first passes Sanitize (trim, drop thousands separators and all
// whitespace). The result is accepted by ParseNotation when it matches
//
//	[+-] digits [. digits] [(e|E) [+-] digits]
//
// with at least one digit in the coefficient. A trailing point ("100.") is
// kept and means "decimal point written, fractional part empty".
//
// Counting
//
//	mathx.CountSignificantFigures("0.004560") // 4
//	mathx.CountSignificantFigures("100")      // 1
//	mathx.CountSignificantFigures("100.")     // 3
//	mathx.DecimalPlaces("1.20e3")             // -1, true
//
// Rounding
//
// Rounding is exact: the float64 is converted to a rational and rounded with
// the configured RoundingMode (half away from zero by default). Layout
// follows the usual "precision" formatting: plain notation while the decimal
// exponent is in [-6, n), exponential ("1.2e+5") otherwise.
//
//	mathx.RoundToSignificantFigures(123456, 3).Display // "1.23e+5"
//	mathx.RoundToDecimalPlaces(2.5, 0).Display         // "3"
//	mathx.RoundToDecimalPlaces(1234, -2).Display       // "1200"
//
// Non-finite values and out of range precisions are passed through with
// RoundStatusPassthrough instead of failing.
//
// Combining measurements
//
//	res, _ := mathx.Combine("1.2", "3.45", mathx.OperatorAdd)
//	res.Rounded.Display // "4.7" (least decimal places: 1)
//	res, _ = mathx.Combine("4.5", "2.10", mathx.OperatorMultiply)
//	res.Rounded.Display // "9.5" (least significant figures: 2)
package mathx

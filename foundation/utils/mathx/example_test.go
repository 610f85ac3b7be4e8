// File: example_test.go
// Title: Examples for mathx
// Description: Runnable examples for counting, rounding and combining.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial examples for decimal arithmetic
// - 2026-10-15 v0.3.0: Examples for significant figures

package mathx_test

import (
	"fmt"

	"github.com/msto63/sigfig/foundation/utils/mathx"
)

func ExampleCountSignificantFigures() {
	for _, s := range []string{"0.004560", "100", "100.", "1.20e3"} {
		fmt.Println(s, mathx.CountSignificantFigures(s))
	}
	// Output:
	// 0.004560 4
	// 100 1
	// 100. 3
	// 1.20e3 3
}

func ExampleDecimalPlaces() {
	dp, ok := mathx.DecimalPlaces("1.20e3")
	fmt.Println(dp, ok)
	// Output: -1 true
}

func ExampleRoundToSignificantFigures() {
	fmt.Println(mathx.RoundToSignificantFigures(123456, 3))
	fmt.Println(mathx.RoundToSignificantFigures(0.00012345, 2))
	fmt.Println(mathx.RoundToSignificantFigures(9.99, 2))
	// Output:
	// 1.23e+5
	// 0.00012
	// 10
}

func ExampleRoundToDecimalPlaces() {
	fmt.Println(mathx.RoundToDecimalPlaces(2, 2))
	fmt.Println(mathx.RoundToDecimalPlaces(1234, -2))
	// Output:
	// 2.00
	// 1200
}

func ExampleCombine() {
	res, err := mathx.Combine("1.2", "3.45", mathx.OperatorAdd)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (least %s: %d)\n", res.Expression(), res.Rule, res.Precision)
	// Output: 1.2 + 3.45 = 4.7 (least decimal places: 1)
}

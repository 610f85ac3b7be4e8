// File: example_test.go
// Title: Examples for calc
// Description: Runnable examples for expression evaluation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial examples

package calc_test

import (
	"errors"
	"fmt"

	"github.com/msto63/sigfig/foundation/calc"
)

func ExampleEvaluate() {
	for _, expr := range []string{"2+3*4", "(2+3)*4", "2^3^2", "-2^2"} {
		v, err := calc.Evaluate(expr)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(expr, "=", v)
	}
	// Output:
	// 2+3*4 = 14
	// (2+3)*4 = 20
	// 2^3^2 = 512
	// -2^2 = -4
}

func ExampleEvaluate_error() {
	_, err := calc.Evaluate("(1+2")
	fmt.Println(err, errors.Is(err, calc.ErrMismatchedParentheses))
	// Output: mismatched parentheses true
}

func ExampleCompile() {
	program, _ := calc.Compile("2 * (3 + 4)")
	fmt.Println(program)
	// Output: 2 3 4 + *
}

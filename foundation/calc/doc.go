// File: doc.go
// Title: Package Documentation for calc
// Description: Arithmetic expression evaluation built from the parser and
//              executor packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial command language engine
// - 2026-10-15 v0.2.0: Arithmetic expression evaluator

/*
Package calc evaluates arithmetic expressions.

	v, err := calc.Evaluate("2 + 3 * 4") // 14
	v, err = calc.Evaluate("2^3^2")      // 512
	v, err = calc.Evaluate("-2^2")       // -4

Supported are decimal literals with optional exponent ("1.5e-3", ".5"),
the binary operators + - * / ^, a leading sign and parentheses. Characters
outside that alphabet are ignored. Division by zero is not an error:
Evaluate returns ±Inf or NaN, EvaluateFinite rejects such results.

Failures carry codes of the foundation error package and match the
sentinels of this package with errors.Is:

	if errors.Is(err, calc.ErrMismatchedParentheses) { ... }

The package level functions are pure. Engine adds an input length limit
and debug logging for use in servers.
*/
package calc

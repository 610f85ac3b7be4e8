// File: doc.go
// Title: Expression Executor Package Documentation
// Description: Stack machine that evaluates postfix programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-15 v0.2.0: Value stack machine for postfix programs

/*
Package executor evaluates postfix programs produced by the parser package.

Binary instructions pop the right operand first, then the left one. The
machine does not guard against division by zero or overflow: results follow
IEEE 754 and may be ±Inf or NaN.
*/
package executor

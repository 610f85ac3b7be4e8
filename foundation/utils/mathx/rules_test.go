// File: rules_test.go
// Title: Unit Tests for the Arithmetic Rule Engine
// Description: Tests operator parsing, rule selection and the combination of
//              measured values.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial test implementation

package mathx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input string
		want  Operator
	}{
		{"+", OperatorAdd},
		{"add", OperatorAdd},
		{"-", OperatorSubtract},
		{"−", OperatorSubtract},
		{"SUB", OperatorSubtract},
		{"*", OperatorMultiply},
		{"x", OperatorMultiply},
		{"×", OperatorMultiply},
		{"mul", OperatorMultiply},
		{"/", OperatorDivide},
		{"÷", OperatorDivide},
		{" div ", OperatorDivide},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperator(tt.input)
			if err != nil {
				t.Fatalf("ParseOperator(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOperator(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	_, err := ParseOperator("^")
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownOperator) {
		t.Errorf("ParseOperator(\"^\") error = %v, want code %v", err, mdwerror.CodeUnknownOperator)
	}
}

func TestOperatorSymbols(t *testing.T) {
	tests := []struct {
		op      Operator
		symbol  string
		display string
		rule    Rule
	}{
		{OperatorAdd, "+", "+", RuleDecimalPlaces},
		{OperatorSubtract, "-", "-", RuleDecimalPlaces},
		{OperatorMultiply, "*", "×", RuleSignificantFigures},
		{OperatorDivide, "/", "÷", RuleSignificantFigures},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if tt.op.Symbol() != tt.symbol {
				t.Errorf("Symbol() = %q, want %q", tt.op.Symbol(), tt.symbol)
			}
			if tt.op.Display() != tt.display {
				t.Errorf("Display() = %q, want %q", tt.op.Display(), tt.display)
			}
			if RuleFor(tt.op) != tt.rule {
				t.Errorf("RuleFor() = %v, want %v", RuleFor(tt.op), tt.rule)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		op        Operator
		want      string
		rule      Rule
		precision int
	}{
		{"addition keeps least decimal places", "1.2", "3.45", OperatorAdd, "4.7", RuleDecimalPlaces, 1},
		{"multiplication keeps least sig figs", "4.5", "2.10", OperatorMultiply, "9.5", RuleSignificantFigures, 2},
		{"integer operand", "100", "2.5", OperatorAdd, "103", RuleDecimalPlaces, 0},
		{"scientific operand rounds to tens", "1.20e3", "5", OperatorAdd, "1210", RuleDecimalPlaces, -1},
		{"subtraction", "12.52", "1.2", OperatorSubtract, "11.3", RuleDecimalPlaces, 1},
		{"division", "10.0", "3", OperatorDivide, "3", RuleSignificantFigures, 1},
		{"division keeps trailing zeros", "9.00", "3.00", OperatorDivide, "3.00", RuleSignificantFigures, 3},
		{"separators in input", "1,000.", "2.0", OperatorMultiply, "2.0e+3", RuleSignificantFigures, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Combine(tt.a, tt.b, tt.op)
			if err != nil {
				t.Fatalf("Combine(%q, %q, %v) unexpected error: %v", tt.a, tt.b, tt.op, err)
			}
			if res.Rounded.Display != tt.want {
				t.Errorf("Combine(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.op, res.Rounded.Display, tt.want)
			}
			if res.Rule != tt.rule {
				t.Errorf("Rule = %v, want %v", res.Rule, tt.rule)
			}
			if res.Precision != tt.precision {
				t.Errorf("Precision = %d, want %d", res.Precision, tt.precision)
			}
		})
	}
}

func TestCombineOperands(t *testing.T) {
	res, err := Combine("4.5", "2.10", OperatorMultiply)
	if err != nil {
		t.Fatalf("Combine unexpected error: %v", err)
	}
	if res.A.SignificantFigures != 2 || res.B.SignificantFigures != 3 {
		t.Errorf("operand sig figs = %d, %d, want 2, 3", res.A.SignificantFigures, res.B.SignificantFigures)
	}
	if res.A.DecimalPlaces != 1 || res.B.DecimalPlaces != 2 {
		t.Errorf("operand decimal places = %d, %d, want 1, 2", res.A.DecimalPlaces, res.B.DecimalPlaces)
	}
	if math.Abs(res.Unrounded-9.45) > 1e-12 {
		t.Errorf("Unrounded = %v, want 9.45", res.Unrounded)
	}
	if got := res.Expression(); got != "4.5 × 2.10 = 9.5" {
		t.Errorf("Expression() = %q", got)
	}
}

func TestCombineDivisionByZero(t *testing.T) {
	res, err := Combine("1", "0", OperatorDivide)
	if err != nil {
		t.Fatalf("Combine unexpected error: %v", err)
	}
	if res.Rounded.Status != RoundStatusPassthrough {
		t.Errorf("Status = %v, want passthrough", res.Rounded.Status)
	}
	if res.Rounded.Display != "Infinity" {
		t.Errorf("Display = %q, want %q", res.Rounded.Display, "Infinity")
	}
}

func TestCombineErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   Operator
		code mdwerror.Code
	}{
		{"invalid first operand", "abc", "1", OperatorAdd, mdwerror.CodeInvalidNumber},
		{"invalid second operand", "1", "", OperatorAdd, mdwerror.CodeInvalidNumber},
		{"overflowing operand", "1e999", "1", OperatorMultiply, mdwerror.CodeInvalidNumber},
		{"unknown operator", "1", "2", Operator(9), mdwerror.CodeUnknownOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(tt.a, tt.b, tt.op)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestRounderCombineUsesMode(t *testing.T) {
	res, err := NewRounder(RoundingModeHalfEven).Combine("1.25", "1.0", OperatorMultiply)
	if err != nil {
		t.Fatalf("Combine unexpected error: %v", err)
	}
	if res.Rounded.Display != "1.2" {
		t.Errorf("half_even 1.25 * 1.0 = %q, want %q", res.Rounded.Display, "1.2")
	}
}

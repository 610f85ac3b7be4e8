// File: rules.go
// Title: Arithmetic Rule Engine
// Description: Combines two measured values and rounds the result according to
//              the precision propagation rules: least decimal places for
//              addition and subtraction, least significant figures for
//              multiplication and division.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation

package mathx

import (
	"fmt"
	"strings"

	"github.com/msto63/sigfig/foundation/core/errors"
)

// Operator is one of the four binary operations on measurements.
type Operator int

const (
	OperatorAdd Operator = iota
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

var operatorAliases = map[string]Operator{
	"+": OperatorAdd, "add": OperatorAdd,
	"-": OperatorSubtract, "sub": OperatorSubtract, "−": OperatorSubtract,
	"*": OperatorMultiply, "x": OperatorMultiply, "×": OperatorMultiply, "mul": OperatorMultiply,
	"/": OperatorDivide, "÷": OperatorDivide, "div": OperatorDivide,
}

// ParseOperator accepts the ASCII symbols, the typographic symbols × ÷ −,
// "x" and the names add, sub, mul and div.
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, errors.MathxUnknownOperator("parse_operator", s)
}

// Valid reports whether o is one of the four operators
func (o Operator) Valid() bool {
	return o >= OperatorAdd && o <= OperatorDivide
}

// Symbol returns the ASCII symbol
func (o Operator) Symbol() string {
	switch o {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	default:
		return "?"
	}
}

// Display returns the symbol used in history and explanations
func (o Operator) Display() string {
	switch o {
	case OperatorMultiply:
		return "×"
	case OperatorDivide:
		return "÷"
	default:
		return o.Symbol()
	}
}

// String returns the operator name
func (o Operator) String() string {
	switch o {
	case OperatorAdd:
		return "add"
	case OperatorSubtract:
		return "sub"
	case OperatorMultiply:
		return "mul"
	case OperatorDivide:
		return "div"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Rule names the precision rule applied to a combination.
type Rule int

const (
	// RuleDecimalPlaces keeps the least decimal places (addition, subtraction)
	RuleDecimalPlaces Rule = iota

	// RuleSignificantFigures keeps the least significant figures
	// (multiplication, division)
	RuleSignificantFigures
)

// String returns the rule description
func (r Rule) String() string {
	if r == RuleDecimalPlaces {
		return "decimal places"
	}
	return "significant figures"
}

// RuleFor returns the rule governing op.
func RuleFor(op Operator) Rule {
	if op == OperatorAdd || op == OperatorSubtract {
		return RuleDecimalPlaces
	}
	return RuleSignificantFigures
}

func (o Operator) apply(a, b float64) float64 {
	switch o {
	case OperatorAdd:
		return a + b
	case OperatorSubtract:
		return a - b
	case OperatorMultiply:
		return a * b
	default:
		return a / b
	}
}

// Operand is an analyzed input of Combine.
type Operand struct {
	Input              string
	Value              float64
	SignificantFigures int
	DecimalPlaces      int
}

// CombineResult describes a combination and its rounding.
type CombineResult struct {
	A         Operand
	B         Operand
	Operator  Operator
	Rule      Rule
	Precision int // decimal places or significant figures, depending on Rule
	Unrounded float64
	Rounded   Rounded
}

// Expression returns "A op B = result" using the display symbol.
func (r CombineResult) Expression() string {
	return fmt.Sprintf("%s %s %s = %s", Sanitize(r.A.Input), r.Operator.Display(), Sanitize(r.B.Input), r.Rounded.Display)
}

// Combine applies op to a and b using DefaultRounder.
func Combine(a, b string, op Operator) (CombineResult, error) {
	return DefaultRounder.Combine(a, b, op)
}

// Combine applies op to a and b and rounds the result. Both inputs must be
// valid numbers. Division by zero is not an error: the non-finite result
// passes through the rounder.
func (r Rounder) Combine(a, b string, op Operator) (CombineResult, error) {
	if !op.Valid() {
		return CombineResult{}, errors.MathxUnknownOperator("combine", op.String())
	}
	opA, err := analyzeOperand(a)
	if err != nil {
		return CombineResult{}, err
	}
	opB, err := analyzeOperand(b)
	if err != nil {
		return CombineResult{}, err
	}

	res := CombineResult{
		A:         opA,
		B:         opB,
		Operator:  op,
		Rule:      RuleFor(op),
		Unrounded: op.apply(opA.Value, opB.Value),
	}
	if res.Rule == RuleDecimalPlaces {
		res.Precision = min(opA.DecimalPlaces, opB.DecimalPlaces)
		res.Rounded = r.DecimalPlaces(res.Unrounded, res.Precision)
	} else {
		res.Precision = min(opA.SignificantFigures, opB.SignificantFigures)
		res.Rounded = r.SignificantFigures(res.Unrounded, res.Precision)
	}
	return res, nil
}

func analyzeOperand(raw string) (Operand, error) {
	value, err := ParseNumber(raw)
	if err != nil {
		return Operand{}, err
	}
	n, _ := Analyze(raw)
	return Operand{
		Input:              raw,
		Value:              value,
		SignificantFigures: n.SignificantFigures(),
		DecimalPlaces:      n.DecimalPlaces(),
	}, nil
}

// File: executor_test.go
// Title: Unit Tests for the Postfix Executor
// Description: Tests evaluation, stack underflow and leftover operands.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor tests
// - 2026-10-15 v0.2.0: Stack machine tests

package executor

import (
	"errors"
	"math"
	"testing"

	"github.com/msto63/sigfig/foundation/calc/parser"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

func push(v float64) parser.Instruction {
	return parser.Instruction{Op: parser.OpPush, Value: v}
}

func op(code parser.Opcode) parser.Instruction {
	return parser.Instruction{Op: code}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		program parser.Program
		want    float64
	}{
		{"single value", parser.Program{push(3.14)}, 3.14},
		{"subtraction order", parser.Program{push(8), push(3), op(parser.OpSub)}, 5},
		{"division order", parser.Program{push(8), push(2), op(parser.OpDiv)}, 4},
		{"power", parser.Program{push(2), push(10), op(parser.OpPow)}, 1024},
		{"negation", parser.Program{push(2), op(parser.OpNeg)}, -2},
		{"mixed", parser.Program{push(2), push(3), push(4), op(parser.OpMul), op(parser.OpAdd)}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.program)
			if err != nil {
				t.Fatalf("Run unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunIEEEResults(t *testing.T) {
	v, err := Run(parser.Program{push(1), push(0), op(parser.OpDiv)})
	if err != nil || !math.IsInf(v, 1) {
		t.Errorf("1/0 = %v, %v; want +Inf", v, err)
	}
	v, err = Run(parser.Program{push(0), push(0), op(parser.OpDiv)})
	if err != nil || !math.IsNaN(v) {
		t.Errorf("0/0 = %v, %v; want NaN", v, err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		program parser.Program
		code    mdwerror.Code
	}{
		{"empty program", parser.Program{}, mdwerror.CodeInvalidExpression},
		{"binary underflow", parser.Program{push(1), op(parser.OpAdd)}, mdwerror.CodeInvalidExpression},
		{"unary underflow", parser.Program{op(parser.OpNeg)}, mdwerror.CodeInvalidExpression},
		{"leftover operands", parser.Program{push(1), push(2)}, mdwerror.CodeInvalidExpression},
		{"unknown opcode", parser.Program{push(1), push(2), op(parser.Opcode(42))}, mdwerror.CodeUnknownOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.program)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}

	_, err := Run(parser.Program{push(1), push(2)})
	if !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("error %v does not match ErrInvalidExpression", err)
	}
	if err.Error() != "invalid expression" {
		t.Errorf("message = %q, want %q", err.Error(), "invalid expression")
	}
}

func TestUnknownOperatorMessage(t *testing.T) {
	_, err := Run(parser.Program{push(1), push(2), op(parser.Opcode(42))})
	if err == nil || err.Error() != "unknown operator op(42)" {
		t.Errorf("error = %v, want %q", err, "unknown operator op(42)")
	}
}

func TestTrace(t *testing.T) {
	program, err := parser.Parse("2+3*4")
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	v, steps, err := Trace(program)
	if err != nil {
		t.Fatalf("Trace unexpected error: %v", err)
	}
	if v != 14 {
		t.Errorf("Trace value = %v, want 14", v)
	}
	if len(steps) != len(program) {
		t.Fatalf("got %d steps, want %d", len(steps), len(program))
	}
	last := steps[len(steps)-1]
	if len(last.Stack) != 1 || last.Stack[0] != 14 {
		t.Errorf("final stack = %v, want [14]", last.Stack)
	}
	mul := steps[3]
	if mul.Instruction.Op != parser.OpMul || len(mul.Stack) != 2 || mul.Stack[1] != 12 {
		t.Errorf("step after multiply = %+v", mul)
	}
}

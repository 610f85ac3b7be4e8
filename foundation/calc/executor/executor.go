// File: executor.go
// Title: Postfix Program Executor
// Description: Evaluates postfix programs on a value stack and optionally
//              records every step for explanations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-15 v0.2.0: Stack machine for arithmetic programs with step tracing

package executor

import (
	"math"

	"github.com/msto63/sigfig/foundation/calc/parser"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/foundation/core/errors"
)

// ErrInvalidExpression matches every stack underflow and leftover operand
var ErrInvalidExpression = invalidExpression()

// Step records the stack after one instruction
type Step struct {
	Instruction parser.Instruction
	Stack       []float64
}

// Run evaluates program and returns the single value left on the stack.
func Run(program parser.Program) (float64, error) {
	return run(program, nil)
}

// Trace evaluates program like Run and returns a snapshot of the stack after
// every instruction.
func Trace(program parser.Program) (float64, []Step, error) {
	steps := make([]Step, 0, len(program))
	v, err := run(program, func(in parser.Instruction, stack []float64) {
		steps = append(steps, Step{Instruction: in, Stack: append([]float64(nil), stack...)})
	})
	return v, steps, err
}

func run(program parser.Program, observe func(parser.Instruction, []float64)) (float64, error) {
	stack := make([]float64, 0, len(program))

	for _, in := range program {
		if len(stack) < in.Op.Arity() {
			return 0, invalidExpression().WithDetail("position", in.Token.Position)
		}

		switch in.Op {
		case parser.OpPush:
			stack = append(stack, in.Value)
		case parser.OpNeg:
			stack[len(stack)-1] = -stack[len(stack)-1]
		case parser.OpAdd, parser.OpSub, parser.OpMul, parser.OpDiv, parser.OpPow:
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, apply(in.Op, left, right))
		default:
			return 0, errors.NewErrorBuilder(errors.ModuleCalc).
				Operation("run").
				Messagef("unknown operator %s", in.Op).
				Code(mdwerror.CodeUnknownOperator).
				Severity(mdwerror.SeverityLow).
				Build()
		}

		if observe != nil {
			observe(in, stack)
		}
	}

	if len(stack) != 1 {
		return 0, invalidExpression().WithDetail("stack_size", len(stack))
	}
	return stack[0], nil
}

func apply(op parser.Opcode, left, right float64) float64 {
	switch op {
	case parser.OpAdd:
		return left + right
	case parser.OpSub:
		return left - right
	case parser.OpMul:
		return left * right
	case parser.OpDiv:
		return left / right
	default:
		return math.Pow(left, right)
	}
}

func invalidExpression() *mdwerror.Error {
	return errors.NewErrorBuilder(errors.ModuleCalc).
		Operation("run").
		Message("invalid expression").
		Code(mdwerror.CodeInvalidExpression).
		Severity(mdwerror.SeverityLow).
		Build()
}

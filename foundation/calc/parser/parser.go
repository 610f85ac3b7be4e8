// File: parser.go
// Title: Shunting-Yard Expression Parser
// Description: Reorders expression tokens into a postfix program using the
//              shunting-yard algorithm. Handles precedence, associativity,
//              prefix signs and parenthesis matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: Replaced recursive descent with shunting-yard for arithmetic

package parser

import (
	"fmt"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/foundation/core/errors"
)

// Opcode identifies a postfix instruction
type Opcode int

const (
	OpPush Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
)

// String returns the symbol of the opcode
func (op Opcode) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpNeg:
		return "neg"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Arity returns the number of operands the opcode consumes
func (op Opcode) Arity() int {
	switch op {
	case OpPush:
		return 0
	case OpNeg:
		return 1
	default:
		return 2
	}
}

// Instruction is one step of a postfix program. Value is set for OpPush.
type Instruction struct {
	Op    Opcode
	Value float64
	Token Token
}

// String returns the instruction in postfix notation
func (in Instruction) String() string {
	if in.Op == OpPush {
		return in.Token.Value
	}
	return in.Op.String()
}

// Program is an expression in postfix order
type Program []Instruction

// String returns the program as space separated postfix notation
func (p Program) String() string {
	parts := make([]string, len(p))
	for i, in := range p {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}

// Sentinel errors; errors returned by Parse match them with errors.Is.
var (
	ErrEmptyExpression       = calcError("parse", mdwerror.CodeEmptyExpression, "empty expression")
	ErrMismatchedParentheses = calcError("parse", mdwerror.CodeMismatchedParentheses, "mismatched parentheses")
)

func calcError(operation string, code mdwerror.Code, message string) *mdwerror.Error {
	return errors.NewErrorBuilder(errors.ModuleCalc).
		Operation(operation).
		Message(message).
		Code(code).
		Severity(mdwerror.SeverityLow).
		Build()
}

type operator struct {
	op         Opcode
	precedence int
	rightAssoc bool
	paren      bool
	token      Token
}

var binaryOperators = map[TokenType]operator{
	TokenPlus:  {op: OpAdd, precedence: 1},
	TokenMinus: {op: OpSub, precedence: 1},
	TokenStar:  {op: OpMul, precedence: 2},
	TokenSlash: {op: OpDiv, precedence: 2},
	TokenCaret: {op: OpPow, precedence: 3, rightAssoc: true},
}

var negation = operator{op: OpNeg, precedence: 3, rightAssoc: true}

// Parse filters and tokenizes expr and compiles it to a postfix program.
func Parse(expr string) (Program, error) {
	return ParseTokens(TokenizeInput(expr))
}

// ParseTokens compiles a token stream to a postfix program. A '+' or '-' at
// the start, after an operator or after '(' is a sign: '+' is dropped and
// '-' becomes OpNeg. Operand counts are not checked here; the executor
// rejects programs that underflow its stack.
func ParseTokens(tokens []Token) (Program, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	program := make(Program, 0, len(tokens))
	var stack []operator
	prefix := true

	for _, tok := range tokens {
		switch {
		case tok.Type == TokenNumber:
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil && !isRange(err) {
				return nil, invalidNumber(tok)
			}
			program = append(program, Instruction{Op: OpPush, Value: v, Token: tok})
			prefix = false

		case tok.Type == TokenLeftParen:
			stack = append(stack, operator{paren: true, token: tok})
			prefix = true

		case tok.Type == TokenRightParen:
			for len(stack) > 0 && !stack[len(stack)-1].paren {
				program = append(program, stack[len(stack)-1].instruction())
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, mismatched(tok)
			}
			stack = stack[:len(stack)-1]
			prefix = false

		case prefix && tok.Type == TokenPlus:
			// unary plus has no effect

		case prefix && tok.Type == TokenMinus:
			neg := negation
			neg.token = tok
			stack = append(stack, neg)

		case tok.Type.IsOperator():
			cur := binaryOperators[tok.Type]
			cur.token = tok
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.paren {
					break
				}
				if top.precedence > cur.precedence || (top.precedence == cur.precedence && !cur.rightAssoc) {
					program = append(program, top.instruction())
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, cur)
			prefix = true
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.paren {
			return nil, mismatched(top.token)
		}
		program = append(program, top.instruction())
		stack = stack[:len(stack)-1]
	}

	return program, nil
}

func (o operator) instruction() Instruction {
	return Instruction{Op: o.op, Token: o.token}
}

// isRange reports a ParseFloat overflow; the literal evaluates to ±Inf.
func isRange(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func mismatched(tok Token) *mdwerror.Error {
	return calcError("parse", mdwerror.CodeMismatchedParentheses, "mismatched parentheses").
		WithDetail("position", tok.Position)
}

func invalidNumber(tok Token) *mdwerror.Error {
	return calcError("parse", mdwerror.CodeInvalidExpression, "invalid expression").
		WithDetail("position", tok.Position).
		WithDetail("literal", tok.Value)
}

// File: calc.go
// Title: Expression Evaluation Facade
// Description: Combines filtering, tokenizing, shunting-yard parsing and
//              postfix execution behind a single call.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-15 v0.2.0: Expression engine with length limit and finite check

package calc

import (
	"math"

	"github.com/msto63/sigfig/foundation/calc/executor"
	"github.com/msto63/sigfig/foundation/calc/parser"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/foundation/core/errors"
	mdwlog "github.com/msto63/sigfig/foundation/core/log"
	mdwstringx "github.com/msto63/sigfig/foundation/utils/stringx"
)

// DefaultMaxExpressionLength bounds expressions accepted by an Engine
const DefaultMaxExpressionLength = 4096

// Sentinel errors for errors.Is
var (
	ErrEmptyExpression       = parser.ErrEmptyExpression
	ErrMismatchedParentheses = parser.ErrMismatchedParentheses
	ErrInvalidExpression     = executor.ErrInvalidExpression
	ErrUnknownOperator       = sentinel(mdwerror.CodeUnknownOperator, "unknown operator")
	ErrNonFiniteResult       = sentinel(mdwerror.CodeNonFiniteResult, "non-finite result")
	ErrExpressionTooLong     = sentinel(mdwerror.CodeExpressionTooLong, "expression too long")
)

func sentinel(code mdwerror.Code, message string) *mdwerror.Error {
	return errors.NewErrorBuilder(errors.ModuleCalc).Message(message).Code(code).Build()
}

// Compile turns expr into a postfix program.
func Compile(expr string) (parser.Program, error) {
	return parser.Parse(expr)
}

// Evaluate computes the value of expr. The result may be ±Inf or NaN.
func Evaluate(expr string) (float64, error) {
	program, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	return executor.Run(program)
}

// EvaluateFinite computes the value of expr and rejects ±Inf and NaN.
func EvaluateFinite(expr string) (float64, error) {
	v, err := Evaluate(expr)
	if err != nil {
		return 0, err
	}
	if err := checkFinite(expr, v); err != nil {
		return 0, err
	}
	return v, nil
}

// Trace evaluates expr and returns the program and the stack after each
// instruction.
func Trace(expr string) (parser.Program, []executor.Step, float64, error) {
	program, err := parser.Parse(expr)
	if err != nil {
		return nil, nil, 0, err
	}
	v, steps, err := executor.Trace(program)
	return program, steps, v, err
}

func checkFinite(expr string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return errors.NewErrorBuilder(errors.ModuleCalc).
			Operation("evaluate").
			Message("non-finite result").
			Code(mdwerror.CodeNonFiniteResult).
			Detail("expression", expr).
			Severity(mdwerror.SeverityLow).
			Build()
	}
	return nil
}

// Engine evaluates expressions with an input length limit and logging
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures an Engine
type Options struct {
	Logger              *mdwlog.Logger
	MaxExpressionLength int
	// RequireFinite makes Evaluate reject ±Inf and NaN results
	RequireFinite bool
}

// New creates a new expression engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxExpressionLength <= 0 {
		opts.MaxExpressionLength = DefaultMaxExpressionLength
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "calc-engine"),
		options: opts,
	}
}

// Evaluate checks the length of expr, evaluates it and logs the outcome at
// debug level.
func (e *Engine) Evaluate(expr string) (float64, error) {
	if mdwstringx.IsBlank(expr) {
		return 0, ErrEmptyExpression
	}
	if len(expr) > e.options.MaxExpressionLength {
		return 0, errors.NewErrorBuilder(errors.ModuleCalc).
			Operation("evaluate").
			Messagef("expression exceeds maximum length: %d > %d", len(expr), e.options.MaxExpressionLength).
			Code(mdwerror.CodeExpressionTooLong).
			Severity(mdwerror.SeverityLow).
			Build()
	}

	program, err := parser.Parse(expr)
	if err != nil {
		e.logger.Debug("Expression parsing failed", mdwlog.Fields{"expression": expr, "error": err.Error()})
		return 0, err
	}

	v, err := executor.Run(program)
	if err == nil && e.options.RequireFinite {
		err = checkFinite(expr, v)
	}
	if err != nil {
		e.logger.Debug("Expression evaluation failed", mdwlog.Fields{"expression": expr, "error": err.Error()})
		return 0, err
	}

	e.logger.Debug("Expression evaluated", mdwlog.Fields{
		"expression": expr,
		"postfix":    program.String(),
		"result":     v,
	})
	return v, nil
}

// MaxExpressionLength returns the configured input limit
func (e *Engine) MaxExpressionLength() int {
	return e.options.MaxExpressionLength
}

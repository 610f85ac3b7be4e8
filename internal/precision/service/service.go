// Package service implements the precision use cases shared by the CLI,
// the HTTP and gRPC servers and the TUI.
package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/msto63/sigfig/foundation/calc"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/foundation/core/errors"
	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/msto63/sigfig/internal/explain"
	"github.com/msto63/sigfig/internal/history/store"
	"github.com/msto63/sigfig/pkg/core/cache"
	"github.com/msto63/sigfig/pkg/core/logging"
)

// Theme values persisted under the "theme" setting
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	themeSetting = "theme"
)

// CountResult is the outcome of counting significant figures
type CountResult struct {
	Input              string              `json:"input"`
	Normalized         string              `json:"normalized"`
	Notation           string              `json:"notation"`
	SignificantFigures int                 `json:"significant_figures"`
	DecimalPlaces      int                 `json:"decimal_places"`
	Explanation        explain.Explanation `json:"explanation"`
}

// PlacesResult is the outcome of extracting decimal places
type PlacesResult struct {
	Input         string `json:"input"`
	DecimalPlaces int    `json:"decimal_places"`
}

// RoundResult is the outcome of a rounding request
type RoundResult struct {
	Input     string              `json:"input"`
	Mode      string              `json:"mode"`
	Figures   int                 `json:"figures,omitempty"`
	Places    *int                `json:"places,omitempty"`
	Result    string              `json:"result"`
	Status    string              `json:"status"`
	Original  int                 `json:"original_significant_figures"`
	Explained explain.Explanation `json:"explanation"`
}

// EvaluateResult is the outcome of evaluating an expression. Non-finite
// values are only carried in Result ("Infinity", "NaN").
type EvaluateResult struct {
	Expression         string  `json:"expression"`
	Postfix            string  `json:"postfix"`
	Value              float64 `json:"-"`
	Result             string  `json:"result"`
	SignificantFigures int     `json:"significant_figures"`
}

// CombineResult is the outcome of a two-operand calculation
type CombineResult struct {
	A           string              `json:"a"`
	B           string              `json:"b"`
	Operator    string              `json:"operator"`
	Rule        string              `json:"rule"`
	Precision   int                 `json:"precision"`
	Unrounded   string              `json:"unrounded"`
	Result      string              `json:"result"`
	Expression  string              `json:"expression"`
	Explanation explain.Explanation `json:"explanation"`
}

// Service implements the precision operations
type Service struct {
	rounder     mathx.Rounder
	engine      *calc.Engine
	evaluations *cache.Cache[string, evaluation]
	history     store.HistoryStore
	logger      *logging.Logger
}

// evaluation is a successfully evaluated expression
type evaluation struct {
	value   float64
	postfix string
}

// Config holds service configuration
type Config struct {
	RoundingMode        mathx.RoundingMode
	MaxExpressionLength int
	// History is optional; without it nothing is recorded
	History store.HistoryStore
	Logger  *logging.Logger
	// CacheSize bounds the evaluated-expression cache
	CacheSize int
}

// NewService creates a new precision service
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("precision")
	}
	return &Service{
		rounder: mathx.NewRounder(cfg.RoundingMode),
		engine: calc.New(calc.Options{
			// the engine logs directly, without the key-value wrapper frame
			Logger:              logger.WithCallerSkip(-1),
			MaxExpressionLength: cfg.MaxExpressionLength,
		}),
		evaluations: cache.New[string, evaluation](cache.Config{MaxItems: cfg.CacheSize}),
		history:     cfg.History,
		logger:      logger,
	}
}

// Count counts the significant figures of raw and records the result
func (s *Service) Count(ctx context.Context, raw string) (*CountResult, error) {
	n, ok := mathx.Analyze(raw)
	if !ok {
		return nil, errors.MathxInvalidNumber("count", raw)
	}
	expl, err := explain.Count(raw)
	if err != nil {
		return nil, err
	}

	res := &CountResult{
		Input:              raw,
		Normalized:         mathx.Sanitize(raw),
		Notation:           n.Kind.String(),
		SignificantFigures: n.SignificantFigures(),
		DecimalPlaces:      n.DecimalPlaces(),
		Explanation:        expl,
	}
	s.record(ctx, store.KindCount, fmt.Sprintf("Count: %s → %d sig figs", raw, res.SignificantFigures))
	return res, nil
}

// Places returns the decimal places of raw
func (s *Service) Places(ctx context.Context, raw string) (*PlacesResult, error) {
	dp, ok := mathx.DecimalPlaces(raw)
	if !ok {
		return nil, errors.MathxInvalidNumber("places", raw)
	}
	return &PlacesResult{Input: raw, DecimalPlaces: dp}, nil
}

// Round rounds raw to n significant figures and records the result
func (s *Service) Round(ctx context.Context, raw string, n int) (*RoundResult, error) {
	if n < 1 {
		return nil, errors.OutOfRange(errors.ModuleMathx, "round", n, 1, mathx.MaxPrecision)
	}
	expl, rounded, err := explain.Round(raw, n, s.rounder)
	if err != nil {
		return nil, err
	}

	res := &RoundResult{
		Input:     raw,
		Mode:      s.rounder.Mode.String(),
		Figures:   n,
		Result:    rounded.Display,
		Status:    rounded.Status.String(),
		Original:  mathx.CountSignificantFigures(raw),
		Explained: expl,
	}
	s.record(ctx, store.KindRound, fmt.Sprintf("Round: %s → %s (%d sig figs)", raw, rounded.Display, n))
	return res, nil
}

// RoundDecimals rounds raw to dp decimal places. Negative dp rounds to the
// left of the point.
func (s *Service) RoundDecimals(ctx context.Context, raw string, dp int) (*RoundResult, error) {
	v, err := mathx.ParseNumber(raw)
	if err != nil {
		return nil, err
	}
	rounded := s.rounder.DecimalPlaces(v, dp)

	res := &RoundResult{
		Input:    raw,
		Mode:     s.rounder.Mode.String(),
		Places:   &dp,
		Result:   rounded.Display,
		Status:   rounded.Status.String(),
		Original: mathx.CountSignificantFigures(raw),
		Explained: explain.Explanation{
			Title: fmt.Sprintf("Rounded result: %s", rounded.Display),
			Steps: []string{fmt.Sprintf("Rounded to %d decimal place(s): %s.", dp, rounded.Display)},
		},
	}
	s.record(ctx, store.KindRound, fmt.Sprintf("Round: %s → %s (%d decimal places)", raw, rounded.Display, dp))
	return res, nil
}

// Evaluate evaluates an arithmetic expression and records the result
func (s *Service) Evaluate(ctx context.Context, expr string) (*EvaluateResult, error) {
	timer := s.logger.StartTimer("evaluate", "expression", expr)
	ev, err := s.evaluate(expr)
	if err != nil {
		timer.Fail(err)
		return nil, err
	}

	display := mathx.FormatNumber(ev.value)
	timer.WithField("result", display).Stop()
	res := &EvaluateResult{
		Expression:         strings.TrimSpace(expr),
		Postfix:            ev.postfix,
		Value:              ev.value,
		Result:             display,
		SignificantFigures: mathx.CountSignificantFigures(display),
	}
	s.record(ctx, store.KindEvaluate, fmt.Sprintf("%s = %s", res.Expression, display))
	return res, nil
}

// PreviewResult describes an input buffer while it is being typed
type PreviewResult struct {
	Input string `json:"input"`
	// SignificantFigures of the buffer itself, 0 when it is not a number
	SignificantFigures int    `json:"significant_figures"`
	Result             string `json:"result,omitempty"`
	Error              string `json:"error,omitempty"`
}

// Preview counts and evaluates a buffer without recording history
func (s *Service) Preview(input string) PreviewResult {
	p := PreviewResult{
		Input:              input,
		SignificantFigures: mathx.CountSignificantFigures(input),
	}
	if strings.TrimSpace(input) == "" {
		return p
	}
	ev, err := s.evaluate(input)
	if err != nil {
		p.Error = errorMessage(err)
		return p
	}
	p.Result = mathx.FormatNumber(ev.value)
	return p
}

// evaluate runs expr through the engine, reusing earlier results. Failed
// evaluations are not cached.
func (s *Service) evaluate(expr string) (evaluation, error) {
	return s.evaluations.GetOrSet(expr, func() (evaluation, error) {
		v, err := s.engine.Evaluate(expr)
		if err != nil {
			return evaluation{}, err
		}
		program, err := calc.Compile(expr)
		if err != nil {
			return evaluation{}, err
		}
		return evaluation{value: v, postfix: program.String()}, nil
	})
}

// CacheStats reports hits and misses of the evaluation cache
func (s *Service) CacheStats() (hits, misses int64) {
	hits, misses, _ = s.evaluations.Stats()
	return hits, misses
}

// Combine applies op to a and b with the significant-figure rules and
// records the result. op accepts symbols and names ("+", "mul", "÷").
func (s *Service) Combine(ctx context.Context, a, b, op string) (*CombineResult, error) {
	operator, err := mathx.ParseOperator(op)
	if err != nil {
		return nil, err
	}
	res, err := s.rounder.Combine(a, b, operator)
	if err != nil {
		return nil, err
	}

	out := &CombineResult{
		A:           a,
		B:           b,
		Operator:    operator.Symbol(),
		Rule:        res.Rule.String(),
		Precision:   res.Precision,
		Unrounded:   mathx.FormatNumber(res.Unrounded),
		Result:      res.Rounded.Display,
		Expression:  res.Expression(),
		Explanation: explain.Combine(res),
	}
	s.record(ctx, store.KindCombine, out.Expression)
	return out, nil
}

// History returns up to limit recorded entries, newest first
func (s *Service) History(ctx context.Context, limit int) ([]*store.Entry, error) {
	if s.history == nil {
		return []*store.Entry{}, nil
	}
	entries, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*store.Entry{}
	}
	return entries, nil
}

// ClearHistory removes all recorded entries
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx)
}

// Theme returns the persisted theme or fallback when none is stored
func (s *Service) Theme(ctx context.Context, fallback string) string {
	if s.history == nil {
		return fallback
	}
	theme, ok, err := s.history.GetSetting(ctx, themeSetting)
	if err != nil {
		s.logger.Warn("failed to read theme", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return theme
}

// SetTheme persists the theme preference
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return errors.InvalidInput(errors.ModuleConfig, "set_theme", theme, "dark or light")
	}
	if s.history == nil {
		return nil
	}
	return s.history.SetSetting(ctx, themeSetting, theme)
}

// RoundingMode returns the configured rounding mode
func (s *Service) RoundingMode() mathx.RoundingMode {
	return s.rounder.Mode
}

// errorMessage returns the message of a coded error without its chain
func errorMessage(err error) string {
	var coded *mdwerror.Error
	if stderrors.As(err, &coded) {
		return coded.Message()
	}
	return err.Error()
}

func (s *Service) record(ctx context.Context, kind store.Kind, text string) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Add(ctx, kind, text); err != nil {
		s.logger.LogError(err, "kind", string(kind))
	}
}

// Package explain renders the "show work" reasoning behind counts, roundings
// and two-operand results as plain text lines.
package explain

import (
	"fmt"
	"strings"

	"github.com/msto63/sigfig/foundation/core/errors"
	"github.com/msto63/sigfig/foundation/utils/mathx"
)

// Explanation is an ordered list of reasoning steps with a headline
type Explanation struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// String joins the title and steps with newlines
func (e Explanation) String() string {
	var b strings.Builder
	b.WriteString(e.Title)
	for _, s := range e.Steps {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return b.String()
}

// Count explains how the significant figures of raw are counted
func Count(raw string) (Explanation, error) {
	n, ok := mathx.Analyze(raw)
	if !ok {
		return Explanation{}, errors.MathxInvalidNumber("explain_count", raw)
	}

	sig := n.SignificantFigures()
	e := Explanation{Title: fmt.Sprintf("Show work for %s", strings.TrimSpace(raw))}
	add := func(format string, args ...interface{}) {
		e.Steps = append(e.Steps, fmt.Sprintf(format, args...))
	}

	add("Input: %s", raw)
	add("Normalized: %s", strings.TrimLeft(mathx.Sanitize(raw), "+-"))

	switch {
	case n.Kind == mathx.NotationScientific:
		add("Detected scientific notation.")
		add("Coefficient: %s, Exponent: %s.", n.Coefficient(), n.ExponentText)
		add("Count significant figures in the coefficient only (ignore exponent).")
		add("Result: %s.", figures(sig))

	case n.HasPoint:
		add("Number contains a decimal point.")
		add("Integer part: %s, Fractional part: %s.", n.Integer, n.Fraction)
		if n.IsZero() {
			add("All digits are zeros. Convention: the number of sig figs equals digits after the decimal.")
			add("Result: %s.", figures(sig))
			break
		}
		add("Remove leading zeros (placeholders). Count remaining digits (all are significant).")
		add("Digits counted: %s → %s.", strings.TrimLeft(n.Digits(), "0"), figures(sig))

	default:
		add("Integer without a decimal point.")
		noLeading := strings.TrimLeft(n.Integer, "0")
		if noLeading == "" {
			add(`All digits are zeros (e.g., "0"). Convention: count as 1 sig fig.`)
			add("Result: 1 significant figure.")
			break
		}
		stripped := strings.TrimRight(noLeading, "0")
		if len(stripped) == 1 && len(noLeading) > 1 {
			add("Number has trailing zeros only (e.g., 1000). Without a decimal these trailing zeros are not considered significant.")
			add(`If you intend them as significant, write a decimal (e.g., "1000.") or use scientific notation (e.g., "1.000e3").`)
			add("Result: 1 significant figure (default convention).")
			break
		}
		add("Remove leading zeros, then remove trailing zeros. Trailing zeros in integers without a decimal are not counted.")
		add("Digits considered significant: %s → %s.", stripped, figures(sig))
	}

	return e, nil
}

// Round explains rounding raw to n significant figures
func Round(raw string, n int, r mathx.Rounder) (Explanation, mathx.Rounded, error) {
	v, err := mathx.ParseNumber(raw)
	if err != nil {
		return Explanation{}, mathx.Rounded{}, err
	}

	rounded := r.SignificantFigures(v, n)
	e := Explanation{
		Title: fmt.Sprintf("Rounded result: %s", rounded.Display),
		Steps: []string{
			fmt.Sprintf("Original: %s (counts as %d sig fig(s)).", raw, mathx.CountSignificantFigures(raw)),
			fmt.Sprintf("Rounded to %d significant figure(s): %s.", n, rounded.Display),
		},
	}
	if !rounded.OK() {
		e.Steps = append(e.Steps, fmt.Sprintf("Precision %d is outside 1..%d; value shown unchanged.", n, mathx.MaxPrecision))
	}
	return e, rounded, nil
}

// Combine explains a two-operand result step by step
func Combine(res mathx.CombineResult) Explanation {
	e := Explanation{
		Title: fmt.Sprintf("%s  (unrounded: %s)", res.Rounded.Display, mathx.FormatNumber(res.Unrounded)),
		Steps: []string{"Step-by-step:"},
	}

	a, b := mathx.Sanitize(res.A.Input), mathx.Sanitize(res.B.Input)
	unrounded := mathx.FormatNumber(res.Unrounded)

	if res.Rule == mathx.RuleDecimalPlaces {
		e.Steps = append(e.Steps,
			fmt.Sprintf("A = %s (decimal places: %d), B = %s (decimal places: %d).", a, res.A.DecimalPlaces, b, res.B.DecimalPlaces),
			fmt.Sprintf("Unrounded result: %s.", unrounded),
			fmt.Sprintf("Least decimal places among operands = %d. Round unrounded result to %d decimal place(s).", res.Precision, res.Precision),
		)
	} else {
		e.Steps = append(e.Steps,
			fmt.Sprintf("A = %s (%d sig fig(s)), B = %s (%d sig fig(s)).", a, res.A.SignificantFigures, b, res.B.SignificantFigures),
			fmt.Sprintf("Unrounded result: %s.", unrounded),
			fmt.Sprintf("Least sig figs among operands = %d. Round result to %d significant figure(s).", res.Precision, res.Precision),
		)
	}
	e.Steps = append(e.Steps, fmt.Sprintf("Final (rounded): %s.", res.Rounded.Display))
	return e
}

func figures(n int) string {
	if n == 1 {
		return "1 significant figure"
	}
	return fmt.Sprintf("%d significant figure(s)", n)
}

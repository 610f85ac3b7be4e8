package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/sigfig/foundation/calc"
	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/spf13/cobra"
)

var (
	evalPostfix bool
	evalTrace   bool
)

var evalCmd = &cobra.Command{
	Use:     "eval <ausdruck>",
	Aliases: []string{"evaluate", "calc"},
	Short:   "Ausdruck auswerten",
	Long: `Wertet einen arithmetischen Ausdruck aus. Unterstützt werden
+ - * / ^ (rechtsassoziativ), Klammern und unäres Minus.

Beispiele:
  sigfig eval "2+3*4"
  sigfig eval "(2+3)*4"
  sigfig eval --postfix "2^3^2"
  sigfig eval --trace "1.5*(2-0.5)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVarP(&evalPostfix, "postfix", "p", false, "Postfix-Form (RPN) anzeigen")
	evalCmd.Flags().BoolVarP(&evalTrace, "trace", "t", false, "Stack nach jeder Instruktion anzeigen")
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")

	if evalTrace {
		return runTrace(cmd, expr)
	}

	return withApp(false, func(a *app) error {
		res, err := a.svc.Evaluate(cmd.Context(), expr)
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			if evalPostfix {
				fmt.Fprintf(w, "Postfix: %s\n", res.Postfix)
			}
			fmt.Fprintln(w, res.Result)
		})
	})
}

// traceStep is the JSON form of one executed instruction
type traceStep struct {
	Instruction string   `json:"instruction"`
	Stack       []string `json:"stack"`
}

// runTrace evaluates without the service so nothing is recorded
func runTrace(cmd *cobra.Command, expr string) error {
	program, steps, value, err := calc.Trace(expr)
	if err != nil {
		return err
	}

	out := struct {
		Expression string      `json:"expression"`
		Postfix    string      `json:"postfix"`
		Steps      []traceStep `json:"steps"`
		Result     string      `json:"result"`
	}{
		Expression: expr,
		Postfix:    program.String(),
		Result:     mathx.FormatNumber(value),
	}
	for _, s := range steps {
		stack := make([]string, len(s.Stack))
		for i, v := range s.Stack {
			stack[i] = mathx.FormatNumber(v)
		}
		out.Steps = append(out.Steps, traceStep{Instruction: s.Instruction.String(), Stack: stack})
	}

	return output(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "Postfix: %s\n", out.Postfix)
		for _, s := range out.Steps {
			fmt.Fprintf(w, "  %-10s [%s]\n", s.Instruction, strings.Join(s.Stack, " "))
		}
		fmt.Fprintln(w, out.Result)
	})
}

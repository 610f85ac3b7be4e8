package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine <a> <op> <b>",
	Short: "Zwei Messwerte verknüpfen",
	Long: `Verknüpft zwei Messwerte und rundet das Ergebnis nach den Regeln
für signifikante Stellen:

  + und -   kleinste Anzahl Nachkommastellen
  * und /   kleinste Anzahl signifikanter Stellen

Operatoren: + - * / x × ÷ add sub mul div

Beispiele:
  sigfig combine 1.2 + 3.45
  sigfig combine 4.5 x 2.10
  sigfig combine 10.0 div 4`,
	Args: cobra.ExactArgs(3),
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		res, err := a.svc.Combine(cmd.Context(), args[0], args[2], args[1])
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintln(w, res.Expression)
			if verbose {
				printSteps(w, res.Explanation.Steps)
			}
		})
	})
}

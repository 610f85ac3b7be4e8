package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/msto63/sigfig/internal/explain"
	"github.com/spf13/cobra"
)

var explainRound int

var explainCmd = &cobra.Command{
	Use:   "explain <zahl> | <a> <op> <b>",
	Short: "Rechenweg anzeigen",
	Long: `Zeigt den Rechenweg, ohne etwas im Verlauf zu speichern.

Mit einer Zahl wird erklärt, welche Ziffern signifikant sind; mit
--round zusätzlich die Rundung. Mit drei Argumenten wird eine
Verknüpfung Schritt für Schritt erklärt.

Beispiele:
  sigfig explain 0.004560
  sigfig explain --round 2 123.456
  sigfig explain 4.5 x 2.10`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("erwartet eine Zahl oder <a> <op> <b>, erhalten: %d Argument(e)", len(args))
		}
		return nil
	},
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().IntVarP(&explainRound, "round", "r", 0, "Zusätzlich auf n signifikante Stellen runden")
}

func runExplain(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	rounder := mathx.NewRounder(a.svc.RoundingMode())

	var explanations []explain.Explanation
	switch {
	case len(args) == 3:
		op, err := mathx.ParseOperator(args[1])
		if err != nil {
			return err
		}
		res, err := rounder.Combine(args[0], args[2], op)
		if err != nil {
			return err
		}
		explanations = append(explanations, explain.Combine(res))

	default:
		count, err := explain.Count(args[0])
		if err != nil {
			return err
		}
		explanations = append(explanations, count)

		if cmd.Flags().Changed("round") {
			if explainRound < 1 {
				return fmt.Errorf("--round muss mindestens 1 sein")
			}
			round, _, err := explain.Round(args[0], explainRound, rounder)
			if err != nil {
				return err
			}
			explanations = append(explanations, round)
		}
	}

	return output(cmd, explanations, func(w io.Writer) {
		for i, e := range explanations {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, e.String())
		}
	})
}

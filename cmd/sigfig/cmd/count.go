package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/spf13/cobra"
)

var countExplain bool

var countCmd = &cobra.Command{
	Use:   "count <zahl>...",
	Short: "Signifikante Stellen zählen",
	Long: `Zählt die signifikanten Stellen einer oder mehrerer Zahlen.

Vorzeichen, Leerzeichen und Tausendertrennzeichen werden ignoriert.
Wissenschaftliche Notation (1.20e3) wird unterstützt.

Beispiele:
  sigfig count 0.004560
  sigfig count 100 100. 1.20e3
  sigfig count --explain 1020
  sigfig count -- -0.0030`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCount,
}

var placesCmd = &cobra.Command{
	Use:   "places <zahl>...",
	Short: "Nachkommastellen bestimmen",
	Long: `Bestimmt die Anzahl der Nachkommastellen. Bei wissenschaftlicher
Notation zählt die ausgeschriebene Form (1.23e-2 hat 4 Nachkommastellen).

Beispiele:
  sigfig places 3.140
  sigfig places 1.23e-2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlaces,
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(placesCmd)

	countCmd.Flags().BoolVarP(&countExplain, "explain", "e", false, "Rechenweg anzeigen")
}

func runCount(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		results := make([]*service.CountResult, 0, len(args))
		for _, arg := range args {
			res, err := a.svc.Count(cmd.Context(), arg)
			if err != nil {
				return err
			}
			results = append(results, res)
		}

		return output(cmd, results, func(w io.Writer) {
			for _, res := range results {
				fmt.Fprintf(w, "%s → %d signifikante Stelle(n)\n", res.Input, res.SignificantFigures)
				if countExplain {
					printSteps(w, res.Explanation.Steps)
				}
			}
		})
	})
}

func runPlaces(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		results := make([]*service.PlacesResult, 0, len(args))
		for _, arg := range args {
			res, err := a.svc.Places(cmd.Context(), arg)
			if err != nil {
				return err
			}
			results = append(results, res)
		}

		return output(cmd, results, func(w io.Writer) {
			for _, res := range results {
				fmt.Fprintf(w, "%s → %d Nachkommastelle(n)\n", res.Input, res.DecimalPlaces)
			}
		})
	})
}

func printSteps(w io.Writer, steps []string) {
	for _, step := range steps {
		fmt.Fprintf(w, "  %s\n", step)
	}
}

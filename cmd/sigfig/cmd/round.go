package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/spf13/cobra"
)

var (
	roundFigures int
	roundPlaces  int
)

var roundCmd = &cobra.Command{
	Use:   "round <zahl>",
	Short: "Auf signifikante Stellen oder Nachkommastellen runden",
	Long: `Rundet eine Zahl auf n signifikante Stellen (--figures) oder auf
d Nachkommastellen (--places). Der Rundungsmodus kommt aus der
Konfiguration (precision.rounding_mode, default half_up).

Beispiele:
  sigfig round --figures 3 123.456
  sigfig round -n 2 0.004560
  sigfig round --places 2 2.5
  sigfig round --places -2 1234`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

func init() {
	rootCmd.AddCommand(roundCmd)

	roundCmd.Flags().IntVarP(&roundFigures, "figures", "n", 0, "Anzahl signifikanter Stellen")
	roundCmd.Flags().IntVarP(&roundPlaces, "places", "d", 0, "Anzahl Nachkommastellen")
	roundCmd.MarkFlagsMutuallyExclusive("figures", "places")
	roundCmd.MarkFlagsOneRequired("figures", "places")
}

func runRound(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		var (
			res *service.RoundResult
			err error
		)
		if cmd.Flags().Changed("places") {
			res, err = a.svc.RoundDecimals(cmd.Context(), args[0], roundPlaces)
		} else {
			res, err = a.svc.Round(cmd.Context(), args[0], roundFigures)
		}
		if err != nil {
			return err
		}

		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintln(w, res.Result)
			if verbose {
				printSteps(w, res.Explained.Steps)
			}
		})
	})
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Verlauf anzeigen",
	Long: `Zeigt die zuletzt gespeicherten Berechnungen, neueste zuerst.
Gespeichert werden höchstens history.max_entries Einträge (default 40).

Beispiele:
  sigfig history
  sigfig history --limit 5
  sigfig history clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Verlauf löschen",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Maximale Anzahl Einträge (0 = alle)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		entries, err := a.svc.History(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		return output(cmd, entries, func(w io.Writer) {
			if len(entries) == 0 {
				fmt.Fprintln(w, "Verlauf ist leer.")
				return
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%s  %-8s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Kind, e.Text)
			}
		})
	})
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		if err := a.svc.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Verlauf gelöscht.")
		return nil
	})
}

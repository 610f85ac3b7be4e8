package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/sigfig/internal/tui/calculator"
	"github.com/spf13/cobra"
)

var tuiInitial string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet den interaktiven Rechner",
	Long: `Startet den Rechner im Terminal. Die Anzeige zeigt laufend die
Anzahl signifikanter Stellen der Eingabe ("sig: N").

Tastenkuerzel:
  Enter / =   Auswerten, Ergebnis übernehmen und zählen
  Esc         Feld leeren (CE)
  Backspace   Letztes Zeichen löschen (DEL)
  Ctrl+N      Vorzeichen wechseln (±)
  Ctrl+K      Signifikante Stellen zählen mit Rechenweg
  Ctrl+R      Auf n signifikante Stellen runden
  Ctrl+E      A op B nach den Stellenregeln verknüpfen
  Ctrl+O      Operator wechseln
  Tab         Nächstes Feld
  Ctrl+L      Verlauf löschen
  Ctrl+T      Hell/Dunkel umschalten
  F1          Hilfe
  Ctrl+C      Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiInitial, "input", "0.004560", "Startwert der Anzeige")
}

func runTUI(cmd *cobra.Command, args []string) error {
	return withApp(true, func(a *app) error {
		cfg := calculator.DefaultConfig()
		cfg.Theme = a.cfg.TUI.Theme
		cfg.Initial = tuiInitial

		p := tea.NewProgram(
			calculator.New(a.svc, cfg),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := p.Run(); err != nil {
			a.logger.Error("TUI failed", "error", err)
			return err
		}
		return nil
	})
}

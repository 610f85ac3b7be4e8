package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/msto63/sigfig/internal/history/store"
	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/msto63/sigfig/pkg/core/config"
	"github.com/msto63/sigfig/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool
	noHistory  bool
)

var rootCmd = &cobra.Command{
	Use:   "sigfig",
	Short: "sigfig - Signifikante Stellen zählen, runden und rechnen",
	Long: `sigfig zählt signifikante Stellen, rundet Messwerte und wertet
arithmetische Ausdrücke aus.

Befehle:
  count    - Signifikante Stellen zählen
  places   - Nachkommastellen bestimmen
  round    - Auf signifikante Stellen oder Nachkommastellen runden
  eval     - Ausdruck auswerten (+ - * / ^ und Klammern)
  combine  - Zwei Messwerte nach den Regeln für signifikante Stellen verknüpfen
  explain  - Rechenweg anzeigen
  history  - Verlauf anzeigen oder löschen
  tui      - Interaktiver Rechner
  serve    - HTTP/WebSocket- und gRPC-API starten
  selftest - Zählregeln und Auswerter gegen bekannte Beispiele prüfen`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $SIGFIG_CONFIG oder ./sigfig.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Ergebnisse als JSON ausgeben")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Nichts im Verlauf speichern")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}

// app bundles what the subcommands share
type app struct {
	cfg    *config.Config
	svc    *service.Service
	store  *store.SQLiteStore
	logger *logging.Logger
}

// newApp loads the configuration and opens the history store. Interactive
// commands log to the configured file only so the terminal stays clean.
func newApp(interactive bool) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}

	logCfg := logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		LogFile:     cfg.General.LogFile,
	}
	if interactive {
		logCfg.Output = io.Discard
	}
	logger := logging.Wrap(logging.NewLogger(logCfg), cfg.General.Name)

	mode, err := mathx.ParseRoundingMode(cfg.Precision.RoundingMode)
	if err != nil {
		return nil, fmt.Errorf("precision.rounding_mode: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}
	svcCfg := service.Config{
		RoundingMode:        mode,
		MaxExpressionLength: cfg.Precision.MaxExpressionLength,
		Logger:              logger,
	}

	if cfg.History.Enabled && !noHistory {
		st, err := store.New(store.Config{
			Path:       cfg.History.Path,
			MaxEntries: cfg.History.MaxEntries,
		})
		if err != nil {
			return nil, err
		}
		a.store = st
		svcCfg.History = st
		logger.Debug("history opened", "path", cfg.History.Path)
	}

	a.svc = service.NewService(svcCfg)
	return a, nil
}

// Close releases the history store
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close history", "error", err)
		}
	}
}

// output writes v as JSON with --json and calls text otherwise
func output(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// withApp runs fn with an opened app and closes it afterwards
func withApp(interactive bool, fn func(a *app) error) error {
	a, err := newApp(interactive)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

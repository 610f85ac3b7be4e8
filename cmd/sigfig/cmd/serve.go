package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/sigfig/internal/precision/server"
	"github.com/msto63/sigfig/pkg/core/health"
	"github.com/spf13/cobra"
)

var (
	serveHTTPPort int
	serveGRPCPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet die HTTP- und gRPC-API",
	Long: `Startet die JSON-API (/api/v1), den WebSocket-Endpunkt
(/api/v1/ws) und den gRPC-Service sigfig.v1.PrecisionService.

Adressen kommen aus der Konfiguration ([http], [grpc]) oder aus
SIGFIG_HTTP_PORT / SIGFIG_GRPC_PORT.

Beispiele:
  sigfig serve
  sigfig serve --http-port 8081 --grpc-port 9091
  curl -s localhost:8080/api/v1/count -d '{"input":"0.004560"}'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&serveHTTPPort, "http-port", 0, "HTTP-Port (überschreibt die Konfiguration)")
	serveCmd.Flags().IntVar(&serveGRPCPort, "grpc-port", 0, "gRPC-Port (überschreibt die Konfiguration)")
}

func runServe(cmd *cobra.Command, args []string) error {
	return withApp(false, func(a *app) error {
		if serveHTTPPort > 0 {
			a.cfg.HTTP.Port = serveHTTPPort
		}
		if serveGRPCPort > 0 {
			a.cfg.GRPC.Port = serveGRPCPort
		}

		srv := server.New(a.cfg, a.svc, a.logger)
		if a.store != nil {
			srv.HealthRegistry().Register(health.Optional(health.PingCheck("history", a.store, 2*time.Second)))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a.logger.Info("Starting sigfig server",
			"http", a.cfg.HTTPAddress(),
			"grpc", a.cfg.GRPCAddress(),
			"history", a.store != nil,
		)
		if err := srv.ListenAndServe(ctx); err != nil {
			return err
		}
		a.logger.Info("sigfig server stopped")
		return nil
	})
}

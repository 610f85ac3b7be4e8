// Package server exposes the precision service over HTTP/JSON, WebSocket and gRPC
package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/msto63/sigfig/foundation/calc"
	"github.com/msto63/sigfig/internal/precision/handler"
	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/msto63/sigfig/pkg/core/config"
	coreGrpc "github.com/msto63/sigfig/pkg/core/grpc"
	"github.com/msto63/sigfig/pkg/core/health"
	"github.com/msto63/sigfig/pkg/core/logging"
	"github.com/msto63/sigfig/pkg/core/version"
)

// Server runs the HTTP API and the gRPC service side by side
type Server struct {
	httpServer *http.Server
	grpc       *coreGrpc.Server
	health     *health.Registry
	logger     *logging.Logger
	config     *config.Config
}

// New wires the handlers and the gRPC service around svc. Extra health
// checks (e.g. the history database) are registered by the caller on the
// returned registry. A nil logger logs JSON at info level to stderr.
func New(cfg *config.Config, svc *service.Service, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.New("sigfig-server")
	}

	registry := health.NewRegistry("sigfig", version.Platform)
	registry.Register(EngineCheck())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/ws", handler.NewWebSocketHandler(svc, cfg.HTTP.AllowedOrigins))
	mux.Handle("/api/v1/", handler.NewHandler(svc, registry, cfg.HTTP.AllowedOrigins))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           loggingMiddleware(logger, mux),
		ReadTimeout:       cfg.HTTP.ReadTimeout.Duration,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout.Duration,
		WriteTimeout:      cfg.HTTP.WriteTimeout.Duration,
	}

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.EnableReflection = cfg.GRPC.Reflection
	grpcCfg.Logger = logger
	grpcServer := coreGrpc.NewServer(grpcCfg)
	RegisterPrecisionServer(grpcServer.GRPCServer(), NewGRPCService(svc))

	return &Server{
		httpServer: httpServer,
		grpc:       grpcServer,
		health:     registry,
		logger:     logger,
		config:     cfg,
	}
}

// EngineCheck evaluates a fixed expression to verify the calculator
func EngineCheck() health.Checker {
	return health.NewChecker("engine", func(ctx context.Context) health.CheckResult {
		v, err := calc.Evaluate("(2+3)*4")
		if err != nil || v != 20 {
			return health.CheckResult{Name: "engine", Status: health.StatusUnhealthy, Message: "self-test failed"}
		}
		return health.CheckResult{Name: "engine", Status: health.StatusHealthy, Message: "self-test passed"}
	})
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Serve serves HTTP on httpLis and gRPC on grpcLis until ctx is done or one
// of them fails. A nil listener disables that transport.
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	errCh := make(chan error, 2)

	if httpLis != nil {
		s.logger.Info("HTTP API listening", "address", httpLis.Addr().String())
		go func() {
			if err := s.httpServer.Serve(httpLis); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
	}
	if grpcLis != nil {
		report := s.health.Check(ctx)
		s.grpc.SetServing(ServiceName, report.Status != health.StatusUnhealthy)
		go func() {
			if err := s.grpc.Serve(grpcLis); err != nil {
				errCh <- err
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
		s.logger.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.HTTP.ShutdownTimeout.Duration)
	defer cancel()
	s.Shutdown(shutdownCtx)
	return err
}

// ListenAndServe listens on the configured addresses and serves until ctx
// is done
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.config.HTTPAddress())
	if err != nil {
		return err
	}
	grpcLis, err := net.Listen("tcp", s.config.GRPCAddress())
	if err != nil {
		httpLis.Close()
		return err
	}
	return s.Serve(ctx, httpLis, grpcLis)
}

// Shutdown stops both transports gracefully
func (s *Server) Shutdown(ctx context.Context) {
	s.logger.Info("Stopping sigfig server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP shutdown", "error", err)
	}
	s.grpc.StopWithTimeout(ctx)
}

// loggingMiddleware assigns a request id, unless the client sent one, and
// logs every request with it
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(handler.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(handler.RequestIDHeader, id)
		}
		w.Header().Set(handler.RequestIDHeader, id)

		timer := logger.WithRequestID(id).StartTimer("HTTP request", "method", r.Method, "path", r.URL.Path)
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		timer.WithField("status", wrapper.statusCode).Stop()
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the WebSocket upgrade take over the connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hj.Hijack()
}

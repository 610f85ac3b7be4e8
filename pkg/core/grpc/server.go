package grpc

import (
	"context"
	"net"
	"time"

	"github.com/msto63/sigfig/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	// MaxMsgSize bounds requests and responses in bytes
	MaxMsgSize        int
	EnableReflection  bool
	KeepaliveInterval time.Duration
	KeepaliveTimeout  time.Duration
	Logger            *logging.Logger
}

// DefaultServerConfig returns the defaults used by sigfig serve
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		MaxMsgSize:        64 * 1024,
		KeepaliveInterval: 30 * time.Second,
		KeepaliveTimeout:  10 * time.Second,
	}
}

// Server wraps grpc.Server. Health status follows Serve and Stop.
type Server struct {
	server *grpc.Server
	health *health.Server
	logger *logging.Logger
}

// NewServer creates a server with the sigfig interceptor chain. Logging is
// innermost so it still sees coded errors before they become status errors.
func NewServer(cfg ServerConfig, opts ...grpc.ServerOption) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("grpc")
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(cfg.MaxMsgSize),
		grpc.MaxSendMsgSize(cfg.MaxMsgSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.KeepaliveInterval,
			Timeout: cfg.KeepaliveTimeout,
		}),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			RequestIDInterceptor(),
			ErrorInterceptor(),
			LoggingInterceptor(logger),
		),
	}, opts...)

	s := &Server{
		server: grpc.NewServer(serverOpts...),
		health: health.NewServer(),
		logger: logger,
	}
	healthpb.RegisterHealthServer(s.server, s.health)
	if cfg.EnableReflection {
		reflection.Register(s.server)
	}
	return s
}

// GRPCServer returns the underlying server for service registration
func (s *Server) GRPCServer() *grpc.Server {
	return s.server
}

// SetServing sets the health status of service. An empty name addresses
// the server as a whole.
func (s *Server) SetServing(service string, serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, st)
}

// Serve marks the server healthy and blocks while serving lis
func (s *Server) Serve(lis net.Listener) error {
	s.SetServing("", true)
	s.logger.Info("gRPC server listening", "address", lis.Addr().String())
	return s.server.Serve(lis)
}

// StopWithTimeout stops gracefully and forces the stop once ctx is done
func (s *Server) StopWithTimeout(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}

package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid number", mdwerror.New("bad").WithCode(mdwerror.CodeInvalidNumber), codes.InvalidArgument},
		{"wrapped coded", fmt.Errorf("eval: %w", mdwerror.New("mismatch").WithCode(mdwerror.CodeMismatchedParentheses)), codes.InvalidArgument},
		{"non finite", mdwerror.New("inf").WithCode(mdwerror.CodeNonFiniteResult), codes.OutOfRange},
		{"database", mdwerror.New("db").WithCode(mdwerror.CodeDatabaseError), codes.Unavailable},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"plain", errors.New("boom"), codes.Internal},
		{"status passthrough", status.Error(codes.NotFound, "gone"), codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := status.Code(ToStatus(tt.err))
			if got != tt.want {
				t.Errorf("ToStatus(%v) code = %v, want %v", tt.err, got, tt.want)
			}
		})
	}

	if ToStatus(nil) != nil {
		t.Error("ToStatus(nil) should be nil")
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	interceptor := RecoveryInterceptor(logging.Wrap(logging.NewLogger(logging.LoggerConfig{Output: &buf}), "grpc"))
	info := &grpc.UnaryServerInfo{FullMethod: "/sigfig.v1.PrecisionService/Count"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
	if !strings.Contains(buf.String(), `"panic":"boom"`) {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Wrap(logging.NewLogger(logging.LoggerConfig{Level: "debug", Output: &buf}), "grpc")
	interceptor := LoggingInterceptor(logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/sigfig.v1.PrecisionService/Evaluate"}
	ctx := WithRequestID(context.Background(), "req-9")

	_, _ = interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, mdwerror.New("mismatched parentheses").WithCode(mdwerror.CodeMismatchedParentheses)
	})

	out := buf.String()
	for _, want := range []string{`"request_id":"req-9"`, `"message":"gRPC request failed"`, `"status":"InvalidArgument"`, `"level":"debug"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %s missing %s", out, want)
		}
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/sigfig.v1.PrecisionService/Count"}

	t.Run("from metadata", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))
		var seen string
		_, _ = interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = GetRequestID(ctx)
			return nil, nil
		})
		if seen != "req-42" {
			t.Errorf("request id = %q, want req-42", seen)
		}
	})

	t.Run("generated", func(t *testing.T) {
		var seen string
		_, _ = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = GetRequestID(ctx)
			return nil, nil
		})
		if len(seen) != 36 {
			t.Errorf("generated request id = %q, want uuid", seen)
		}
	})
}

func TestErrorInterceptor(t *testing.T) {
	interceptor := ErrorInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/sigfig.v1.PrecisionService/Evaluate"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, mdwerror.New("Mismatched parentheses").WithCode(mdwerror.CodeMismatchedParentheses)
	})
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", st.Code())
	}
	if st.Message() != "Mismatched parentheses" {
		t.Errorf("message = %q", st.Message())
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if GetRequestID(ctx) != "abc" {
		t.Errorf("GetRequestID = %q, want abc", GetRequestID(ctx))
	}
	if GetRequestID(context.Background()) != "" {
		t.Error("empty context should have no request id")
	}
}

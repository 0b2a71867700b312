package interceptors

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestLoggingUnary_LogsMethodAndCode(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := LoggingUnary(zap.New(core), nil)

	_, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/user.v1.UserService/Login"},
		func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil })
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "/user.v1.UserService/Login" {
		t.Errorf("method = %v", fields["method"])
	}
	if fields["code"] != "OK" {
		t.Errorf("code = %v", fields["code"])
	}
}

func TestLoggingUnary_ErrorLoggedServerSideOnly(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := LoggingUnary(zap.New(core), nil)

	handlerErr := errors.New("stored hash mismatch for user foo")
	_, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/user.v1.UserService/Login"},
		func(ctx context.Context, req interface{}) (interface{}, error) { return nil, handlerErr })
	if !errors.Is(err, handlerErr) {
		t.Fatalf("handler error not propagated: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
}

func TestLoggingUnary_SkipMethods(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	skip := map[string]bool{"/user.v1.UserService/HealthCheck": true}
	interceptor := LoggingUnary(zap.New(core), skip)

	_, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/user.v1.UserService/HealthCheck"},
		func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil })
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("log entries = %d, want 0", logs.Len())
	}
}

func TestClientIP_ForwardedFor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-forwarded-for", "10.1.2.3, 192.168.0.1"))
	if got := ClientIP(ctx); got != "10.1.2.3" {
		t.Errorf("ClientIP = %q, want %q", got, "10.1.2.3")
	}
}

func TestClientIP_Unknown(t *testing.T) {
	if got := ClientIP(context.Background()); got != "unknown" {
		t.Errorf("ClientIP = %q, want %q", got, "unknown")
	}
}

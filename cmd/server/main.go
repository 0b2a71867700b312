package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	userv1 "log-platform/usersvc/api/generated/user/v1"
	"log-platform/usersvc/internal/authz"
	"log-platform/usersvc/internal/config"
	"log-platform/usersvc/internal/db"
	identityservice "log-platform/usersvc/internal/identity/service"
	"log-platform/usersvc/internal/ratelimit"
	"log-platform/usersvc/internal/security"
	"log-platform/usersvc/internal/server"
	"log-platform/usersvc/internal/server/interceptors"
	sessionrepo "log-platform/usersvc/internal/session/repository"
	"log-platform/usersvc/internal/telemetry/otel"
	userrepo "log-platform/usersvc/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "usersvc", false)
	if err != nil {
		logger.Fatal("telemetry", zap.Error(err))
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	key, err := security.KeyFromJWK(cfg.JWK)
	if err != nil {
		logger.Fatal("signing key", zap.Error(err))
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer conn.Close()

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, int64(cfg.LoginMaxAttempts), cfg.AttemptWindow())
	}

	tokens := security.NewTokenProvider(key, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL(), cfg.RefreshTTL())
	authSvc := identityservice.NewAuthService(
		userrepo.NewPostgresRepository(conn),
		sessionrepo.NewPostgresRepository(conn),
		tokens,
		limiter,
		logger,
	)

	policy := server.DefaultPolicy(cfg.JWTAudience)
	perms, err := authz.NewOPAEvaluator(policy.Permissions)
	if err != nil {
		logger.Fatal("authz", zap.Error(err))
	}
	keys := security.NewKeyCache(security.StaticKeyFetch(cfg.JWTIssuer, key))

	s := grpc.NewServer(
		grpc.MaxConcurrentStreams(uint32(cfg.MaxConcurrentStreams)),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingUnary(logger, map[string]bool{
				userv1.UserService_HealthCheck_FullMethodName: true,
			}),
			interceptors.AuthUnary(policy, keys, perms),
		),
	)
	server.RegisterServices(s, server.Deps{Auth: authSvc, JWK: cfg.JWK, HealthPinger: conn})

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
	defer lis.Close()

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := s.Serve(lis); err != nil {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gRPC server")
	s.GracefulStop()
	logger.Info("gRPC server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"replyflow.app/api/common/id"
	"replyflow.app/api/common/logger"
	"replyflow.app/api/common/otel"
	"replyflow.app/api/core/config"
	"replyflow.app/api/core/db"
	"replyflow.app/api/internal/http/middleware"
	httprouter "replyflow.app/api/internal/http/router"
	"replyflow.app/api/internal/queue"
	"replyflow.app/api/internal/service"
	"replyflow.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "replyflow api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err, "node_id", cfg.NodeID)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	changes, err := setupChangeProducer(ctx, cfg.Changes)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer changes.Close()

	stores := store.NewStores(database.Queries())
	services := service.NewServices(
		stores,
		service.NewTxRunner(database),
		changes,
		service.NewWorkOSProvider(cfg.WorkOS),
		cfg.WorkOS,
		cfg.DashboardURL,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, database.Ping)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	sweepCtx, stopSweep := context.WithCancel(ctx)
	go sweepSessions(sweepCtx, services.Auth(), time.Hour)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stopSweep()

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// sweepSessions prunes expired sessions every interval until ctx ends.
func sweepSessions(ctx context.Context, auth service.AuthService, every time.Duration) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "replyflow.session_sweep"})
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = auth.PruneSessions(ctx)
		}
	}
}

// setupChangeProducer falls back to a no-op producer when REDIS_URL is unset.
func setupChangeProducer(ctx context.Context, cfg config.ChangeStreamConfig) (queue.Producer, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "change stream disabled (no REDIS_URL)")
		return queue.NopProducer{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream)

	return queue.NewRedisProducer(client, cfg.Stream, cfg.MaxLen, slog.Default()), nil
}

func setupRouter(cfg config.Config, services *service.Services, ready func(context.Context) error) *gin.Engine {
	router := gin.New()

	// otelgin opens the span first so Recovery and Logger both see the trace context.
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger("/health", "/ready"))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DashboardURL: cfg.DashboardURL,
		IsProduction: cfg.IsProduction(),
		Ready:        ready,
	})

	return router
}

const banner = `
 ____            _       _____ _
|  _ \ ___ _ __ | |_   _|  ___| | _____      __
| |_) / _ \ '_ \| | | | | |_  | |/ _ \ \ /\ / /
|  _ <  __/ |_) | | |_| |  _| | | (_) \ V  V /
|_| \_\___| .__/|_|\__, |_|   |_|\___/ \_/\_/
          |_|      |___/
`

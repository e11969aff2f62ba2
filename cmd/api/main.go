package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-api/config"
	_ "item-api/docs" // Swagger docs
	"item-api/internal/httpserver"
	"item-api/pkg/log"
	"item-api/pkg/metrics"
	"item-api/pkg/tracing"
)

// @title       Item API
// @description Root greeting plus read and update routes for items.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Observability
	var metricsManager *metrics.Manager
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithRuntimeCollectors(),
		)
	}

	tracer, err := tracing.New(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}

	// 4. HTTP Server
	rateLimitPerMin := 0
	if cfg.RateLimit.Enabled {
		rateLimitPerMin = cfg.RateLimit.RequestsPerMin
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: rateLimitPerMin,
		Metrics:         metricsManager,
		Tracing:         tracer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

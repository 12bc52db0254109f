package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deal-pipeline-api/internal/client"
	"deal-pipeline-api/internal/config"
	"deal-pipeline-api/internal/database"
	"deal-pipeline-api/internal/job"
	"deal-pipeline-api/internal/metrics"
	"deal-pipeline-api/internal/persist"
	"deal-pipeline-api/internal/router"
	"deal-pipeline-api/internal/service"
	"deal-pipeline-api/internal/store"
	"deal-pipeline-api/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Deal Pipeline API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// The store is the single source of truth, constructed once and
	// injected everywhere.
	st := store.New()

	// Open durable storage and rehydrate the persisted subset before any
	// subscriber is registered.
	kv, err := database.OpenKV(cfg, logger)
	if err != nil {
		// Storage failure is recovered silently: the app runs on defaults
		// with an in-memory medium.
		logger.Warn("failed to open storage, preferences will not survive restarts", zap.Error(err))
		kv = persist.NewMemoryKV()
	}
	defer kv.Close()

	adapter := persist.NewAdapter(kv, cfg.Storage.Namespace, logger)
	adapter.Rehydrate(st)
	adapter.Watch(st)

	// Initialize metrics
	m := metrics.New()

	// Simulated backend of record
	backend := client.NewDealAPI(logger, client.WithLatency(
		time.Duration(cfg.Backend.MinLatencyMS)*time.Millisecond,
		time.Duration(cfg.Backend.MaxLatencyMS)*time.Millisecond,
	))

	dealService := service.NewDealService(backend, st, m, logger)
	kanbanService := service.NewKanbanService(backend, st, m, logger)

	// Websocket hub for live view updates
	hub := ws.NewHub(st, logger)

	// Initial load: all-or-nothing; a failure leaves empty collections and
	// a surfaced error, the UI retries via POST /refresh.
	if err := dealService.Refresh(context.Background()); err != nil {
		logger.Warn("initial data load failed", zap.Error(err))
	}

	// Periodic gauge refresh and storage compaction
	maintenance := job.NewMaintenanceJob(st, kv, m, logger)
	cronRunner, err := job.Schedule(maintenance, "@every 5m")
	if err != nil {
		logger.Warn("failed to schedule maintenance job", zap.Error(err))
	} else {
		defer cronRunner.Stop()
	}

	r := router.Setup(router.Deps{
		Config:        cfg,
		Store:         st,
		DealService:   dealService,
		KanbanService: kanbanService,
		Hub:           hub,
		Metrics:       m,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func initLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	return cfg.Build()
}

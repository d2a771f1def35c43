package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/database"
	"github.com/stemsi/asistnet-backend/internal/handler"
	"github.com/stemsi/asistnet-backend/internal/logger"
	"github.com/stemsi/asistnet-backend/internal/metrics"
	"github.com/stemsi/asistnet-backend/internal/repository"
	"github.com/stemsi/asistnet-backend/internal/router"
	"github.com/stemsi/asistnet-backend/internal/service"
	"github.com/stemsi/asistnet-backend/internal/validator"
	"github.com/stemsi/asistnet-backend/internal/web"
	"github.com/stemsi/asistnet-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting AsistNet Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Metrics ───────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// ─── Build Mock Data Store ─────────────────────────────────────────
	store, err := repository.NewDataStore(repository.Options{
		Rand:       repository.NewSeededRand(cfg.FixtureSeed),
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build data store")
	}
	log.Info().
		Int("students", len(store.Students())).
		Int("courses", len(store.Courses())).
		Int("attendance_records", len(store.Attendance())).
		Msg("Mock data loaded")

	// ─── Optional Audit Trail (Redis queue → PostgreSQL) ───────────────
	var (
		rdb   *redis.Client
		audit service.AuditSink
	)
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		audit = repository.NewAuditQueue(rdb, m)
	} else {
		log.Info().Msg("REDIS_URL not set, profile updates are only logged")
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	if rdb != nil && cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		auditWorker := worker.NewAuditWorker(rdb, repository.NewAuditRepository(pool), m, log)
		go func() {
			defer close(workerDone)
			auditWorker.Start(workerCtx)
		}()
	} else {
		close(workerDone)
	}

	// ─── Initialize Services ──────────────────────────────────────────
	queryService := service.NewQueryService(store, audit, log)
	authService := service.NewAuthService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(queryService, authService, m),
		Profile:      handler.NewProfileHandler(queryService),
		Attendance:   handler.NewAttendanceHandler(queryService),
		Search:       handler.NewSearchHandler(queryService),
		Notification: handler.NewNotificationHandler(queryService),
		WS:           handler.NewWSHandler(queryService, log, cfg.AllowedOrigins),
		Page:         handler.NewPageHandler(),
		System:       handler.NewSystemHandler(rdb),
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, router.Deps{
		Config:      cfg,
		Log:         log,
		AuthService: authService,
		Metrics:     m,
		Gatherer:    registry,
		Templates:   tmpl,
	}, handlers)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Stop the audit worker and wait for it to drain the queue.
	workerCancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("Audit worker did not drain before timeout")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

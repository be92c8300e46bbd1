package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/cache"
	"github.com/SAP-F-2025/kumi-math-service/internal/config"
	"github.com/SAP-F-2025/kumi-math-service/internal/handlers"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/SAP-F-2025/kumi-math-service/internal/session"
	"github.com/SAP-F-2025/kumi-math-service/internal/utils"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
	"github.com/SAP-F-2025/kumi-math-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kumi-math-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}
	if err := postgres.AutoMigrate(db); err != nil {
		return err
	}
	repo := postgres.NewRepository(db)
	defer repo.Close()

	// Redis backs the result cache and, by default, the session store
	var (
		redisClient  *redis.Client
		cacheService cache.CacheService
	)
	redisClient, err = pkg.NewRedisClient(ctx, cfg)
	switch {
	case err == nil:
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, slogger)
	case cfg.SessionStore == config.SessionStoreRedis:
		return err
	default:
		logger.Warn("Redis unavailable, running without result cache", "error", err)
	}

	var sessions session.Store
	if cfg.SessionStore == config.SessionStoreRedis {
		sessions = session.NewRedisStore(cacheService, cfg.SessionTTL)
	} else {
		logger.Info("Using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		return fmt.Errorf("create event publisher: %w", err)
	}
	defer publisher.Close()

	serviceManager := services.NewManager(services.Dependencies{
		Repo:                repo,
		Cache:               cacheService,
		Sessions:            sessions,
		Publisher:           publisher,
		Logger:              slogger,
		Validator:           validator.New(),
		PracticeThreshold:   cfg.PracticeThreshold,
		AssessmentTimeLimit: cfg.AssessmentTimeLimit,
		ResultCacheTTL:      cfg.ResultCacheTTL,
	})

	checks := []handlers.HealthCheck{{Name: "database", Check: repo.Ping}}
	if redisClient != nil {
		checks = append(checks, handlers.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(handlers.CORSMiddleware(cfg.CORSOrigins))
	handlers.NewHandlerManager(serviceManager, logger, checks...).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odudar/skybook/internal/config"
	"github.com/odudar/skybook/internal/provision"
	"github.com/odudar/skybook/internal/redis"
	postgresrepo "github.com/odudar/skybook/internal/repository/postgres"
	redisrepo "github.com/odudar/skybook/internal/repository/redis"
	"github.com/odudar/skybook/internal/service"
	httpgin "github.com/odudar/skybook/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Reconcile the database before anything touches it: create it if
	// absent, apply missing tables, reseed emptied reference data.
	status, pgxPool, err := provision.EnsureReady(context.Background(), cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to provision postgres: %w", err)
	}

	logger.Info("postgres ready", "database", cfg.Postgres.Name, "provisioning", status.String())

	rdb, err := redis.New(context.Background(), redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	pubsub := redisrepo.NewFlightsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "reserve", 10, 1*time.Minute)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)

	// Initialize services
	services := service.NewServices(store, pubsub, limiter, cfg, logger)

	// Initialize Gin router
	router := httpgin.NewRouter(
		services,
		idempotencyStore,
		cfg.Admin.Token,
		logger,
		httpgin.TimeoutMiddleware(cfg.Server.RequestTimeout),
	)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: cfg.Server.RequestTimeout,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

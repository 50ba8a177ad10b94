package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"campaign-pulse/internal/adapter/fixer"
	httpadapter "campaign-pulse/internal/adapter/http"
	"campaign-pulse/internal/adapter/postgres"
	redisadapter "campaign-pulse/internal/adapter/redis"
	"campaign-pulse/internal/adapter/usecase"
	"campaign-pulse/internal/adapter/webhook"
	"campaign-pulse/internal/config"
	"campaign-pulse/internal/core/domain"
	"campaign-pulse/internal/core/port"
	"campaign-pulse/internal/db"
)

// main is the entry point of the campaign-pulse engine. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool, cache and external service clients,
// starts the advisory fixer health checker and resumes status polling
// for fixers that were running at shutdown, then serves HTTP. On a
// termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A local .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	var cache port.CampaignCache = redisadapter.NoopCache{}
	if cfg.Redis.Addr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		cache = redisadapter.NewCampaignCache(rdb, cfg.Redis.ListTTL)
	}

	repo := postgres.NewCampaignRepository(pool)
	fixerClient := fixer.NewClient(cfg.Fixer.BaseURL,
		fixer.WithControlTimeout(cfg.Fixer.ControlTimeout),
		fixer.WithQueryTimeout(cfg.Fixer.QueryTimeout))
	notifier := webhook.NewNotifier(cfg.Webhook.URL, cfg.Webhook.Timeout)

	svc := usecase.NewCampaignUseCase(repo, fixerClient, cache, notifier, logger)
	poller := usecase.NewStatusPoller(svc, cfg.Fixer.PollInterval, cfg.Fixer.PollMaxTries, logger)
	checker := usecase.NewHealthChecker(fixerClient, cfg.Fixer.HealthInterval, logger)
	go checker.Run(ctx)

	resumePolling(ctx, repo, poller, logger)

	handler := httpadapter.NewHandler(ctx, svc, poller, checker, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// resumePolling restarts status polling for campaigns whose fixer was
// running when the previous process stopped.
func resumePolling(ctx context.Context, repo port.CampaignRepository, poller *usecase.StatusPoller, logger *slog.Logger) {
	campaigns, err := repo.ListCampaigns(ctx)
	if err != nil {
		logger.Warn("could not list campaigns to resume polling", slog.Any("error", err))
		return
	}
	for _, c := range campaigns {
		if c.FixerStatus == domain.FixerRunning {
			poller.Watch(ctx, c.ID)
			logger.Info("resumed fixer polling", slog.Int64("campaign_id", c.ID))
		}
	}
}

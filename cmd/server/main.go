package main // Entry point package

//	@title			OBEDTECH Movie & TV API
//	@version		1.0
//	@description	REST catalog of movies and TV shows backed by MongoDB.
//	@BasePath		/
//	@tag.name			Movies
//	@tag.description	Movie catalog: list, search, lookup, add and delete
//	@tag.name			TV Shows
//	@tag.description	TV shows with embedded seasons and episodes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obedtech/catalog-api/internal/config"
	"github.com/obedtech/catalog-api/internal/database"
	"github.com/obedtech/catalog-api/internal/handler"
	"github.com/obedtech/catalog-api/internal/queue"
	"github.com/obedtech/catalog-api/internal/repository"
	"github.com/obedtech/catalog-api/internal/router"
	"github.com/obedtech/catalog-api/internal/service"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Open(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("mongo unavailable", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			logger.Warn("mongo disconnect", "error", err)
		}
	}()
	db := client.Database(cfg.MongoDB)
	logger.Info("mongo connected", "database", cfg.MongoDB)

	rdb := config.NewRedisClient(ctx)
	if rdb == nil {
		logger.Warn("redis unavailable; response cache and rate limiting disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	// A nil *service.Publisher must not become a non-nil interface value.
	var events handler.EventPublisher
	if pub := service.NewPublisher(cfg.RabbitURL); pub != nil {
		events = pub
		defer func() { _ = pub.Close() }()
		eventLog := queue.NewEventLog(cfg.EventLogPath)
		defer func() { _ = eventLog.Close() }()
		go func() {
			if err := queue.StartCatalogConsumer(ctx, cfg.RabbitURL, eventLog); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("catalog consumer stopped", "error", err)
			}
		}()
	}

	e := echo.New()
	router.Setup(e, router.Deps{
		Movies:    handler.NewMovieHandler(repository.NewMovieRepo(db), events, cfg.DBTimeout),
		TvShows:   handler.NewTvShowHandler(repository.NewTvShowRepo(db), events, cfg.DBTimeout),
		Ready:     func(ctx context.Context) error { return database.Ping(ctx, client) },
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		PublicDir: cfg.PublicDir,
		Logger:    logger,
	})

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

// newLogger returns a JSON logger in production and a text logger elsewhere.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Env == "prod" || cfg.Env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

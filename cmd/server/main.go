package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/backend/internal/cache"
	"bookshelf/backend/internal/config"
	"bookshelf/backend/internal/handler"
	transport "bookshelf/backend/internal/http"
	"bookshelf/backend/internal/logger"
	"bookshelf/backend/internal/scheduler"
	"bookshelf/backend/internal/service"
	"bookshelf/backend/internal/service/translator"
	"bookshelf/backend/internal/snowflake"
)

// @title Bookshelf API
// @version 1.0
// @description Translation proxy and synthetic book catalog.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := snowflake.Init(cfg.NodeID); err != nil {
		fatal("init snowflake", err, "node_id", cfg.NodeID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	translationCache, closeCache := openCache(ctx, cfg.Cache)
	defer closeCache()

	provider, err := translator.FromConfig(cfg.Translate)
	if err != nil {
		fatal("init translation provider", err, "provider", cfg.Translate.Provider)
	}

	translationService := service.NewTranslationService(
		translationCache,
		provider,
		translator.NewRateLimiter(cfg.Translate.QPS),
		cfg.Translate.Concurrency,
	)
	catalogService := service.NewCatalogService()

	router := transport.NewRouter(
		handler.NewTranslateHandler(translationService),
		handler.NewCatalogHandler(catalogService),
		cfg.StaticDir,
		cfg.CORSOrigins,
	)

	sweeper := scheduler.New(translationService, cfg.Cache.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	go func() {
		logger.Info("server listening", "module", "server", "action", "start", "resource", "http", "result", "ok",
			"addr", cfg.Addr, "provider", provider.Name(), "cache", cfg.Cache.Backend)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "module", "server", "action", "start", "resource", "http", "result", "failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "module", "server", "action", "stop", "resource", "http", "result", "ok")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "module", "server", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

func openCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, func()) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		rc, err := cache.OpenRedis(ctx, cfg.RedisURL, cfg.TTL, cfg.KeyPrefix)
		if err != nil {
			fatal("open redis cache", err, "url", cfg.RedisURL)
		}
		return rc, func() { _ = rc.Close() }
	case config.CacheBackendMemory, "":
		return cache.NewMemoryCache(cfg.TTL), func() {}
	default:
		fatal("open cache", errors.New("unknown cache backend"), "backend", cfg.Backend)
		return nil, nil
	}
}

func fatal(msg string, err error, args ...any) {
	attrs := append([]any{"module", "server", "action", "start", "resource", "config", "result", "failed", "error", err}, args...)
	logger.Error(msg, attrs...)
	os.Exit(1)
}

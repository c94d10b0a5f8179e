// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the showcase HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis when REDIS_URL is set, else use an in-process cache.
//  4. Wire the content loader, page services and handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/showcase/internal/api"
	"github.com/taibuivan/showcase/internal/catalog"
	"github.com/taibuivan/showcase/internal/content"
	"github.com/taibuivan/showcase/internal/home"
	"github.com/taibuivan/showcase/internal/pages"
	"github.com/taibuivan/showcase/internal/platform/config"
	"github.com/taibuivan/showcase/internal/platform/constants"
	redisstore "github.com/taibuivan/showcase/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("content_base_url", cfg.ContentBaseURL),
	)

	// Root context for background workers (rate limiter cleanup).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Document cache ─────────────────────────────────────────────────
	var (
		cache      content.Cache
		checkCache func(ctx context.Context) error
	)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cache = content.NewRedisCache(rdb, cfg.CacheTTL)
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	} else {
		cache = content.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)
	}

	// ── 4. Content & Pages ────────────────────────────────────────────────
	fetcher, err := content.NewFetcher(cfg.ContentBaseURL, &http.Client{Timeout: constants.ContentFetchTimeout})
	must(log, err, "configure content fetcher")

	loader := content.NewLoader(fetcher, cache, log)

	blog := pages.NewService(catalog.BlogOptions(cfg.BlogPageSize), loader, cfg.BlogDataPath, log)
	projects := pages.NewService(catalog.ProjectOptions(cfg.ProjectsPageSize), loader, cfg.ProjectsDataPath, log)
	homepage := home.NewService(loader, cfg.HomeDataPath, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Content: []api.Check{
			{Name: "blog", Run: blog.Check},
			{Name: "projects", Run: projects.Check},
			{Name: "home", Run: homepage.Check},
		},
		CheckCache: checkCache,
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Nav:       api.NewNavHandler(content.NewNavLoader(loader, cfg.NavPath, log)),
		Blog:      pages.NewHandler(blog),
		Projects:  pages.NewHandler(projects),
		Home:      home.NewHandler(homepage),
	}

	if cfg.SiteDir != "" {
		handlers.Site = http.FileServer(http.Dir(cfg.SiteDir))
	}

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only for startup wiring. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

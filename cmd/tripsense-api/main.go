// README: Entry point; loads config, wires the catalog and engine services, serves HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripsense/internal/config"
	httptransport "tripsense/internal/http"
	"tripsense/internal/infra"
	"tripsense/internal/logger"
	"tripsense/internal/modules/catalog"
	"tripsense/internal/modules/intent"
	"tripsense/internal/modules/planner"
	"tripsense/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error(context.Background(), "load config", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, cleanup, err := buildSource(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "build catalog source", err, "source", cfg.Catalog.Source)
		os.Exit(1)
	}
	defer cleanup()

	advisor := service.NewAdvisor(catalog.NewService(source))
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Intent:       intent.NewService(),
		Planner:      planner.NewService(),
		Advisor:      advisor,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		FetchTimeout: cfg.HTTP.FetchTimeout,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "shutdown", err)
		}
	}()

	logger.Info(ctx, "listening", "addr", cfg.HTTP.Addr, "catalog", cfg.Catalog.Source, "cache", cfg.Redis.Addr != "")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "serve", err)
		os.Exit(1)
	}
	logger.Info(context.Background(), "stopped")
}

// buildSource picks the catalog backend and optionally wraps it in the Redis cache.
func buildSource(ctx context.Context, cfg config.Config) (catalog.Source, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	seed, err := catalog.NewSeedSource()
	if err != nil {
		return nil, cleanup, err
	}

	var source catalog.Source = seed
	if cfg.Catalog.Source == config.SourcePostgres {
		db, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, db.Close)

		store := catalog.NewStore(db)
		if cfg.Catalog.SeedOnStart {
			if err := store.Replace(ctx, seed.Snapshot()); err != nil {
				cleanup()
				return nil, func() {}, err
			}
			logger.Info(ctx, "catalog seeded into postgres")
		}
		source = store
	}

	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = rdb.Close() })

		cached := catalog.NewCachedSource(source, rdb, cfg.Redis.CacheTTL)
		if cfg.Catalog.SeedOnStart {
			if err := cached.Invalidate(ctx); err != nil {
				logger.Warn(ctx, "catalog cache invalidate failed", "error", err.Error())
			}
		}
		source = cached
	}
	return source, cleanup, nil
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/grocery-inventory/internal/config"
	"github.com/rogerio-castellano/grocery-inventory/internal/db"
	api "github.com/rogerio-castellano/grocery-inventory/internal/http"
	"github.com/rogerio-castellano/grocery-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/grocery-inventory/internal/http/ratelimit"
	"github.com/rogerio-castellano/grocery-inventory/internal/redissvc"
	"github.com/rogerio-castellano/grocery-inventory/internal/repo"
)

// @title Grocery Inventory API
// @version 1.0
// @description REST API for managing grocery store products.
// @BasePath /
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)
	slog.SetDefault(logger)
	handlers.SetLogger(logger)

	database, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		logger.Error("could not connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, running without cache", slog.Any("error", err))
		} else {
			defer rdb.Close()
			handlers.SetCache(redissvc.NewRedisService(rdb, ctx, cfg.CacheTTL))
		}
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetPinger(database)
	api.SetAllowedOrigins(cfg.AllowedOrigins)

	var handler http.Handler = api.NewRouter()
	if cfg.RateLimitRPS > 0 {
		rl.SetRate(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go rl.StartVisitorCleanupLoop()
		handler = api.RateLimitMiddleware(handler)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	logger.Info("server listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

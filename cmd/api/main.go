// Command api runs the coffee shop admin HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InnocentBoy-007/Restaurant-fullstack/docs"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/handler"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/service"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/infrastructure/crypto"
	mongostore "github.com/InnocentBoy-007/Restaurant-fullstack/internal/infrastructure/db/mongo"
	redisstore "github.com/InnocentBoy-007/Restaurant-fullstack/internal/infrastructure/db/redis"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/pkg/config"
	"github.com/InnocentBoy-007/Restaurant-fullstack/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "coffee-admin-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}

	store := mongostore.NewStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	idempotency := redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	e := api.NewRouter(api.Dependencies{
		Products:  service.NewProductService(store.Products, idempotency, logger.For("product_service")),
		Passwords: service.NewPasswordService(store.Accounts, hasher, logger.For("password_service")),
		Auth:      service.NewAuthService(store.Accounts, hasher, cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret: cfg.JWTSecret,
		Logger:    logger.For("http"),
		Readiness: map[string]handler.PingFunc{
			"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	log.Info().Msg("stopped")
}

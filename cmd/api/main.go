package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bazaarly/marketplace-system/internal/api"
	"github.com/bazaarly/marketplace-system/internal/core/service"
	"github.com/bazaarly/marketplace-system/internal/infrastructure/config"
	mongodb "github.com/bazaarly/marketplace-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bazaarly/marketplace-system/internal/infrastructure/db/redis"
	"github.com/bazaarly/marketplace-system/internal/infrastructure/queue"
	"github.com/bazaarly/marketplace-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// Index provisioning must precede traffic: the unique email index is the
	// authoritative guard against duplicate registrations.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index provisioning failed")
	}
	productRepo := mongodb.NewProductRepository(db)
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product index provisioning failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Notification pipeline ---
	notifications := service.NewNotificationService(redisdb.NewVerificationStore(rdb), log)
	dispatcher := queue.NewDispatcher(0, notifications, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("marketplace API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

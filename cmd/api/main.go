package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/api/rest"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/cache"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/config"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/database"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/repository"
	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

func main() {
	var configPath = flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, &cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("numbers store unavailable", zap.Error(err))
	}
	defer pool.Close()

	routingCache, err := cache.NewRoutingCache(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("routing cache unavailable", zap.Error(err))
	}
	defer routingCache.Close()

	provisioningDB, err := repository.NewProvisioningDB(&cfg.Provisioning, logger)
	if err != nil {
		logger.Fatal("provisioning store unavailable", zap.Error(err))
	}
	defer provisioningDB.Close()

	svc := reconcile.NewService(
		repository.NewNumberRepository(pool, logger),
		routingCache,
		repository.NewProvisioningRepository(provisioningDB, logger),
		logger,
	)

	server := rest.NewServer(&cfg.Server, svc, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		zcfg := zap.NewProductionConfig()
		if err := zcfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, err
		}
		return zcfg.Build()
	}
	zcfg := zap.NewDevelopmentConfig()
	if err := zcfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, err
	}
	return zcfg.Build()
}

// Package cache implements the key-value routing cache adapter on Redis.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/config"
)

// RoutingCache implements reconcile.RoutingCache on a Redis client bound to
// the configured logical database index.
type RoutingCache struct {
	client *redis.Client
	db     int
	logger *zap.Logger
}

// NewRoutingCache creates a Redis-backed routing cache adapter.
func NewRoutingCache(cfg *config.RedisConfig, logger *zap.Logger) (*RoutingCache, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if cfg == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	if cfg.URL == "" {
		return nil, errors.NewStoreConnectionMissingError("routing cache")
	}

	opts := &redis.Options{
		Addr:         cfg.URL,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("routing cache initialized",
		zap.String("addr", cfg.URL),
		zap.Int("db", cfg.DB))

	return &RoutingCache{
		client: client,
		db:     cfg.DB,
		logger: logger,
	}, nil
}

// DB returns the logical database index the client is bound to.
func (r *RoutingCache) DB() int {
	return r.db
}

// DeleteKeys deletes every key within one pipelined round-trip and returns
// per-key deletion counts in key order. A missing key counts 0.
func (r *RoutingCache) DeleteKeys(ctx context.Context, keys []string) ([]int64, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Del(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("pipelined delete failed",
			zap.Int("keys", len(keys)),
			zap.Error(err))
		return nil, errors.NewStoreOperationFailedError("routing cache", err)
	}

	counts := make([]int64, len(keys))
	for i, cmd := range cmds {
		counts[i] = cmd.Val()
	}
	return counts, nil
}

// Close closes the underlying client.
func (r *RoutingCache) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close failed: %w", err)
	}
	return nil
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nprnops/routing-reconciler/internal/infrastructure/config"
)

func setupTestCache(t *testing.T) (*RoutingCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.RedisConfig{
		URL:          mr.Addr(),
		DB:           9,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	cache, err := NewRoutingCache(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestNewRoutingCache(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		cache, _ := setupTestCache(t)
		assert.Equal(t, 9, cache.DB())
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewRoutingCache(&config.RedisConfig{URL: "localhost:6379"}, nil)
		assert.Error(t, err)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewRoutingCache(&config.RedisConfig{}, zaptest.NewLogger(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection parameters missing")
	})

	t.Run("connection failure", func(t *testing.T) {
		cfg := &config.RedisConfig{
			URL:         "localhost:1", // nothing listens here
			DialTimeout: 100 * time.Millisecond,
		}
		_, err := NewRoutingCache(cfg, zaptest.NewLogger(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis connection failed")
	})
}

func TestRoutingCache_DeleteKeys(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	mr.DB(9).Set("nprn:routing:41412345678", "route-a")
	mr.DB(9).Set("nprn:routing:41412345680", "route-b")

	counts, err := cache.DeleteKeys(ctx, []string{
		"nprn:routing:41412345678",
		"nprn:routing:41412345679", // absent
		"nprn:routing:41412345680",
	})
	require.NoError(t, err)

	// counts are ordered per key; a missing key is 0, not an error
	assert.Equal(t, []int64{1, 0, 1}, counts)
	assert.False(t, mr.DB(9).Exists("nprn:routing:41412345678"))
	assert.False(t, mr.DB(9).Exists("nprn:routing:41412345680"))
}

func TestRoutingCache_DeleteKeysUsesConfiguredDB(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	// same key in another logical database must survive
	mr.DB(0).Set("nprn:routing:41412345678", "other-db")
	mr.DB(9).Set("nprn:routing:41412345678", "target-db")

	counts, err := cache.DeleteKeys(ctx, []string{"nprn:routing:41412345678"})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, counts)
	assert.True(t, mr.DB(0).Exists("nprn:routing:41412345678"))
}

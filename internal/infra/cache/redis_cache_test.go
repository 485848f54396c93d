package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestRedisProductCache_Key(t *testing.T) {
	c := &redisProductCache{keyPrefix: "catalog"}

	assert.Equal(t, "catalog:product:42", c.key(42))
}

func TestRedisProductCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisProductCache(client, "catalog", time.Minute)
	ctx := context.Background()

	product, err := c.GetProduct(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "redis get product")

	require.Error(t, c.SetProduct(ctx, &entity.Product{ID: 1}))
	require.NoError(t, c.SetProduct(ctx, nil))
	require.Error(t, c.InvalidateProduct(ctx, 1))
}

func TestNoopProductCache(t *testing.T) {
	c := NewNoopProductCache()
	ctx := context.Background()

	require.NoError(t, c.SetProduct(ctx, &entity.Product{ID: 1}))
	product, err := c.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, product)
	require.NoError(t, c.InvalidateProduct(ctx, 1))
}

func TestNewProductCache_WithoutRedisIsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := NewProductCache(CacheParams{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, noopProductCache{}, c)

	lc.RequireStart().RequireStop()
}

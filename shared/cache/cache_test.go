package cache_test

import (
	"context"
	"errors"
	"testing"

	"stay/infras/otel/mocks"
	"stay/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

func newTestCache(t *testing.T) cache.RedisCache {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := payload{ID: "booking-1", Total: 1000000}
	require.NoError(t, c.Save(ctx, "booking:get:booking-1", in, 60))

	var out payload
	require.NoError(t, c.Get(ctx, "booking:get:booking-1", &out))
	assert.Equal(t, in, out)
}

func TestRedisCache_GetMissing(t *testing.T) {
	c := newTestCache(t)

	var out payload
	err := c.Get(context.Background(), "booking:get:unknown", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "hotel:get:h1", "cached", 60))
	require.NoError(t, c.Delete(ctx, "hotel:get:h1"))

	var out string
	assert.Error(t, c.Get(ctx, "hotel:get:h1", &out))
}

func TestRedisCache_Clear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:gets:1", "a", 60))
	require.NoError(t, c.Save(ctx, "booking:gets:2", "b", 60))
	require.NoError(t, c.Save(ctx, "hotel:get:h1", "c", 60))

	require.NoError(t, c.Clear(ctx, "booking:gets:*"))

	var out string
	assert.Error(t, c.Get(ctx, "booking:gets:1", &out))
	assert.Error(t, c.Get(ctx, "booking:gets:2", &out))
	assert.NoError(t, c.Get(ctx, "hotel:get:h1", &out))
}

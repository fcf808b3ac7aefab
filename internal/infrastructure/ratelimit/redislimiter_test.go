package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisLimiter_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{PerMinute: 5})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "chat:1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "chat:1")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisLimiter_KeysIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{PerMinute: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "chat:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "chat:1")
	require.NoError(t, err)
	assert.False(t, allowed, "chat:1 should be limited")

	allowed, err = limiter.Allow(ctx, "chat:2")
	require.NoError(t, err)
	assert.True(t, allowed, "chat:2 should not be affected")
}

func TestRedisLimiter_ZeroConfigAllowsAll(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{})
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(ctx, "chat:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{PerMinute: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "chat:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "chat:1")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "chat:1"))

	allowed, err = limiter.Allow(ctx, "chat:1")
	require.NoError(t, err)
	assert.True(t, allowed, "should be allowed after reset")
}

func TestRedisLimiter_SlidingWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{PerMinute: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "chat:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	time.Sleep(2 * time.Second)

	allowed, err := limiter.Allow(ctx, "chat:1")
	require.NoError(t, err)
	assert.False(t, allowed, "window slides, it does not reset on a boundary")
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestNewRedisGivesUpAfterRetries(t *testing.T) {
	start := time.Now()
	_, err := NewRedis(context.Background(), RedisOptions{
		Addr:       "127.0.0.1:1",
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestNewRedisHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRedis(ctx, RedisOptions{Addr: "127.0.0.1:1", MaxRetries: 3, RetryDelay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisDeleteWithoutKeys(t *testing.T) {
	r := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	defer r.Close()
	assert.NoError(t, r.Delete(context.Background()))
}

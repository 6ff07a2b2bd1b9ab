// Package cache stores short-lived computed values, such as dashboard
// statistics, in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Cache interface {
	// Get reports whether key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Noop is used when no Redis address is configured; every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                 { return nil }

type Redis struct {
	client *redis.Client
}

type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries int
	RetryDelay time.Duration
}

// NewRedis connects to Redis, retrying the initial ping up to MaxRetries times.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 5
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	var err error
	for i := 0; i < opts.MaxRetries; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return &Redis{client: client}, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("maxAttempts", opts.MaxRetries).Msg("failed to connect to redis")
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", opts.MaxRetries, err)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const loginAttemptsKeyPrefix = "rl:login:"

// NewRedisClient configures a redis client from a redis:// URL and verifies
// connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

type redisLoginAttempts struct {
	client *redis.Client
	window time.Duration
	logger *logger.Logger
}

// NewRedisLoginAttempts counts attempts with INCR on a per-phone key that
// expires window after the first attempt.
func NewRedisLoginAttempts(client *redis.Client, window time.Duration, logger *logger.Logger) LoginAttempts {
	logger.Debug().Dur("window", window).Msg("creating redis login attempts counter")
	return &redisLoginAttempts{
		client: client,
		window: window,
		logger: logger,
	}
}

func (r *redisLoginAttempts) Hit(ctx context.Context, phone string) (int64, error) {
	key := loginAttemptsKeyPrefix + phone

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisLoginAttempts.Hit").
			Msg("failed to increment login attempts")
		return 0, fmt.Errorf("increment login attempts: %w", err)
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "redisLoginAttempts.Hit").
				Msg("failed to set login attempts expiration")
			return count, fmt.Errorf("expire login attempts: %w", err)
		}
	}

	return count, nil
}

func (r *redisLoginAttempts) Reset(ctx context.Context, phone string) error {
	if err := r.client.Del(ctx, loginAttemptsKeyPrefix+phone).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}

// noopLoginAttempts never limits anything. It is used when no redis URL is
// configured.
type noopLoginAttempts struct{}

// NewNoopLoginAttempts returns a [LoginAttempts] that always reports zero
// attempts.
func NewNoopLoginAttempts() LoginAttempts {
	return noopLoginAttempts{}
}

func (noopLoginAttempts) Hit(context.Context, string) (int64, error) { return 0, nil }

func (noopLoginAttempts) Reset(context.Context, string) error { return nil }

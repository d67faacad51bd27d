// Package ratelimit bounds attempts per key with fixed windows kept in redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"allergo/config"
	"allergo/internal/domain/lifecycle"
	"allergo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "allergo:rl:"

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

type redisLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func newRedisLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) *redisLimiter {
	return &redisLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Allow counts refused attempts too. The window is fixed from the first attempt and never slides.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	key = keyPrefix + key

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "rate limiter incr")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, errors.Wrap(err, "rate limiter expire")
		}
	}
	if count <= l.maxAttempts {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "rate limiter ttl")
	}
	if ttl < 0 {
		// The key lost its expiry (e.g. the process died between INCR and EXPIRE).
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, errors.Wrap(err, "rate limiter expire")
		}
		ttl = l.window
	}

	return false, ttl, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a redis-backed limiter when rate limiting is enabled, and a limiter
// that admits everything otherwise.
func New(params Params) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return noopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Limiter errors fail open, so an unreachable redis is only worth a warning.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Rate limiter redis unreachable", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisLimiter(client, cfg.MaxAttempts, cfg.Window)
}

package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"

	"hrdesk/config"
	"hrdesk/internal/domain/lifecycle"
	"hrdesk/internal/errors"
)

const (
	pingAttempts = 5
	pingBackoff  = 200 * time.Millisecond
)

// Params defines the dependencies of the limiter provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis token bucket when rate limiting is enabled, otherwise an unlimited limiter.
func New(params Params) Limiter {
	cfg := params.Config
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled || cfg.Redis == nil {
		return NewUnlimited()
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

			// The limiter fails open, so an unreachable Redis only costs a warning.
			if err := pingWithRetry(ctx, client); err != nil {
				params.Logger.Warn("Redis unreachable, login throttling degraded", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, cfg.RateLimit)
}

func pingWithRetry(ctx context.Context, client *redis.Client) error {
	backoff := retry.WithMaxRetries(pingAttempts, retry.NewExponential(pingBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "ping redis")
	}

	return nil
}

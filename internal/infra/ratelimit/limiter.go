// Package ratelimit throttles login attempts with a Redis-backed token bucket.
package ratelimit

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"hrdesk/config"
	"hrdesk/internal/errors"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter takes one token from the bucket identified by key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// tokenBucketScript refills continuously at rate tokens per millisecond.
// KEYS[1] bucket; ARGV now_ms, capacity, rate_per_ms, ttl_seconds.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)
last_refill = now_ms

local allowed = 0
local retry_after_ms = 0
if tokens >= 1 then
	allowed = 1
	tokens = tokens - 1
elseif rate > 0 then
	retry_after_ms = math.ceil((1 - tokens) / rate)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, math.floor(tokens), retry_after_ms }
`)

type redisLimiter struct {
	client    redis.Scripter
	prefix    string
	capacity  int
	ratePerMs float64
	ttl       time.Duration
	now       func() time.Time
}

// NewRedisLimiter creates a token bucket limiter.
func NewRedisLimiter(client redis.Scripter, cfg *config.RateLimitConfig) Limiter {
	capacity := max(cfg.Capacity, 1)
	ttl := time.Hour
	if cfg.RefillPerSecond > 0 {
		// Long enough for an empty bucket to refill completely.
		ttl = time.Duration(math.Ceil(float64(capacity)/cfg.RefillPerSecond)) * time.Second
		ttl = max(ttl, time.Minute)
	}

	return &redisLimiter{
		client:    client,
		prefix:    cfg.KeyPrefix,
		capacity:  capacity,
		ratePerMs: cfg.RefillPerSecond / 1000,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Allow runs the bucket script for key.
func (l *redisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	args := []any{
		l.now().UnixMilli(),
		l.capacity,
		strconv.FormatFloat(l.ratePerMs, 'f', -1, 64),
		int64(l.ttl / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, args...).Result()
	if err != nil {
		return Decision{}, errors.Wrap(err, "run token bucket script")
	}

	return parseResult(vals, l.capacity)
}

func parseResult(vals any, limit int) (Decision, error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return Decision{}, errors.Errorf("unexpected token bucket result: %#v", vals)
	}

	retryMs := asInt64(arr[2])

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Limit:      limit,
		Remaining:  asInt64(arr[1]),
		RetryAfter: time.Duration(retryMs) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}

// unlimited never throttles. Used when rate limiting is disabled.
type unlimited struct{}

// NewUnlimited returns a Limiter that allows every request.
func NewUnlimited() Limiter {
	return unlimited{}
}

func (unlimited) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}

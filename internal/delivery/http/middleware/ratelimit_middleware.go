package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	deliverycontext "hrdesk/internal/delivery/context"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/infra/metrics"
	"hrdesk/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	metrics *metrics.AuthMetrics
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the throttle used in front of the login endpoint.
func NewRateLimitMiddleware(limiter ratelimit.Limiter, m *metrics.AuthMetrics, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, metrics: m, logger: logger}
}

// Handle rejects the request with 429 once the caller's bucket is empty.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, err := m.limiter.Allow(c.Request().Context(), c.RealIP())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limiter unavailable, allowing request", slog.Any("error", err))

			return next(c)
		}

		if decision.Limit > 0 {
			header := c.Response().Header()
			header.Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(headerRateLimitRemaining, strconv.FormatInt(max(decision.Remaining, 0), 10))
		}

		if !decision.Allowed {
			if decision.RetryAfter > 0 {
				seconds := int64(math.Ceil(decision.RetryAfter.Seconds()))
				c.Response().Header().Set(headerRetryAfter, strconv.FormatInt(seconds, 10))
			}
			if m.metrics != nil {
				m.metrics.ObserveAttempt(metrics.OutcomeThrottled, time.Duration(0))
			}

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"webcarros/internal/infrastructure/ratelimit"
	"webcarros/pkg/errors"
	"webcarros/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per authenticated user. Must run after
// Authenticate so the uid is in the context.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("uid").(string)
			if uid == "" {
				return next(c)
			}

			allowed, wait := m.limiter.Allow(uid, action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %s", wait.Round(time.Second))))
			}

			return next(c)
		}
	}
}

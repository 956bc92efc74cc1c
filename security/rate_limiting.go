// Package security holds the request-level protections in front of the
// agenda API.
package security

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"

	"campus-agenda/config"
	"campus-agenda/monitoring"
)

type RateLimiter struct {
	redis    *redis.Client
	requests int
	window   time.Duration
}

func NewRateLimiter(redisClient *redis.Client, cfg *config.Config) *RateLimiter {
	return &RateLimiter{
		redis:    redisClient,
		requests: cfg.RateLimitRequests,
		window:   cfg.RateLimitWindow,
	}
}

// Middleware enforces a fixed window per client IP, counted in Redis.
// A Redis failure lets the request through; the limiter protects the
// API, it must never take it down.
func (r *RateLimiter) Middleware() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ip := clientIP(e.Request)
		key := fmt.Sprintf("ratelimit:%s", ip)
		ctx := e.Request.Context()

		count, err := r.redis.Incr(ctx, key).Result()
		if err == nil {
			if count == 1 {
				r.redis.Expire(ctx, key, r.window)
			}
			if count > int64(r.requests) {
				monitoring.TrackRateLimited()
				return e.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "Rate limit exceeded. Please try again later.",
				})
			}
		}

		return e.Next()
	}
}

func clientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

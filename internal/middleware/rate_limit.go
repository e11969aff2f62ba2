package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "item-api/pkg/errors"
	"item-api/pkg/response"
)

const (
	rateLimiterMaxClients = 10000
	rateLimiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client, bounded and expiring.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterMaxClients, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit rejects clients that exceed their per-IP budget with 429.
// It is a no-op when rate limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.rateLimiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			if mw.metrics != nil {
				mw.metrics.IncRateLimited()
			}
			response.AbortWithError(c, pkgErrors.ErrTooManyRequests)
			return
		}

		c.Next()
	}
}

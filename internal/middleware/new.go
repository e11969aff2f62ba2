package middleware

import (
	"item-api/pkg/log"
	"item-api/pkg/metrics"
)

// Config is the dependency bag passed to New().
type Config struct {
	// RateLimitPerMin <= 0 disables rate limiting.
	RateLimitPerMin int
	// Metrics may be nil, in which case no metrics are recorded.
	Metrics *metrics.Manager
}

type Middleware struct {
	l           log.Logger
	metrics     *metrics.Manager
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		metrics: cfg.Metrics,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}

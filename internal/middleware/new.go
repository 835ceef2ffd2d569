package middleware

import (
	"aura/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	// RateLimitPerMin caps capture requests per client IP. Zero disables the limit.
	RateLimitPerMin int
	// DefaultUserID is used when a request carries no user header.
	DefaultUserID string
}

type Middleware struct {
	l             log.Logger
	limiter       *rateLimiter
	defaultUserID string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:             l,
		defaultUserID: cfg.DefaultUserID,
	}
	if mw.defaultUserID == "" {
		mw.defaultUserID = DefaultUserID
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}

package middleware

import (
	"time"

	"resource-api/pkg/log"
	"resource-api/pkg/scope"
)

// Config holds the knobs of the request-level middlewares.
type Config struct {
	AllowedOrigins []string
	RateLimit      RateLimitConfig
}

// RateLimitConfig allows Ceiling requests per Window for each client IP.
// MaxClients bounds how many client limiters are remembered at once.
type RateLimitConfig struct {
	Window     time.Duration
	Ceiling    int
	MaxClients int
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     Config
	limiter    *rateLimiter
	metrics    *Metrics
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config, metrics *Metrics) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		limiter:    newRateLimiter(cfg.RateLimit),
		metrics:    metrics,
	}
}

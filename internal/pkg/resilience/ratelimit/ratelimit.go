// Package ratelimit provides a token-bucket limiter used to pace calls to
// quota-bound upstreams such as RPC nodes and price APIs.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter blocks callers until the configured rate allows one more event.
type Limiter interface {
	// Wait blocks until one token is available or ctx is done, in which case
	// ctx.Err() is returned and no token is consumed.
	Wait(ctx context.Context) error
}

type config struct {
	perSecond float64 // sustained events per second, <= 0 disables limiting
	burst     int     // bucket capacity
}

// Option configures a Limiter.
type Option func(*config)

type limiter struct {
	bucket *rate.Limiter
}

var _ Limiter = (*limiter)(nil)

// New returns a token-bucket Limiter.
//
// Defaults:
//   - perSecond: 10
//   - burst:     1
func New(opts ...Option) *limiter {
	cfg := config{
		perSecond: 10,
		burst:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	limit := rate.Limit(cfg.perSecond)
	if cfg.perSecond <= 0 {
		limit = rate.Inf
	}

	if cfg.burst < 1 {
		cfg.burst = 1
	}

	return &limiter{
		bucket: rate.NewLimiter(limit, cfg.burst),
	}
}

// Wait implements Limiter.
func (l *limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// WithRate sets the sustained number of events per second. A value <= 0
// disables limiting.
func WithRate(perSecond float64) Option {
	return func(c *config) {
		c.perSecond = perSecond
	}
}

// WithBurst sets how many events may happen back to back before the
// sustained rate applies.
func WithBurst(n int) Option {
	return func(c *config) {
		c.burst = n
	}
}

// Unlimited returns a Limiter that never blocks.
func Unlimited() Limiter {
	return New(WithRate(0))
}

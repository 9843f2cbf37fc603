// Package http builds retrying HTTP clients for upstream APIs (RPC nodes,
// price providers). It wraps hashicorp/go-retryablehttp with functional
// options and an optional bridge to the structured logger.
package http

import (
	"context"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration // per-request timeout
	retryWaitMin time.Duration // minimum backoff between retries
	retryWaitMax time.Duration // maximum backoff between retries
	retryMax     int           // retries after the first attempt
	logging      bool          // forward retry logs to the structured logger
}

// Option configures the HTTP client.
type Option func(*config)

// leveledLogger adapts the package logger to retryablehttp.LeveledLogger.
// retryablehttp logs without a request context, so entries carry none.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

// NewClient returns a retryablehttp.Client configured with opts.
//
// Defaults:
//   - timeout:      5s
//   - retryWaitMin: 1s
//   - retryWaitMax: 5s
//   - retryMax:     2
//   - logging:      off
//
// 429 and 5xx responses are retried; Retry-After is honored.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.logging {
		client.Logger = leveledLogger{}
	}

	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retries.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retries.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithLogging forwards retry attempts and failures to the package logger.
// logger.Init must have been called.
func WithLogging() Option {
	return func(c *config) {
		c.logging = true
	}
}

// Package retry provides a configurable retry mechanism for operations that
// may fail temporarily. It wraps avast/retry-go behind a small interface with
// functional options.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Errors wrapped with Unrecoverable stop the loop immediately:
//
//	err := r.Execute(ctx, func() error {
//	    if badInput {
//	        return retry.Unrecoverable(ErrBadInput)
//	    }
//	    return someOperation()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with automatic retry on failure.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is not retryable, or ctx is done.
	//
	// With the default last-error-only mode the returned error is the one from
	// the final attempt (or ctx.Err() on cancellation).
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after every failed attempt whose error is
// retryable, the final attempt included. attempt starts at zero.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint          // maximum number of attempts (initial included)
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap for the exponential backoff
	lastErrOnly bool          // return only the last error
	fixedDelay  bool          // use a constant delay instead of exponential backoff
	retryIf     func(error) bool
	onRetry     OnRetryFunc
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with opts.
//
// Defaults:
//   - attempts:    3
//   - delay:       1s, exponential backoff
//   - maxDelay:    5s
//   - lastErrOnly: true
//   - retryIf:     every error not wrapped with Unrecoverable
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) retryIf(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}

	if r.cfg.retryIf == nil {
		return true
	}

	return r.cfg.retryIf(err)
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.retryIf),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// Unrecoverable marks err as permanent: Execute returns it without further
// attempts, and IsUnrecoverable reports true for it.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// IsUnrecoverable reports whether err (or any error it wraps) was marked with
// Unrecoverable.
func IsUnrecoverable(err error) bool {
	return err != nil && !retry.IsRecoverable(err)
}

// WithAttempts sets the maximum number of attempts, the initial one included.
// Zero retries until success or context cancellation.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential backoff.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay waits the base delay between every attempt instead of
// backing off exponentially.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}

// WithLastErrorOnly sets whether only the last error is returned. When false
// the errors of all attempts are combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which fn returns true.
// Unrecoverable errors are never retried regardless of fn.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers a hook called after each failed attempt whose error
// is retryable.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// Package pricecache converts native-coin and token amounts to USD using a
// TTL cache in front of an external PriceProvider. Token addresses seen by the
// hot path are tracked and refreshed in rate-limited batches by Run.
package pricecache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletmon/internal/pkg/types"
	"github.com/gabapcia/walletmon/internal/pkg/x/chflow"

	"github.com/shopspring/decimal"
)

type entry struct {
	rate      decimal.Decimal
	expiresAt time.Time
}

// Cache converts amounts to fiat. It is safe for concurrent use.
type Cache struct {
	provider PriceProvider
	retry    retry.Retry

	coinID          string
	currency        string
	ttl             time.Duration
	batchSize       int
	batchPause      time.Duration
	refreshInterval time.Duration
	nowFn           func() time.Time

	mu      sync.Mutex
	entries map[string]entry
	tracked types.Set[string]
}

func (c *Cache) nativeKey() string {
	return fmt.Sprintf("%s:%s", c.coinID, c.currency)
}

func (c *Cache) load(key string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !c.nowFn().Before(e.expiresAt) {
		return decimal.Decimal{}, false
	}

	return e.rate, true
}

func (c *Cache) store(key string, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		rate:      rate,
		expiresAt: c.nowFn().Add(c.ttl),
	}
}

func (c *Cache) track(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tracked.Add(token)
}

// fetch calls lookup under the retry policy and caches the result under key.
func (c *Cache) fetch(ctx context.Context, key string, lookup func() (decimal.Decimal, error)) (decimal.Decimal, error) {
	var rate decimal.Decimal
	err := c.retry.Execute(ctx, func() error {
		r, err := lookup()
		if errors.Is(err, ErrPriceNotFound) {
			return retry.Unrecoverable(err)
		}
		if err != nil {
			return err
		}

		rate = r
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	c.store(key, rate)
	return rate, nil
}

func (c *Cache) nativeRate(ctx context.Context) (decimal.Decimal, error) {
	key := c.nativeKey()
	if rate, ok := c.load(key); ok {
		return rate, nil
	}

	return c.fetch(ctx, key, func() (decimal.Decimal, error) {
		return c.provider.NativeRate(ctx, c.coinID, c.currency)
	})
}

func (c *Cache) tokenPrice(ctx context.Context, token string) (decimal.Decimal, error) {
	if price, ok := c.load(token); ok {
		return price, nil
	}

	return c.fetch(ctx, token, func() (decimal.Decimal, error) {
		return c.provider.TokenPrice(ctx, token, c.currency)
	})
}

// NativeToUSD converts an amount of the native coin. It returns nil when the
// rate could not be resolved.
func (c *Cache) NativeToUSD(ctx context.Context, amount decimal.Decimal) *decimal.Decimal {
	rate, err := c.nativeRate(ctx)
	if err != nil {
		logger.Warn(ctx, "native rate lookup failed",
			"price.key", c.nativeKey(),
			"error", err,
		)
		return nil
	}

	usd := amount.Mul(rate)
	return &usd
}

// TokenToUSD converts an amount of the token at the given contract address.
// The address is tracked for periodic refresh. It returns nil when the price
// could not be resolved.
func (c *Cache) TokenToUSD(ctx context.Context, token string, amount decimal.Decimal) *decimal.Decimal {
	token = strings.ToLower(token)
	c.track(token)

	price, err := c.tokenPrice(ctx, token)
	if err != nil {
		logger.Warn(ctx, "token price lookup failed",
			"price.token", token,
			"error", err,
		)
		return nil
	}

	usd := amount.Mul(price)
	return &usd
}

// Tracked returns the token addresses seen so far, sorted.
func (c *Cache) Tracked() []string {
	c.mu.Lock()
	tokens := c.tracked.ToSlice()
	c.mu.Unlock()

	slices.Sort(tokens)
	return tokens
}

// RefreshTracked re-fetches the price of every tracked token, pausing after
// each batch to stay under the provider quota. A token that keeps failing is
// logged and skipped. It returns early only when ctx is done.
func (c *Cache) RefreshTracked(ctx context.Context) error {
	for i, token := range c.Tracked() {
		if i > 0 && i%c.batchSize == 0 {
			if !chflow.Sleep(ctx, c.batchPause) {
				return ctx.Err()
			}
		}

		_, err := c.fetch(ctx, token, func() (decimal.Decimal, error) {
			return c.provider.TokenPrice(ctx, token, c.currency)
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			logger.Warn(ctx, "token price refresh failed",
				"price.token", token,
				"error", err,
			)
		}
	}

	return nil
}

// Run calls RefreshTracked on every refresh interval until ctx is done.
func (c *Cache) Run(ctx context.Context) error {
	for chflow.Sleep(ctx, c.refreshInterval) {
		if err := c.RefreshTracked(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "price refresh failed", "error", err)
		}
	}

	return nil
}

type config struct {
	retry           retry.Retry
	coinID          string
	currency        string
	ttl             time.Duration
	batchSize       int
	batchPause      time.Duration
	refreshInterval time.Duration
	nowFn           func() time.Time
}

// Option configures a Cache.
type Option func(*config)

// WithRetry sets the policy applied to every provider call.
// Default: 3 attempts, 1 second apart.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithNativeCoin sets the provider id of the native coin.
// Default: "binancecoin".
func WithNativeCoin(coinID string) Option {
	return func(c *config) {
		c.coinID = coinID
	}
}

// WithCurrency sets the fiat currency. Default: "usd".
func WithCurrency(currency string) Option {
	return func(c *config) {
		c.currency = currency
	}
}

// WithTTL sets how long a price stays valid. Default: 60 seconds.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		c.ttl = d
	}
}

// WithBatch sets how many tokens RefreshTracked fetches before pausing, and
// for how long. Default: 50 tokens, 60 seconds.
func WithBatch(size int, pause time.Duration) Option {
	return func(c *config) {
		c.batchSize = size
		c.batchPause = pause
	}
}

// WithRefreshInterval sets the period of Run. Default: 60 seconds.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *config) {
		c.refreshInterval = d
	}
}

// WithClock overrides time.Now for expiry checks.
func WithClock(nowFn func() time.Time) Option {
	return func(c *config) {
		c.nowFn = nowFn
	}
}

// New returns a Cache in front of provider.
func New(provider PriceProvider, opts ...Option) *Cache {
	cfg := config{
		retry:           retry.New(retry.WithAttempts(3), retry.WithFixedDelay()),
		coinID:          "binancecoin",
		currency:        "usd",
		ttl:             60 * time.Second,
		batchSize:       50,
		batchPause:      60 * time.Second,
		refreshInterval: 60 * time.Second,
		nowFn:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.batchSize < 1 {
		cfg.batchSize = 1
	}

	return &Cache{
		provider:        provider,
		retry:           cfg.retry,
		coinID:          cfg.coinID,
		currency:        cfg.currency,
		ttl:             cfg.ttl,
		batchSize:       cfg.batchSize,
		batchPause:      cfg.batchPause,
		refreshInterval: cfg.refreshInterval,
		nowFn:           cfg.nowFn,
		entries:         make(map[string]entry),
		tracked:         types.NewSet[string](),
	}
}

// Package coingecko implements pricecache.PriceProvider on top of the
// CoinGecko public API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/walletmon/internal/pkg/resilience/ratelimit"
	transporthttp "github.com/gabapcia/walletmon/internal/pkg/transport/http"
	"github.com/gabapcia/walletmon/internal/pricecache"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// ErrUnexpectedStatus is returned when the API answers with a non-200 status
// that survived the HTTP retries.
var ErrUnexpectedStatus = errors.New("unexpected status code")

const apiKeyHeader = "x-cg-demo-api-key"

type config struct {
	baseURL    string
	platform   string
	apiKey     string
	httpClient *retryablehttp.Client
	limiter    ratelimit.Limiter
}

// Option configures the client.
type Option func(*config)

type client struct {
	cfg config
}

var _ pricecache.PriceProvider = (*client)(nil)

// priceResponse maps an id (coin id or contract address) to its price per
// currency.
type priceResponse map[string]map[string]decimal.Decimal

func (r priceResponse) price(id, currency string) (decimal.Decimal, error) {
	byCurrency, ok := r[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", id, pricecache.ErrPriceNotFound)
	}

	price, ok := byCurrency[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s/%s: %w", id, currency, pricecache.ErrPriceNotFound)
	}

	return price, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values) (priceResponse, error) {
	if err := c.cfg.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.cfg.baseURL + path + "?" + query.Encode()
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.cfg.apiKey)
	}

	res, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data priceResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data, nil
}

// NativeRate implements pricecache.PriceProvider through /simple/price.
func (c *client) NativeRate(ctx context.Context, coinID, currency string) (decimal.Decimal, error) {
	data, err := c.get(ctx, "/simple/price", url.Values{
		"ids":           {coinID},
		"vs_currencies": {currency},
	})
	if err != nil {
		return decimal.Zero, err
	}

	return data.price(coinID, currency)
}

// TokenPrice implements pricecache.PriceProvider through
// /simple/token_price/{platform}. Contract addresses are matched lowercased.
func (c *client) TokenPrice(ctx context.Context, token, currency string) (decimal.Decimal, error) {
	token = strings.ToLower(token)

	data, err := c.get(ctx, "/simple/token_price/"+url.PathEscape(c.cfg.platform), url.Values{
		"contract_addresses": {token},
		"vs_currencies":      {currency},
	})
	if err != nil {
		return decimal.Zero, err
	}

	return data.price(token, currency)
}

// NewClient returns a CoinGecko client.
//
// Defaults:
//   - baseURL:    https://api.coingecko.com/api/v3
//   - platform:   binance-smart-chain
//   - httpClient: transport/http.NewClient() defaults
//   - limiter:    unlimited
func NewClient(opts ...Option) *client {
	cfg := config{
		baseURL:  "https://api.coingecko.com/api/v3",
		platform: "binance-smart-chain",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.baseURL = strings.TrimRight(cfg.baseURL, "/")

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient()
	}

	if cfg.limiter == nil {
		cfg.limiter = ratelimit.Unlimited()
	}

	return &client{
		cfg: cfg,
	}
}

// WithBaseURL points the client at another deployment, e.g. the pro API.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithPlatform sets the asset platform used for token lookups.
func WithPlatform(p string) Option {
	return func(c *config) {
		c.platform = p
	}
}

// WithAPIKey sends key in the demo API key header.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

func WithHTTPClient(h *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = h
	}
}

// WithLimiter paces every request through l. The free tier allows about 30
// calls per minute.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(c *config) {
		c.limiter = l
	}
}

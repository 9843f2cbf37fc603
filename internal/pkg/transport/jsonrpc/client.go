// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP with retries and
// optional token-bucket pacing, suitable for EVM nodes and other JSON-RPC
// providers.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/walletmon/internal/pkg/resilience/ratelimit"
	transporthttp "github.com/gabapcia/walletmon/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote server answered with
	// a JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrNullResult is returned by FetchInto when the provider answered with a
	// null result (e.g. an unknown transaction hash).
	ErrNullResult = errors.New("null result")
)

// response is a JSON-RPC 2.0 response envelope.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err wraps ErrProviderReturnedError with the code and message of the error
// object, or returns nil when the response carries none.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type config struct {
	httpClient *retryablehttp.Client
	limiter    ratelimit.Limiter
}

// Option configures the client.
type Option func(*config)

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
	limiter          ratelimit.Limiter
}

var _ Client = (*client)(nil)

// Fetch implements Client. Each call waits on the limiter first, and carries
// a fresh UUID as request id.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// FetchInto calls method and decodes the result into T. A null result yields
// ErrNullResult.
func FetchInto[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var result T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return result, err
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return result, fmt.Errorf("%s: %w", method, ErrNullResult)
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("%s: decode result: %w", method, err)
	}

	return result, nil
}

// NewClient returns a Client for providerEndpoint.
//
// Defaults:
//   - httpClient: transport/http.NewClient() defaults
//   - limiter:    unlimited
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient()
	}

	if cfg.limiter == nil {
		cfg.limiter = ratelimit.Unlimited()
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       cfg.httpClient,
		limiter:          cfg.limiter,
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithLimiter paces every request through l.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(cfg *config) {
		cfg.limiter = l
	}
}

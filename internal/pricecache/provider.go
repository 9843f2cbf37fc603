package pricecache

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrPriceNotFound is returned by a PriceProvider that answered but has no
// price for the requested asset. It is never retried.
var ErrPriceNotFound = errors.New("price not found")

// PriceProvider looks up fiat prices from an external source.
type PriceProvider interface {
	// NativeRate returns the price of one unit of the native coin coinID in
	// currency.
	NativeRate(ctx context.Context, coinID, currency string) (decimal.Decimal, error)

	// TokenPrice returns the price of one unit of the token deployed at the
	// given contract address in currency.
	TokenPrice(ctx context.Context, token, currency string) (decimal.Decimal, error)
}

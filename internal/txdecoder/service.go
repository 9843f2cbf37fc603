// Package txdecoder rebuilds the trade a watched wallet made in a transaction:
// it decodes the Transfer logs of the receipt, picks the outbound and inbound
// legs, classifies the direction, computes the network fee and resolves USD
// values.
package txdecoder

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletmon/internal/activity"
	"github.com/gabapcia/walletmon/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the precision of the native coin (wei to ether).
const nativeDecimals = 18

// ErrNotFinalized is returned while the transaction has no successful receipt
// in a block deep enough. The caller should try again later.
var ErrNotFinalized = errors.New("transaction not finalized")

// PriceConverter resolves USD values. A nil result means the price is unknown.
type PriceConverter interface {
	NativeToUSD(ctx context.Context, amount decimal.Decimal) *decimal.Decimal
	TokenToUSD(ctx context.Context, token string, amount decimal.Decimal) *decimal.Decimal
}

// Service decodes transactions into activities.
type Service interface {
	// Decode returns the activity of subject in the transaction txHash.
	//
	// It returns (nil, nil) when the transaction is not a two-leg trade of
	// subject, and ErrNotFinalized when it should be retried later.
	Decode(ctx context.Context, txHash, subject string) (*activity.Activity, error)
}

type service struct {
	chain  Blockchain
	prices PriceConverter

	stableSymbol  string
	confirmations uint64
	nowFn         func() time.Time

	mu       sync.Mutex
	metadata map[string]TokenMetadata
}

var _ Service = (*service)(nil)

func (s *service) classify(out *transfer) activity.Classification {
	if out.Symbol == s.stableSymbol {
		return activity.ClassificationBuy
	}

	return activity.ClassificationSell
}

// finalizedReceipt fetches the receipt of txHash and checks it succeeded in a
// block with enough confirmations.
func (s *service) finalizedReceipt(ctx context.Context, txHash string) (Receipt, error) {
	receipt, err := s.chain.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			return Receipt{}, ErrNotFinalized
		}

		return Receipt{}, err
	}

	if receipt.Status != 1 || receipt.BlockNumber == 0 {
		return Receipt{}, ErrNotFinalized
	}

	if s.confirmations > 0 {
		head, err := s.chain.LatestBlockNumber(ctx)
		if err != nil {
			return Receipt{}, err
		}

		if head < receipt.BlockNumber+s.confirmations {
			return Receipt{}, ErrNotFinalized
		}
	}

	return receipt, nil
}

// fee returns gasUsed times the effective gas price, in native units.
func fee(receipt Receipt, tx Transaction) decimal.Decimal {
	price := receipt.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice
	}
	if price == nil {
		return decimal.Zero
	}

	wei := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), price)
	return decimal.NewFromBigInt(wei, -nativeDecimals)
}

func (s *service) Decode(ctx context.Context, txHash, subject string) (*activity.Activity, error) {
	subject = strings.ToLower(subject)
	ctx = logger.Derive(ctx, "tx.hash", txHash, "activity.address", subject)

	tx, err := s.chain.TransactionByHash(ctx, txHash)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return nil, ErrNotFinalized
		}

		return nil, err
	}

	receipt, err := s.finalizedReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}

	out, in := matchLegs(s.decodeTransfers(ctx, receipt.Logs), subject)
	if out == nil || in == nil {
		logger.Debug(ctx, "transaction is not a two-leg trade",
			"leg.out", out != nil,
			"leg.in", in != nil,
		)
		return nil, nil
	}

	feeNative := fee(receipt, tx)

	return &activity.Activity{
		Address:        subject,
		TxHash:         strings.ToLower(txHash),
		Date:           s.nowFn().UTC(),
		Classification: s.classify(out),
		Out:            activity.Leg{Token: out.Token, Symbol: out.Symbol, Amount: out.Amount},
		In:             activity.Leg{Token: in.Token, Symbol: in.Symbol, Amount: in.Amount},
		OutUSD:         s.prices.TokenToUSD(ctx, out.Token, out.Amount),
		InUSD:          s.prices.TokenToUSD(ctx, in.Token, in.Amount),
		FeeNative:      feeNative,
		FeeUSD:         s.prices.NativeToUSD(ctx, feeNative),
	}, nil
}

type config struct {
	stableSymbol  string
	confirmations uint64
	nowFn         func() time.Time
}

// Option configures the decoder.
type Option func(*config)

// WithStableSymbol sets the symbol whose outflow marks a BUY.
// Default: "USDT".
func WithStableSymbol(symbol string) Option {
	return func(c *config) {
		c.stableSymbol = symbol
	}
}

// WithConfirmations sets how many blocks must follow the receipt's block
// before it is decoded. Default: 0.
func WithConfirmations(n uint64) Option {
	return func(c *config) {
		c.confirmations = n
	}
}

// WithClock overrides time.Now for the activity date.
func WithClock(nowFn func() time.Time) Option {
	return func(c *config) {
		c.nowFn = nowFn
	}
}

// New returns a decoder reading from chain and pricing with prices.
func New(chain Blockchain, prices PriceConverter, opts ...Option) *service {
	cfg := config{
		stableSymbol: "USDT",
		nowFn:        time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:         chain,
		prices:        prices,
		stableSymbol:  cfg.stableSymbol,
		confirmations: cfg.confirmations,
		nowFn:         cfg.nowFn,
		metadata:      make(map[string]TokenMetadata),
	}
}

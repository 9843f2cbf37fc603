package walletregistry

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/types"
	"github.com/gabapcia/walletmon/internal/pkg/x/chflow"
)

// WalletLister is the read side of WalletStorage used by Snapshot.
type WalletLister interface {
	ListWallets(ctx context.Context) ([]Wallet, error)
}

type snapshotConfig struct {
	refreshInterval time.Duration
}

// SnapshotOption configures a Snapshot.
type SnapshotOption func(*snapshotConfig)

// WithRefreshInterval sets how often Run reloads the address set.
// Default: 5 seconds.
func WithRefreshInterval(d time.Duration) SnapshotOption {
	return func(c *snapshotConfig) {
		c.refreshInterval = d
	}
}

// Snapshot holds the lowercased addresses of every watched wallet.
//
// The set is never mutated after publication: Refresh builds a new set and
// swaps the pointer, so Contains always sees a complete snapshot without
// locking. Refresh has a single writer (Run); Contains may be called from any
// goroutine.
type Snapshot struct {
	wallets         WalletLister
	refreshInterval time.Duration

	addresses atomic.Pointer[types.Set[string]]
}

// NewSnapshot returns an empty Snapshot backed by wallets. Call Refresh or
// Run to populate it.
func NewSnapshot(wallets WalletLister, opts ...SnapshotOption) *Snapshot {
	cfg := snapshotConfig{
		refreshInterval: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Snapshot{
		wallets:         wallets,
		refreshInterval: cfg.refreshInterval,
	}

	empty := types.NewSet[string]()
	s.addresses.Store(&empty)
	return s
}

// Contains reports whether address belongs to a watched wallet. The lookup is
// case-insensitive.
func (s *Snapshot) Contains(address string) bool {
	return (*s.addresses.Load()).Contains(NormalizeAddress(address))
}

// Len returns the number of watched addresses in the current snapshot.
func (s *Snapshot) Len() int {
	return (*s.addresses.Load()).Len()
}

// Refresh reloads every wallet and publishes a new address set. On error the
// previous set stays in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	wallets, err := s.wallets.ListWallets(ctx)
	if err != nil {
		return err
	}

	addresses := types.NewSet[string]()
	for _, w := range wallets {
		addresses.Add(NormalizeAddress(w.Address))
	}

	s.addresses.Store(&addresses)
	return nil
}

// Run refreshes the snapshot immediately and then on every refresh interval
// until ctx is done. Refresh failures are logged and retried on the next tick.
func (s *Snapshot) Run(ctx context.Context) error {
	for {
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "failed to refresh wallet snapshot",
				"wallets.count", s.Len(),
				"error", err,
			)
		}

		if !chflow.Sleep(ctx, s.refreshInterval) {
			return nil
		}
	}
}

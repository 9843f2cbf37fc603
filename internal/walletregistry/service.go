// Package walletregistry manages the set of watched wallets: registration
// through Service, and a periodically refreshed in-memory Snapshot of the
// watched addresses used to filter chain activity.
package walletregistry

import (
	"context"
	"slices"

	"github.com/gabapcia/walletmon/internal/pkg/types"
)

// Service registers and unregisters watched wallets.
type Service interface {
	// StartWatching validates and stores a wallet. Registering an address
	// that is already watched updates its metadata and adds its chats.
	StartWatching(ctx context.Context, wallet Wallet) error

	// StopWatching removes the wallet registered under address.
	StopWatching(ctx context.Context, address string) error

	// ListWallets returns every watched wallet.
	ListWallets(ctx context.Context) ([]Wallet, error)
}

type service struct {
	walletStorage WalletStorage
}

var _ Service = (*service)(nil)

// New returns a Service persisting wallets in ws.
func New(ws WalletStorage) *service {
	return &service{
		walletStorage: ws,
	}
}

func sortedChats(chats types.Set[string]) []string {
	out := chats.ToSlice()
	slices.Sort(out)
	return out
}

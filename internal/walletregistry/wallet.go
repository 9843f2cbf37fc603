package walletregistry

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/walletmon/internal/pkg/types"
	"github.com/gabapcia/walletmon/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// ErrWalletNotFound is returned by WalletStorage.GetWallet when the address
// is not registered.
var ErrWalletNotFound = errors.New("wallet not found")

// Wallet is a watched address together with the metadata its subscribers
// registered it with.
type Wallet struct {
	Address        string          `json:"address" validate:"required,eth_addr"` // lowercase hex, unique key
	Name           string          `json:"name" validate:"required"`             // display name
	TokenTicker    string          `json:"token_ticker,omitempty"`               // optional ticker filter
	DailyVolumeUSD decimal.Decimal `json:"daily_volume_usd" validate:"gte=0"`    // target daily volume
	Chats          []string        `json:"chats"`                                // subscriber chat ids
}

// WalletStorage persists watched wallets.
type WalletStorage interface {
	// SaveWallet creates or replaces the wallet stored under wallet.Address.
	SaveWallet(ctx context.Context, wallet Wallet) error

	// DeleteWallet removes the wallet. Deleting an unknown address is not an
	// error.
	DeleteWallet(ctx context.Context, address string) error

	// GetWallet returns the wallet stored under address or ErrWalletNotFound.
	GetWallet(ctx context.Context, address string) (Wallet, error)

	// ListWallets returns every stored wallet.
	ListWallets(ctx context.Context) ([]Wallet, error)
}

// NormalizeAddress returns the canonical form of an address: trimmed and
// lowercased.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// buildWallet normalizes and validates w.
func buildWallet(w Wallet) (Wallet, error) {
	w.Address = NormalizeAddress(w.Address)
	w.Name = strings.TrimSpace(w.Name)
	w.TokenTicker = strings.ToUpper(strings.TrimSpace(w.TokenTicker))

	chats := types.NewSet[string]()
	for _, chat := range w.Chats {
		if chat = strings.TrimSpace(chat); chat != "" {
			chats.Add(chat)
		}
	}
	w.Chats = sortedChats(chats)

	return w, validator.Validate(w)
}

// mergeWallet returns incoming with the subscribers of existing added.
func mergeWallet(existing, incoming Wallet) Wallet {
	chats := types.NewSet(existing.Chats...)
	chats.Add(incoming.Chats...)

	incoming.Chats = sortedChats(chats)
	return incoming
}

// StartWatching registers w, or updates it when the address is already
// watched. Subscribers accumulate across registrations.
func (s *service) StartWatching(ctx context.Context, w Wallet) error {
	wallet, err := buildWallet(w)
	if err != nil {
		return err
	}

	existing, err := s.walletStorage.GetWallet(ctx, wallet.Address)
	switch {
	case errors.Is(err, ErrWalletNotFound):
	case err != nil:
		return err
	default:
		wallet = mergeWallet(existing, wallet)
	}

	return s.walletStorage.SaveWallet(ctx, wallet)
}

// StopWatching unregisters address.
func (s *service) StopWatching(ctx context.Context, address string) error {
	address = NormalizeAddress(address)
	if err := validator.Var("address", address, "required,eth_addr"); err != nil {
		return err
	}

	return s.walletStorage.DeleteWallet(ctx, address)
}

// ListWallets returns every watched wallet.
func (s *service) ListWallets(ctx context.Context) ([]Wallet, error) {
	return s.walletStorage.ListWallets(ctx)
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/gabapcia/walletmon/internal/activity"
	"github.com/gabapcia/walletmon/internal/walletregistry"

	redis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const walletKeyPrefix = "wallet"

// walletIndexKey is the set of every registered address.
var walletIndexKey = walletKeyPrefix + ":index"

// walletKey returns the hash holding one wallet.
//
// Format: "wallet:<address>"
func walletKey(address string) string {
	return fmt.Sprintf("%s:%s", walletKeyPrefix, address)
}

func walletFields(w walletregistry.Wallet) (map[string]any, error) {
	chats, err := json.Marshal(w.Chats)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"address":          w.Address,
		"name":             w.Name,
		"token_ticker":     w.TokenTicker,
		"daily_volume_usd": w.DailyVolumeUSD.String(),
		"chats":            string(chats),
	}, nil
}

func walletFromFields(fields map[string]string) (walletregistry.Wallet, error) {
	w := walletregistry.Wallet{
		Address:     fields["address"],
		Name:        fields["name"],
		TokenTicker: fields["token_ticker"],
	}

	if v := fields["daily_volume_usd"]; v != "" {
		volume, err := decimal.NewFromString(v)
		if err != nil {
			return walletregistry.Wallet{}, fmt.Errorf("wallet %s: daily volume: %w", w.Address, err)
		}
		w.DailyVolumeUSD = volume
	}

	if v := fields["chats"]; v != "" {
		if err := json.Unmarshal([]byte(v), &w.Chats); err != nil {
			return walletregistry.Wallet{}, fmt.Errorf("wallet %s: chats: %w", w.Address, err)
		}
	}

	return w, nil
}

// SaveWallet replaces the hash of wallet.Address and indexes the address.
func (c *client) SaveWallet(ctx context.Context, wallet walletregistry.Wallet) error {
	fields, err := walletFields(wallet)
	if err != nil {
		return err
	}

	key := walletKey(wallet.Address)
	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.SAdd(ctx, walletIndexKey, wallet.Address)
		return nil
	})

	return err
}

// DeleteWallet removes the wallet hash and its index entry.
func (c *client) DeleteWallet(ctx context.Context, address string) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, walletKey(address))
		pipe.SRem(ctx, walletIndexKey, address)
		return nil
	})

	return err
}

// GetWallet loads one wallet. A missing hash yields
// walletregistry.ErrWalletNotFound.
func (c *client) GetWallet(ctx context.Context, address string) (walletregistry.Wallet, error) {
	fields, err := c.conn.HGetAll(ctx, walletKey(strings.ToLower(address))).Result()
	if err != nil {
		return walletregistry.Wallet{}, err
	}

	if len(fields) == 0 {
		return walletregistry.Wallet{}, walletregistry.ErrWalletNotFound
	}

	return walletFromFields(fields)
}

// ListWallets loads every indexed wallet, ordered by address. Index entries
// whose hash is gone are skipped.
func (c *client) ListWallets(ctx context.Context) ([]walletregistry.Wallet, error) {
	addresses, err := c.conn.SMembers(ctx, walletIndexKey).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(addresses)

	cmds := make([]*redis.MapStringStringCmd, len(addresses))
	_, err = c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, address := range addresses {
			cmds[i] = pipe.HGetAll(ctx, walletKey(address))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	wallets := make([]walletregistry.Wallet, 0, len(addresses))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		w, err := walletFromFields(fields)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, nil
}

var (
	_ walletregistry.WalletStorage = (*client)(nil)
	_ walletregistry.WalletLister  = (*client)(nil)
	_ activity.WalletStorage       = (*client)(nil)
)

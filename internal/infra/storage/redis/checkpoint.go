package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletmon/internal/blockscan"

	redis "github.com/redis/go-redis/v9"
)

const checkpointKeyPrefix = "blockscan"

// checkpointKey returns the key holding the last scanned block of network.
//
// Format: "blockscan:checkpoint:<network>"
func checkpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", checkpointKeyPrefix, network)
}

// SaveCheckpoint stores block as the scan position of network, without
// expiration.
func (c *client) SaveCheckpoint(ctx context.Context, network string, block uint64) error {
	return c.conn.Set(ctx, checkpointKey(network), block, 0).Err()
}

// LoadLatestCheckpoint returns the scan position of network, or
// blockscan.ErrNoCheckpointFound when none was saved.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error) {
	block, err := c.conn.Get(ctx, checkpointKey(network)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = blockscan.ErrNoCheckpointFound
		}

		return 0, err
	}

	return block, nil
}

var _ blockscan.CheckpointStorage = (*client)(nil)

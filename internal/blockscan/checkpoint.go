package blockscan

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when the network
// was never checkpointed.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists the last fully scanned block of each network.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the checkpoint of network with block.
	SaveCheckpoint(ctx context.Context, network string, block uint64) error

	// LoadLatestCheckpoint returns the checkpoint of network, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error)
}

// nopCheckpoint keeps no state; every start begins at the chain head.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context, _ string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}

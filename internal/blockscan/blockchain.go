package blockscan

import (
	"context"

	"github.com/gabapcia/walletmon/internal/retryqueue"

	"github.com/ethereum/go-ethereum/common"
)

// Log is an event log returned by a block query.
type Log struct {
	TxHash      string
	BlockNumber uint64
	Index       uint
	Topics      []common.Hash
}

// Blockchain is the chain access the scanner needs.
type Blockchain interface {
	// LatestBlockNumber returns the current head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// LogsByBlock returns the logs of block number whose first topic is one
	// of topics, in block order.
	LogsByBlock(ctx context.Context, number uint64, topics []common.Hash) ([]Log, error)
}

// WalletFilter reports whether an address is watched.
type WalletFilter interface {
	Contains(address string) bool
}

// JobQueue receives the decode jobs of matching logs.
type JobQueue interface {
	Enqueue(job retryqueue.Job)
}

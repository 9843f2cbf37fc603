// Package ethereum implements blockscan.Blockchain and txdecoder.Blockchain
// for EVM-compatible nodes (BNB Smart Chain, Ethereum) over JSON-RPC.
package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletmon/internal/blockscan"
	"github.com/gabapcia/walletmon/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletmon/internal/txdecoder"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type client struct {
	conn jsonrpc.Client
}

var (
	_ blockscan.Blockchain = (*client)(nil)
	_ txdecoder.Blockchain = (*client)(nil)
)

// NewClient returns a node client on top of conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// LatestBlockNumber returns the number of the most recent block known to the
// node.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	head, err := jsonrpc.FetchInto[hexutil.Uint64](ctx, c.conn, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	return uint64(head), nil
}

type logResponse struct {
	Address     common.Address `json:"address"`
	Topics      []common.Hash  `json:"topics"`
	Data        hexutil.Bytes  `json:"data"`
	BlockNumber hexutil.Uint64 `json:"blockNumber"`
	TxHash      common.Hash    `json:"transactionHash"`
	LogIndex    hexutil.Uint   `json:"logIndex"`
}

type logFilter struct {
	FromBlock hexutil.Uint64  `json:"fromBlock"`
	ToBlock   hexutil.Uint64  `json:"toBlock"`
	Topics    [][]common.Hash `json:"topics,omitempty"`
}

// LogsByBlock returns the logs of a single block whose first topic is one of
// topics. An empty topics list returns every log of the block.
func (c *client) LogsByBlock(ctx context.Context, number uint64, topics []common.Hash) ([]blockscan.Log, error) {
	filter := logFilter{
		FromBlock: hexutil.Uint64(number),
		ToBlock:   hexutil.Uint64(number),
	}
	if len(topics) > 0 {
		filter.Topics = [][]common.Hash{topics}
	}

	raw, err := jsonrpc.FetchInto[[]logResponse](ctx, c.conn, "eth_getLogs", filter)
	if err != nil {
		if errors.Is(err, jsonrpc.ErrNullResult) {
			return nil, nil
		}
		return nil, fmt.Errorf("logs of block %d: %w", number, err)
	}

	logs := make([]blockscan.Log, 0, len(raw))
	for _, l := range raw {
		logs = append(logs, blockscan.Log{
			TxHash:      l.TxHash.Hex(),
			BlockNumber: uint64(l.BlockNumber),
			Index:       uint(l.LogIndex),
			Topics:      l.Topics,
		})
	}

	return logs, nil
}

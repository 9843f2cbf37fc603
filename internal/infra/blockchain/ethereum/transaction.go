package ethereum

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/gabapcia/walletmon/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletmon/internal/txdecoder"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type transactionResponse struct {
	Hash     common.Hash    `json:"hash"`
	From     common.Address `json:"from"`
	GasPrice *hexutil.Big   `json:"gasPrice"`
}

type receiptResponse struct {
	TransactionHash   common.Hash     `json:"transactionHash"`
	BlockNumber       *hexutil.Uint64 `json:"blockNumber"`
	Status            hexutil.Uint64  `json:"status"`
	GasUsed           hexutil.Uint64  `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big    `json:"effectiveGasPrice"`
	Logs              []logResponse   `json:"logs"`
}

func lowerHex(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func bigOrNil(b *hexutil.Big) *big.Int {
	if b == nil {
		return nil
	}
	return b.ToInt()
}

// TransactionByHash fetches a transaction. Unknown hashes yield
// txdecoder.ErrTransactionNotFound.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txdecoder.Transaction, error) {
	tx, err := jsonrpc.FetchInto[transactionResponse](ctx, c.conn, "eth_getTransactionByHash", hash)
	if err != nil {
		if errors.Is(err, jsonrpc.ErrNullResult) {
			return txdecoder.Transaction{}, txdecoder.ErrTransactionNotFound
		}
		return txdecoder.Transaction{}, err
	}

	return txdecoder.Transaction{
		Hash:     tx.Hash.Hex(),
		From:     lowerHex(tx.From),
		GasPrice: bigOrNil(tx.GasPrice),
	}, nil
}

// TransactionReceipt fetches the receipt of a mined transaction. Pending or
// unknown transactions yield txdecoder.ErrReceiptNotFound.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (txdecoder.Receipt, error) {
	r, err := jsonrpc.FetchInto[receiptResponse](ctx, c.conn, "eth_getTransactionReceipt", hash)
	if err != nil {
		if errors.Is(err, jsonrpc.ErrNullResult) {
			return txdecoder.Receipt{}, txdecoder.ErrReceiptNotFound
		}
		return txdecoder.Receipt{}, err
	}

	receipt := txdecoder.Receipt{
		TxHash:            r.TransactionHash.Hex(),
		Status:            uint64(r.Status),
		GasUsed:           uint64(r.GasUsed),
		EffectiveGasPrice: bigOrNil(r.EffectiveGasPrice),
		Logs:              make([]txdecoder.Log, 0, len(r.Logs)),
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = uint64(*r.BlockNumber)
	}

	for _, l := range r.Logs {
		receipt.Logs = append(receipt.Logs, txdecoder.Log{
			Address: lowerHex(l.Address),
			Topics:  l.Topics,
			Data:    l.Data,
		})
	}

	return receipt, nil
}

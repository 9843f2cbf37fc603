package txdecoder

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrTransactionNotFound is returned by Blockchain when the node does not
	// know the transaction.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrReceiptNotFound is returned by Blockchain when the transaction has no
	// receipt yet.
	ErrReceiptNotFound = errors.New("transaction receipt not found")
)

// Transaction holds the transaction fields the decoder reads.
type Transaction struct {
	Hash     string
	From     string
	GasPrice *big.Int
}

// Log is an event emitted while executing a transaction.
type Log struct {
	Address string // emitting contract, lowercased
	Topics  []common.Hash
	Data    []byte
}

// Receipt is the execution result of a transaction.
type Receipt struct {
	TxHash            string
	BlockNumber       uint64   // zero while pending
	Status            uint64   // 1 on success
	GasUsed           uint64
	EffectiveGasPrice *big.Int // nil on nodes that do not report it
	Logs              []Log
}

// TokenMetadata is the display information of an ERC-20 contract.
type TokenMetadata struct {
	Symbol   string
	Decimals uint8
}

// Blockchain is the chain access needed to decode a transaction.
type Blockchain interface {
	// LatestBlockNumber returns the current head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// TransactionByHash returns the transaction or ErrTransactionNotFound.
	TransactionByHash(ctx context.Context, hash string) (Transaction, error)

	// TransactionReceipt returns the receipt or ErrReceiptNotFound.
	TransactionReceipt(ctx context.Context, hash string) (Receipt, error)

	// TokenMetadata reads symbol() and decimals() from the token contract.
	TokenMetadata(ctx context.Context, token string) (TokenMetadata, error)
}

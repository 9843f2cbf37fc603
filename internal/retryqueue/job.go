package retryqueue

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a job asks the handler to do.
type Kind string

// KindDecodeTransaction asks for the transaction TxHash to be decoded on
// behalf of the watched wallet Address.
const KindDecodeTransaction Kind = "decode_transaction"

// Job is a unit of pending work.
type Job struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	TxHash     string    `json:"tx_hash"`
	Address    string    `json:"address"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	Attempts   int       `json:"attempts"`
	LastError  string    `json:"last_error,omitempty"`
}

// NewDecodeJob returns a decode job for txHash and address.
func NewDecodeJob(txHash, address string) Job {
	return Job{
		ID:         uuid.New(),
		Kind:       KindDecodeTransaction,
		TxHash:     strings.ToLower(txHash),
		Address:    strings.ToLower(address),
		EnqueuedAt: time.Now().UTC(),
	}
}

// DeadLetter is a job that will not be retried anymore.
type DeadLetter struct {
	Job            Job       `json:"job"`
	Error          string    `json:"error"`
	DeadLetteredAt time.Time `json:"dead_lettered_at"`
}

// DeadLetterStorage keeps jobs that exhausted their attempts so they can be
// inspected and replayed by an operator.
type DeadLetterStorage interface {
	// SaveDeadLetter appends dl to the store.
	SaveDeadLetter(ctx context.Context, dl DeadLetter) error

	// ListDeadLetters returns up to limit entries, newest first.
	ListDeadLetters(ctx context.Context, limit int64) ([]DeadLetter, error)
}

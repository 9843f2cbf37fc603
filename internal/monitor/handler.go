package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletmon/internal/activity"
	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/retryqueue"
)

// ErrUnknownJobKind is returned for jobs no handler understands. Such jobs are
// dead-lettered without retry.
var ErrUnknownJobKind = errors.New("unknown job kind")

// Decoder turns a transaction into the activity of a watched wallet.
type Decoder interface {
	Decode(ctx context.Context, txHash, subject string) (*activity.Activity, error)
}

// Recorder hands a decoded activity downstream.
type Recorder interface {
	Record(ctx context.Context, a activity.Activity) error
}

// NewJobHandler returns the retry queue handler that decodes a job's
// transaction and records the resulting activity. Transactions that are not a
// two-leg trade of the watched wallet are dropped.
func NewJobHandler(decoder Decoder, recorder Recorder) retryqueue.Handler {
	return retryqueue.HandlerFunc(func(ctx context.Context, job retryqueue.Job) error {
		if job.Kind != retryqueue.KindDecodeTransaction {
			return retryqueue.Unrecoverable(fmt.Errorf("%w: %q", ErrUnknownJobKind, job.Kind))
		}

		a, err := decoder.Decode(ctx, job.TxHash, job.Address)
		if err != nil {
			return err
		}

		if a == nil {
			logger.Debug(ctx, "job dropped, no trade for wallet")
			return nil
		}

		return recorder.Record(ctx, *a)
	})
}

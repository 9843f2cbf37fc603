package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/walletmon/internal/retryqueue"
)

const deadLetterKey = "retryqueue:dead_letters"

// SaveDeadLetter pushes dl to the head of the dead-letter list.
func (c *client) SaveDeadLetter(ctx context.Context, dl retryqueue.DeadLetter) error {
	data, err := json.Marshal(dl)
	if err != nil {
		return err
	}

	return c.conn.LPush(ctx, deadLetterKey, data).Err()
}

// ListDeadLetters returns up to limit entries, newest first. A limit <= 0
// returns the whole list.
func (c *client) ListDeadLetters(ctx context.Context, limit int64) ([]retryqueue.DeadLetter, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}

	entries, err := c.conn.LRange(ctx, deadLetterKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	letters := make([]retryqueue.DeadLetter, 0, len(entries))
	for i, entry := range entries {
		var dl retryqueue.DeadLetter
		if err := json.Unmarshal([]byte(entry), &dl); err != nil {
			return nil, fmt.Errorf("dead letter %d: %w", i, err)
		}
		letters = append(letters, dl)
	}

	return letters, nil
}

var _ retryqueue.DeadLetterStorage = (*client)(nil)

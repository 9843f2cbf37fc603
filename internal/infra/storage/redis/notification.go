package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/walletmon/internal/activity"
)

// notificationQueueKey is consumed FIFO by the delivery side (BLPOP).
const notificationQueueKey = "notification:queue"

// PushNotification appends n to the tail of the notification queue.
func (c *client) PushNotification(ctx context.Context, n activity.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return c.conn.RPush(ctx, notificationQueueKey, data).Err()
}

var _ activity.NotificationQueue = (*client)(nil)

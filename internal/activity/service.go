// Package activity is the downstream sink of decoded trades. It persists each
// activity, recomputes the wallet's daily summary and fans the summary out to
// the wallet's subscriber chats through a notification queue.
package activity

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/x/chflow"
	"github.com/gabapcia/walletmon/internal/walletregistry"
)

const defaultNotificationBufferSize = 32

// Service records activities and dispatches the resulting notifications.
type Service interface {
	// Record persists a and, when the wallet has subscribers and traded in
	// both directions today, schedules a summary for each of them.
	Record(ctx context.Context, a Activity) error

	// Run pushes scheduled notifications to the queue until ctx is done.
	Run(ctx context.Context) error
}

type service struct {
	activityStorage   ActivityStorage
	walletStorage     WalletStorage
	notificationQueue NotificationQueue

	location *time.Location
	nowFn    func() time.Time

	notificationCh chan Notification
}

var _ Service = (*service)(nil)

func (s *service) startOfDay() time.Time {
	now := s.nowFn().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

func (s *service) Record(ctx context.Context, a Activity) error {
	ctx = logger.Derive(ctx, "activity.address", a.Address, "tx.hash", a.TxHash)

	if err := s.activityStorage.SaveActivity(ctx, a); err != nil {
		return err
	}

	wallet, err := s.walletStorage.GetWallet(ctx, a.Address)
	if err != nil {
		if errors.Is(err, walletregistry.ErrWalletNotFound) {
			logger.Warn(ctx, "activity recorded for an unwatched wallet")
			return nil
		}

		return err
	}

	if len(wallet.Chats) == 0 {
		return nil
	}

	summary, err := s.activityStorage.DailyTotals(ctx, a.Address, s.startOfDay())
	if err != nil {
		return err
	}

	if !summary.OutUSD.IsPositive() || !summary.InUSD.IsPositive() {
		return nil
	}

	for _, chatID := range wallet.Chats {
		if ok := chflow.Send(ctx, s.notificationCh, newNotification(chatID, wallet, summary)); !ok {
			return ctx.Err()
		}
	}

	logger.Debug(ctx, "daily summary scheduled",
		"notification.count", len(wallet.Chats),
		"summary.commissions_usd", summary.Commissions().StringFixed(2),
	)
	return nil
}

func (s *service) Run(ctx context.Context) error {
	for {
		n, ok := chflow.Receive(ctx, s.notificationCh)
		if !ok {
			return nil
		}

		if err := s.notificationQueue.PushNotification(ctx, n); err != nil {
			logger.Error(ctx, "failed to push notification",
				"notification.chat_id", n.ChatID,
				"notification.address", n.Address,
				"error", err,
			)
		}
	}
}

type config struct {
	bufferSize int
	location   *time.Location
	nowFn      func() time.Time
}

// Option configures the service.
type Option func(*config)

// WithBufferSize sets how many notifications may wait for the dispatcher
// before Record blocks.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// WithLocation sets the time zone that defines "today" for the daily summary.
// Default: UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		c.location = loc
	}
}

// WithClock overrides time.Now.
func WithClock(nowFn func() time.Time) Option {
	return func(c *config) {
		c.nowFn = nowFn
	}
}

// New returns a Service backed by the given stores.
func New(activities ActivityStorage, wallets WalletStorage, queue NotificationQueue, opts ...Option) *service {
	cfg := config{
		bufferSize: defaultNotificationBufferSize,
		location:   time.UTC,
		nowFn:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		activityStorage:   activities,
		walletStorage:     wallets,
		notificationQueue: queue,
		location:          cfg.location,
		nowFn:             cfg.nowFn,
		notificationCh:    make(chan Notification, cfg.bufferSize),
	}
}

package activity

import (
	"context"
	"time"

	"github.com/gabapcia/walletmon/internal/walletregistry"

	"github.com/shopspring/decimal"
)

// Classification is the trade direction of an activity.
type Classification string

const (
	// ClassificationBuy means the wallet paid with the stable reference token.
	ClassificationBuy Classification = "BUY"
	// ClassificationSell covers every other two-leg trade.
	ClassificationSell Classification = "SELL"
)

// Leg is one side of a trade: what left or entered the wallet.
type Leg struct {
	Token  string          `json:"token"` // lowercased contract address
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
}

// Activity is a decoded two-leg trade of a watched wallet. Values are never
// changed once an Activity has been built.
//
// The USD fields are nil when the price lookup failed.
type Activity struct {
	Address        string           `json:"address"`
	TxHash         string           `json:"tx_hash"`
	Date           time.Time        `json:"date"`
	Classification Classification   `json:"classification"`
	Out            Leg              `json:"out"`
	In             Leg              `json:"in"`
	OutUSD         *decimal.Decimal `json:"out_usd"`
	InUSD          *decimal.Decimal `json:"in_usd"`
	FeeNative      decimal.Decimal  `json:"fee_native"`
	FeeUSD         *decimal.Decimal `json:"fee_usd"`
}

// DailySummary aggregates the activities of one wallet since the start of a
// day.
type DailySummary struct {
	OutUSD    decimal.Decimal // outbound USD of BUY activities
	InUSD     decimal.Decimal // inbound USD of SELL activities
	FeeNative decimal.Decimal
	FeeUSD    decimal.Decimal
}

// Commissions is the USD lost to the round trips of the day.
func (s DailySummary) Commissions() decimal.Decimal {
	return s.OutUSD.Sub(s.InUSD)
}

// Notification is the daily summary addressed to one subscriber chat.
type Notification struct {
	ChatID         string          `json:"chat_id"`
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	DailyVolumeUSD decimal.Decimal `json:"daily_volume_usd"`
	CommissionsUSD decimal.Decimal `json:"commissions_usd"`
	FeeNative      decimal.Decimal `json:"fee_native"`
	FeeUSD         decimal.Decimal `json:"fee_usd"`
}

func newNotification(chatID string, wallet walletregistry.Wallet, summary DailySummary) Notification {
	return Notification{
		ChatID:         chatID,
		Address:        wallet.Address,
		Name:           wallet.Name,
		DailyVolumeUSD: wallet.DailyVolumeUSD,
		CommissionsUSD: summary.Commissions().Round(2),
		FeeNative:      summary.FeeNative,
		FeeUSD:         summary.FeeUSD.Round(2),
	}
}

// ActivityStorage persists activities and aggregates them per wallet.
type ActivityStorage interface {
	// SaveActivity stores a. Storing the same (TxHash, Address) twice must
	// not fail and must not create a second record.
	SaveActivity(ctx context.Context, a Activity) error

	// DailyTotals sums the activities of address dated after since.
	DailyTotals(ctx context.Context, address string, since time.Time) (DailySummary, error)
}

// WalletStorage is the wallet lookup used to find the subscribers of an
// address.
type WalletStorage interface {
	GetWallet(ctx context.Context, address string) (walletregistry.Wallet, error)
}

// NotificationQueue receives the notifications produced by Record.
type NotificationQueue interface {
	PushNotification(ctx context.Context, n Notification) error
}

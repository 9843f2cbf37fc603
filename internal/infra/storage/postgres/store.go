// Package postgres implements activity.ActivityStorage on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/walletmon/internal/activity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrMissingDSN is returned by NewStore when no connection string is given.
var ErrMissingDSN = errors.New("postgres dsn is required")

// conn is the subset of *pgxpool.Pool the store uses.
type conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store persists activities.
type Store struct {
	conn conn
}

var _ activity.ActivityStorage = (*Store)(nil)

// NewStore opens a pool on dsn and pings it.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{conn: pool}, nil
}

func (s *Store) Close() {
	s.conn.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	id             BIGSERIAL PRIMARY KEY,
	address        TEXT        NOT NULL,
	tx_hash        TEXT        NOT NULL,
	date           TIMESTAMPTZ NOT NULL,
	classification TEXT        NOT NULL,
	out_token      TEXT        NOT NULL,
	out_symbol     TEXT        NOT NULL,
	out_amount     NUMERIC     NOT NULL,
	in_token       TEXT        NOT NULL,
	in_symbol      TEXT        NOT NULL,
	in_amount      NUMERIC     NOT NULL,
	out_usd        NUMERIC,
	in_usd         NUMERIC,
	fee_native     NUMERIC     NOT NULL,
	fee_usd        NUMERIC,
	UNIQUE (tx_hash, address)
);
CREATE INDEX IF NOT EXISTS activities_address_date_idx ON activities (address, date);
`

// EnsureSchema creates the activities table and its index when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}

const insertActivity = `
INSERT INTO activities (
	address, tx_hash, date, classification,
	out_token, out_symbol, out_amount,
	in_token, in_symbol, in_amount,
	out_usd, in_usd, fee_native, fee_usd
) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10::numeric, $11::numeric, $12::numeric, $13::numeric, $14::numeric)
ON CONFLICT (tx_hash, address) DO NOTHING`

// nullable renders d for a NUMERIC column, nil becoming NULL.
func nullable(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// SaveActivity inserts a. A second insert of the same (tx_hash, address) is
// ignored.
func (s *Store) SaveActivity(ctx context.Context, a activity.Activity) error {
	_, err := s.conn.Exec(ctx, insertActivity,
		strings.ToLower(a.Address),
		strings.ToLower(a.TxHash),
		a.Date.UTC(),
		string(a.Classification),
		a.Out.Token,
		a.Out.Symbol,
		a.Out.Amount.String(),
		a.In.Token,
		a.In.Symbol,
		a.In.Amount.String(),
		nullable(a.OutUSD),
		nullable(a.InUSD),
		a.FeeNative.String(),
		nullable(a.FeeUSD),
	)
	if err != nil {
		return fmt.Errorf("save activity %s: %w", a.TxHash, err)
	}

	return nil
}

// Activities without a USD value count as zero.
const selectDailyTotals = `
SELECT
	COALESCE(SUM(out_usd) FILTER (WHERE classification = 'BUY'), 0)::text,
	COALESCE(SUM(in_usd) FILTER (WHERE classification = 'SELL'), 0)::text,
	COALESCE(SUM(fee_native), 0)::text,
	COALESCE(SUM(fee_usd), 0)::text
FROM activities
WHERE address = $1 AND date >= $2`

// DailyTotals sums the activities of address dated at or after since.
func (s *Store) DailyTotals(ctx context.Context, address string, since time.Time) (activity.DailySummary, error) {
	var outUSD, inUSD, feeNative, feeUSD string

	err := s.conn.QueryRow(ctx, selectDailyTotals, strings.ToLower(address), since.UTC()).
		Scan(&outUSD, &inUSD, &feeNative, &feeUSD)
	if err != nil {
		return activity.DailySummary{}, fmt.Errorf("daily totals of %s: %w", address, err)
	}

	var summary activity.DailySummary
	for _, f := range []struct {
		dst *decimal.Decimal
		raw string
	}{
		{&summary.OutUSD, outUSD},
		{&summary.InUSD, inUSD},
		{&summary.FeeNative, feeNative},
		{&summary.FeeUSD, feeUSD},
	} {
		if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
			return activity.DailySummary{}, fmt.Errorf("daily totals of %s: %w", address, err)
		}
	}

	return summary, nil
}

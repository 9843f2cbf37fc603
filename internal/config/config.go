// Package config loads the walletmon settings from the environment.
//
// Every variable is prefixed with WALLETMON_, e.g. WALLETMON_RPC_URL or
// WALLETMON_SCAN_POLL_INTERVAL. A .env file in the working directory is read
// first when present; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata" // Timezone must resolve on images without a zoneinfo database

	"github.com/gabapcia/walletmon/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const prefix = "walletmon"

type RPC struct {
	URL       string        `envconfig:"URL" validate:"required,url"`
	RateLimit float64       `envconfig:"RATE_LIMIT" default:"25"` // requests per second, <= 0 disables
	Burst     int           `envconfig:"BURST" default:"5" validate:"gte=1"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryMax  int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
}

type Scan struct {
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"3s"`
	ErrorBackoff time.Duration `envconfig:"ERROR_BACKOFF" default:"10s"`
	RateLimit    float64       `envconfig:"RATE_LIMIT" default:"25"` // logs + blocks per second
	Burst        int           `envconfig:"BURST" default:"50" validate:"gte=1"`
	IncludeSwaps bool          `envconfig:"INCLUDE_SWAPS" default:"false"`
}

type Queue struct {
	MaxAttempts  int           `envconfig:"MAX_ATTEMPTS" default:"10" validate:"gte=1"`
	RequeueDelay time.Duration `envconfig:"REQUEUE_DELAY" default:"1s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"1s"`
}

type Decoder struct {
	StableSymbol  string `envconfig:"STABLE_SYMBOL" default:"USDT" validate:"required"`
	Confirmations uint64 `envconfig:"CONFIRMATIONS" default:"0"`
}

type Price struct {
	BaseURL         string        `envconfig:"BASE_URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	APIKey          string        `envconfig:"API_KEY"`
	Platform        string        `envconfig:"PLATFORM" default:"binance-smart-chain" validate:"required"`
	NativeCoin      string        `envconfig:"NATIVE_COIN" default:"binancecoin" validate:"required"`
	Currency        string        `envconfig:"CURRENCY" default:"usd" validate:"required"`
	TTL             time.Duration `envconfig:"TTL" default:"60s"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"60s"`
	BatchSize       int           `envconfig:"BATCH_SIZE" default:"50" validate:"gte=1"`
	BatchPause      time.Duration `envconfig:"BATCH_PAUSE" default:"60s"`
	RetryAttempts   uint          `envconfig:"RETRY_ATTEMPTS" default:"3" validate:"gte=1"`
	RateLimit       float64       `envconfig:"RATE_LIMIT" default:"0.5"` // the free tier allows ~30 calls/min
	Burst           int           `envconfig:"BURST" default:"5" validate:"gte=1"`
}

type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

type Postgres struct {
	DSN string `envconfig:"DSN" validate:"required"`
}

// Config is the full walletmon configuration.
type Config struct {
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	Network          string        `envconfig:"NETWORK" default:"bsc" validate:"required"`
	Timezone         string        `envconfig:"TIMEZONE" default:"UTC" validate:"timezone"`
	WalletRefresh    time.Duration `envconfig:"WALLET_REFRESH_INTERVAL" default:"5s"`
	NotifyBuffer     int           `envconfig:"NOTIFY_BUFFER" default:"32" validate:"gte=0"`

	RPC      RPC      `envconfig:"RPC"`
	Scan     Scan     `envconfig:"SCAN"`
	Queue    Queue    `envconfig:"QUEUE"`
	Decoder  Decoder  `envconfig:"DECODER"`
	Price    Price    `envconfig:"PRICE"`
	Redis    Redis    `envconfig:"REDIS"`
	Postgres Postgres `envconfig:"POSTGRES"`
}

// Location returns the time zone used to compute the start of the day.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads envFiles (".env" when none is given), then the environment, and
// validates the result. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

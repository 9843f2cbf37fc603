package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/walletmon/internal/activity"
	"github.com/gabapcia/walletmon/internal/blockscan"
	"github.com/gabapcia/walletmon/internal/config"
	"github.com/gabapcia/walletmon/internal/handlers/cli"
	"github.com/gabapcia/walletmon/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletmon/internal/infra/price/coingecko"
	"github.com/gabapcia/walletmon/internal/infra/storage/postgres"
	"github.com/gabapcia/walletmon/internal/infra/storage/redis"
	"github.com/gabapcia/walletmon/internal/monitor"
	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/resilience/ratelimit"
	"github.com/gabapcia/walletmon/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletmon/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/walletmon/internal/pkg/transport/http"
	"github.com/gabapcia/walletmon/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletmon/internal/pricecache"
	"github.com/gabapcia/walletmon/internal/retryqueue"
	"github.com/gabapcia/walletmon/internal/txdecoder"
	"github.com/gabapcia/walletmon/internal/walletregistry"

	"github.com/ethereum/go-ethereum/common"
)

const serviceName = "walletmon"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Telemetry goes first so the logger can bridge to its LoggerProvider.
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer store.Close()

	activities, err := postgres.NewStore(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer activities.Close()

	if err := activities.EnsureSchema(ctx); err != nil {
		return err
	}

	chain := ethereum.NewClient(jsonrpc.NewClient(cfg.RPC.URL,
		jsonrpc.WithHTTPClient(transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.RPC.Timeout),
			transporthttp.WithRetryMax(cfg.RPC.RetryMax),
			transporthttp.WithLogging(),
		)),
		jsonrpc.WithLimiter(ratelimit.New(
			ratelimit.WithRate(cfg.RPC.RateLimit),
			ratelimit.WithBurst(cfg.RPC.Burst),
		)),
	))

	prices := pricecache.New(
		coingecko.NewClient(
			coingecko.WithBaseURL(cfg.Price.BaseURL),
			coingecko.WithAPIKey(cfg.Price.APIKey),
			coingecko.WithPlatform(cfg.Price.Platform),
			coingecko.WithHTTPClient(transporthttp.NewClient(transporthttp.WithLogging())),
			coingecko.WithLimiter(ratelimit.New(
				ratelimit.WithRate(cfg.Price.RateLimit),
				ratelimit.WithBurst(cfg.Price.Burst),
			)),
		),
		pricecache.WithNativeCoin(cfg.Price.NativeCoin),
		pricecache.WithCurrency(cfg.Price.Currency),
		pricecache.WithTTL(cfg.Price.TTL),
		pricecache.WithRefreshInterval(cfg.Price.RefreshInterval),
		pricecache.WithBatch(cfg.Price.BatchSize, cfg.Price.BatchPause),
		pricecache.WithRetry(retry.New(retry.WithAttempts(cfg.Price.RetryAttempts), retry.WithFixedDelay())),
	)

	registry := walletregistry.New(store)
	snapshot := walletregistry.NewSnapshot(store, walletregistry.WithRefreshInterval(cfg.WalletRefresh))

	recorder := activity.New(activities, store, store,
		activity.WithBufferSize(cfg.NotifyBuffer),
		activity.WithLocation(loc),
	)

	decoder := txdecoder.New(chain, prices,
		txdecoder.WithStableSymbol(cfg.Decoder.StableSymbol),
		txdecoder.WithConfirmations(cfg.Decoder.Confirmations),
	)

	queue := retryqueue.NewQueue()
	worker := retryqueue.NewWorker(queue, monitor.NewJobHandler(decoder, recorder),
		retryqueue.WithMaxAttempts(cfg.Queue.MaxAttempts),
		retryqueue.WithRequeueDelay(cfg.Queue.RequeueDelay),
		retryqueue.WithPollInterval(cfg.Queue.PollInterval),
		retryqueue.WithDeadLetterStorage(store),
	)

	topics := []common.Hash{txdecoder.TransferTopic}
	if cfg.Scan.IncludeSwaps {
		topics = append(topics, txdecoder.SwapTopic)
	}

	scanner := blockscan.New(cfg.Network, chain, snapshot, queue,
		blockscan.WithCheckpointStorage(store),
		blockscan.WithLimiter(ratelimit.New(
			ratelimit.WithRate(cfg.Scan.RateLimit),
			ratelimit.WithBurst(cfg.Scan.Burst),
		)),
		blockscan.WithPollInterval(cfg.Scan.PollInterval),
		blockscan.WithErrorBackoff(cfg.Scan.ErrorBackoff),
		blockscan.WithTopics(topics...),
	)

	pipeline := monitor.New(scanner, worker, snapshot, prices, recorder)

	return cli.Run(ctx, registry, pipeline, store)
}

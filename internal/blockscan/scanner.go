// Package blockscan drives the pipeline: it follows the chain head one block
// at a time, looks for Transfer logs sent by watched wallets and enqueues a
// decode job for each of them. Progress is checkpointed after every block so a
// restart resumes where the previous run stopped.
package blockscan

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/resilience/ratelimit"
	"github.com/gabapcia/walletmon/internal/pkg/x/chflow"
	"github.com/gabapcia/walletmon/internal/retryqueue"
	"github.com/gabapcia/walletmon/internal/txdecoder"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/walletmon/internal/blockscan"

type instruments struct {
	blocksScanned metric.Int64Counter
	jobsEnqueued  metric.Int64Counter
	cursor        metric.Int64Gauge
}

func newInstruments(mp metric.MeterProvider) instruments {
	meter := mp.Meter(meterName)

	blocks, err := meter.Int64Counter("blockscan.blocks.scanned", metric.WithDescription("Blocks fully scanned."))
	if err != nil {
		blocks = noop.Int64Counter{}
	}

	jobs, err := meter.Int64Counter("blockscan.jobs.enqueued", metric.WithDescription("Decode jobs enqueued for watched wallets."))
	if err != nil {
		jobs = noop.Int64Counter{}
	}

	cursor, err := meter.Int64Gauge("blockscan.cursor", metric.WithDescription("Last fully scanned block."))
	if err != nil {
		cursor = noop.Int64Gauge{}
	}

	return instruments{
		blocksScanned: blocks,
		jobsEnqueued:  jobs,
		cursor:        cursor,
	}
}

// Scanner follows one network. Run must be called from a single goroutine;
// Cursor may be read from any goroutine.
type Scanner struct {
	network string
	chain   Blockchain
	wallets WalletFilter
	queue   JobQueue

	checkpointStorage CheckpointStorage
	limiter           ratelimit.Limiter
	pollInterval      time.Duration
	errorBackoff      time.Duration
	topics            []common.Hash

	cursor  atomic.Uint64
	metrics instruments
}

// Cursor returns the last fully scanned block.
func (s *Scanner) Cursor() uint64 {
	return s.cursor.Load()
}

func (s *Scanner) advance(ctx context.Context, block uint64) {
	s.cursor.Store(block)

	network := metric.WithAttributes(attribute.String("block.network", s.network))
	s.metrics.blocksScanned.Add(ctx, 1, network)
	s.metrics.cursor.Record(ctx, int64(block), network)

	if err := s.checkpointStorage.SaveCheckpoint(ctx, s.network, block); err != nil {
		logger.Error(ctx, "failed to save checkpoint",
			"block.number", block,
			"error", err,
		)
	}
}

// start positions the cursor: at the checkpoint when there is one, at the
// chain head otherwise.
func (s *Scanner) start(ctx context.Context) error {
	checkpoint, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.network)
	if err == nil {
		s.cursor.Store(checkpoint)
		logger.Info(ctx, "resuming from checkpoint", "block.number", checkpoint)
		return nil
	}

	if !errors.Is(err, ErrNoCheckpointFound) {
		return err
	}

	head, err := s.chain.LatestBlockNumber(ctx)
	if err != nil {
		return err
	}

	s.cursor.Store(head)
	logger.Info(ctx, "no checkpoint, starting at chain head", "block.number", head)
	return nil
}

// scanBlock enqueues a job for every log of block sent by a watched wallet.
func (s *Scanner) scanBlock(ctx context.Context, block uint64) error {
	logs, err := s.chain.LogsByBlock(ctx, block, s.topics)
	if err != nil {
		return err
	}

	for _, log := range logs {
		if len(log.Topics) >= 3 {
			from := txdecoder.TopicAddress(log.Topics[1])
			if s.wallets.Contains(from) {
				s.queue.Enqueue(retryqueue.NewDecodeJob(log.TxHash, from))
				s.metrics.jobsEnqueued.Add(ctx, 1, metric.WithAttributes(attribute.String("block.network", s.network)))

				logger.Debug(ctx, "watched transfer found",
					"tx.hash", log.TxHash,
					"log.index", log.Index,
					"wallet.address", from,
				)
			}
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}

// scan processes every block between the cursor and the current head.
func (s *Scanner) scan(ctx context.Context) error {
	head, err := s.chain.LatestBlockNumber(ctx)
	if err != nil {
		return err
	}

	for block := s.Cursor() + 1; block <= head; block++ {
		blockCtx := logger.Derive(ctx, "block.number", block)

		if err := s.scanBlock(blockCtx, block); err != nil {
			return err
		}

		s.advance(blockCtx, block)

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Run scans until ctx is done. Errors are logged and followed by the error
// backoff; the failing block is scanned again from its first log.
func (s *Scanner) Run(ctx context.Context) error {
	ctx = logger.Derive(ctx, "block.network", s.network)

	for {
		err := s.start(ctx)
		if err == nil {
			break
		}

		logger.Error(ctx, "failed to position scanner", "error", err)
		if !chflow.Sleep(ctx, s.errorBackoff) {
			return nil
		}
	}

	for {
		wait := s.pollInterval

		if err := s.scan(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			logger.Error(ctx, "block scan failed",
				"block.number", s.Cursor()+1,
				"error", err,
			)
			wait = s.errorBackoff
		}

		if !chflow.Sleep(ctx, wait) {
			return nil
		}
	}
}

type config struct {
	checkpointStorage CheckpointStorage
	limiter           ratelimit.Limiter
	pollInterval      time.Duration
	errorBackoff      time.Duration
	topics            []common.Hash
	meterProvider     metric.MeterProvider
}

// Option configures a Scanner.
type Option func(*config)

// WithCheckpointStorage persists the cursor. Without it every start begins at
// the chain head.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithLimiter paces the scan: one token is taken after every log and after
// every block. Default: unlimited.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(c *config) {
		c.limiter = l
	}
}

// WithPollInterval sets the pause once the scanner caught up with the head.
// Default: 3 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithErrorBackoff sets the pause after a failed scan. Default: 10 seconds.
func WithErrorBackoff(d time.Duration) Option {
	return func(c *config) {
		c.errorBackoff = d
	}
}

// WithTopics sets the event signatures requested per block.
// Default: the ERC-20 Transfer event.
func WithTopics(topics ...common.Hash) Option {
	return func(c *config) {
		c.topics = topics
	}
}

// WithMeterProvider sets where the scanner instruments are registered.
// Default: the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// New returns a Scanner for network.
func New(network string, chain Blockchain, wallets WalletFilter, queue JobQueue, opts ...Option) *Scanner {
	cfg := config{
		checkpointStorage: nopCheckpoint{},
		limiter:           ratelimit.Unlimited(),
		pollInterval:      3 * time.Second,
		errorBackoff:      10 * time.Second,
		topics:            []common.Hash{txdecoder.TransferTopic},
		meterProvider:     otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scanner{
		network:           network,
		chain:             chain,
		wallets:           wallets,
		queue:             queue,
		checkpointStorage: cfg.checkpointStorage,
		limiter:           cfg.limiter,
		pollInterval:      cfg.pollInterval,
		errorBackoff:      cfg.errorBackoff,
		topics:            cfg.topics,
		metrics:           newInstruments(cfg.meterProvider),
	}
}

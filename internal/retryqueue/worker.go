package retryqueue

import (
	"context"
	"time"

	"github.com/gabapcia/walletmon/internal/pkg/logger"
	"github.com/gabapcia/walletmon/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletmon/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/walletmon/internal/retryqueue"

// Handler processes one job. A nil error removes the job from the queue.
type Handler interface {
	Handle(ctx context.Context, job Job) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, job Job) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, job Job) error {
	return f(ctx, job)
}

// Unrecoverable marks err as permanent: the worker dead-letters the job
// instead of requeueing it.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

type instruments struct {
	processed    metric.Int64Counter
	requeued     metric.Int64Counter
	deadLettered metric.Int64Counter
}

func newCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{job}"))
	if err != nil {
		return noop.Int64Counter{}
	}

	return c
}

func newInstruments(mp metric.MeterProvider) instruments {
	meter := mp.Meter(meterName)

	return instruments{
		processed:    newCounter(meter, "retryqueue.jobs.processed", "Jobs handled successfully."),
		requeued:     newCounter(meter, "retryqueue.jobs.requeued", "Failed jobs put back at the tail of the queue."),
		deadLettered: newCounter(meter, "retryqueue.jobs.dead_lettered", "Jobs dropped after exhausting their attempts."),
	}
}

// Worker drains a Queue through a Handler. Run it from a single goroutine.
type Worker struct {
	queue   *Queue
	handler Handler

	maxAttempts       int
	requeueDelay      time.Duration
	pollInterval      time.Duration
	deadLetterStorage DeadLetterStorage
	nowFn             func() time.Time

	metrics instruments
}

func (w *Worker) deadLetter(ctx context.Context, job Job, cause error) {
	w.metrics.deadLettered.Add(ctx, 1, metric.WithAttributes(attribute.String("job.kind", string(job.Kind))))

	logger.Error(ctx, "job dead-lettered",
		"job.attempts", job.Attempts,
		"error", cause,
	)

	if w.deadLetterStorage == nil {
		return
	}

	dl := DeadLetter{
		Job:            job,
		Error:          cause.Error(),
		DeadLetteredAt: w.nowFn().UTC(),
	}
	if err := w.deadLetterStorage.SaveDeadLetter(ctx, dl); err != nil {
		logger.Error(ctx, "failed to store dead letter", "error", err)
	}
}

// process handles job and decides its fate. It returns false when ctx ended
// while the job was in flight.
func (w *Worker) process(ctx context.Context, job Job) bool {
	ctx = logger.Derive(ctx,
		"job.id", job.ID.String(),
		"job.kind", job.Kind,
		"tx.hash", job.TxHash,
		"job.address", job.Address,
	)
	kind := metric.WithAttributes(attribute.String("job.kind", string(job.Kind)))

	err := w.handler.Handle(ctx, job)
	if err == nil {
		w.metrics.processed.Add(ctx, 1, kind)
		return true
	}

	if ctx.Err() != nil {
		return false
	}

	job.Attempts++
	job.LastError = err.Error()

	if retry.IsUnrecoverable(err) || job.Attempts >= w.maxAttempts {
		w.deadLetter(ctx, job, err)
		return true
	}

	logger.Warn(ctx, "job failed, requeueing",
		"job.attempts", job.Attempts,
		"error", err,
	)

	if !chflow.Sleep(ctx, w.requeueDelay) {
		return false
	}

	w.queue.Enqueue(job)
	w.metrics.requeued.Add(ctx, 1, kind)
	return true
}

// drain processes the jobs queued at call time, in order. Jobs requeued while
// draining wait for the next call.
func (w *Worker) drain(ctx context.Context) bool {
	for range w.queue.Len() {
		job, ok := w.queue.Dequeue()
		if !ok {
			break
		}

		if !w.process(ctx, job) {
			return false
		}
	}

	return true
}

// Run drains the queue, waits the poll interval and repeats until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if !w.drain(ctx) || !chflow.Sleep(ctx, w.pollInterval) {
			return nil
		}
	}
}

type config struct {
	maxAttempts       int
	requeueDelay      time.Duration
	pollInterval      time.Duration
	deadLetterStorage DeadLetterStorage
	meterProvider     metric.MeterProvider
	nowFn             func() time.Time
}

// Option configures a Worker.
type Option func(*config)

// WithMaxAttempts sets how many times a job is tried before it is
// dead-lettered. Default: 10.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithRequeueDelay sets the pause before a failed job goes back to the
// queue. Default: 1 second.
func WithRequeueDelay(d time.Duration) Option {
	return func(c *config) {
		c.requeueDelay = d
	}
}

// WithPollInterval sets the pause between two drains. Default: 1 second.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithDeadLetterStorage persists dead-lettered jobs. Without it they are only
// logged.
func WithDeadLetterStorage(s DeadLetterStorage) Option {
	return func(c *config) {
		c.deadLetterStorage = s
	}
}

// WithMeterProvider sets where the worker counters are registered.
// Default: the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// NewWorker returns a worker draining queue through handler.
func NewWorker(queue *Queue, handler Handler, opts ...Option) *Worker {
	cfg := config{
		maxAttempts:   10,
		requeueDelay:  time.Second,
		pollInterval:  time.Second,
		meterProvider: otel.GetMeterProvider(),
		nowFn:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxAttempts < 1 {
		cfg.maxAttempts = 1
	}

	return &Worker{
		queue:             queue,
		handler:           handler,
		maxAttempts:       cfg.maxAttempts,
		requeueDelay:      cfg.requeueDelay,
		pollInterval:      cfg.pollInterval,
		deadLetterStorage: cfg.deadLetterStorage,
		nowFn:             cfg.nowFn,
		metrics:           newInstruments(cfg.meterProvider),
	}
}

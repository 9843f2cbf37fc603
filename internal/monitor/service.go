// Package monitor runs the wallet-activity pipeline: the block scanner, the
// retry queue worker, the wallet snapshot refresh, the price refresh and the
// notification dispatcher, all under one cancellable context.
package monitor

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/walletmon/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ErrServiceAlreadyStarted is returned if Start is called on a running
// service.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the pipeline lifecycle.
type Service interface {
	// Start launches every loop in the background. It returns
	// ErrServiceAlreadyStarted when the pipeline is already running.
	Start(ctx context.Context) error

	// Close stops every loop and waits for them to return. It is safe to
	// call Close on a service that was never started.
	Close()
}

// Loop is a background routine that runs until its context is done.
type Loop interface {
	Run(ctx context.Context) error
}

// Warmer is implemented by loops that need a first synchronous pass before
// the pipeline starts.
type Warmer interface {
	Refresh(ctx context.Context) error
}

type namedLoop struct {
	name string
	loop Loop
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	loops []namedLoop
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	for _, l := range s.loops {
		if w, ok := l.loop.(Warmer); ok {
			if err := w.Refresh(ctx); err != nil {
				return err
			}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for _, l := range s.loops {
		g.Go(func() error {
			loopCtx := logger.Derive(gctx, "loop", l.name)

			logger.Info(loopCtx, "loop started")
			defer logger.Info(loopCtx, "loop stopped")

			return l.loop.Run(loopCtx)
		})
	}

	s.closeFunc = func() {
		cancel()
		if err := g.Wait(); err != nil {
			logger.Error(ctx, "pipeline stopped with error", "error", err)
		}
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	loops []namedLoop
}

// Option configures the service.
type Option func(*config)

// WithLoop adds an extra background loop.
func WithLoop(name string, l Loop) Option {
	return func(c *config) {
		c.loops = append(c.loops, namedLoop{name: name, loop: l})
	}
}

// New returns the pipeline. The registry is warmed up by Start, so the scanner
// sees the watched wallets from its first block.
func New(scanner, worker, registry, prices, notifier Loop, opts ...Option) *service {
	cfg := config{
		loops: []namedLoop{
			{name: "registry", loop: registry},
			{name: "scanner", loop: scanner},
			{name: "worker", loop: worker},
			{name: "prices", loop: prices},
			{name: "notifier", loop: notifier},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		loops: cfg.loops,
	}
}

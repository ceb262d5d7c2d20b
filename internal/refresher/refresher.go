// Package refresher periodically rebuilds the search index so the
// engine tracks record-store changes without caller involvement.
package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driving"
)

// Refresher drives periodic index rebuilds. A failed rebuild is
// logged and retried on the next tick; the engine keeps serving the
// previous index in the meantime.
type Refresher struct {
	engine   driving.SearchService
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Config holds configuration for the refresher.
type Config struct {
	Engine   driving.SearchService
	Logger   *slog.Logger
	Interval time.Duration
}

// New creates a refresher. Interval defaults to five minutes.
func New(cfg Config) *Refresher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &Refresher{
		engine:   cfg.Engine,
		logger:   logger,
		interval: interval,
	}
}

// Start begins the refresh loop. It runs until Stop is called or the
// context is cancelled. Calling Start on a running refresher is a
// no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.mu.Unlock()

	r.logger.Info("index refresher starting", "interval", r.interval)

	go r.loop(ctx)
}

// Stop gracefully stops the refresh loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	doneCh := r.doneCh
	r.mu.Unlock()

	<-doneCh
	r.logger.Info("index refresher stopped")
}

func (r *Refresher) loop(ctx context.Context) {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			if err := r.engine.RefreshIndex(ctx); err != nil {
				r.logger.Error("scheduled index refresh failed", "error", err)
			}
		}
	}
}

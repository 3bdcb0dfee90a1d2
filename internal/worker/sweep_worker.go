package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/koladefi/financial-operations/internal/observability"
	"github.com/koladefi/financial-operations/internal/ratelimit"
)

// SweepWorker periodically evicts rate-limiter keys with no traffic inside
// the window. Without it, every caller that ever showed up stays in the
// limiter map for the life of the process.
type SweepWorker struct {
	limiter  *ratelimit.Limiter
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSweepWorker constructs a worker with a default five minute interval.
func NewSweepWorker(limiter *ratelimit.Limiter) *SweepWorker {
	return &SweepWorker{
		limiter:  limiter,
		interval: 5 * time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// WithInterval updates the sweep interval.
func (w *SweepWorker) WithInterval(interval time.Duration) *SweepWorker {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

// Start blocks and sweeps at the configured interval.
func (w *SweepWorker) Start(ctx context.Context) {
	zap.L().Info("rate limiter sweep worker starting", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("sweep worker context canceled")
			return
		case <-w.stopCh:
			zap.L().Info("sweep worker stop signal received")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

// Stop stops the running worker loop.
func (w *SweepWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

// Run starts the worker in a goroutine and returns a stop function.
func (w *SweepWorker) Run(ctx context.Context) func() {
	go w.Start(ctx)
	return w.Stop
}

func (w *SweepWorker) runOnce() {
	evicted := w.limiter.Sweep(time.Now())
	remaining := w.limiter.Len()
	observability.SetLimiterKeys(remaining)
	observability.IncrementWorkerRun("ratelimit_sweep", "success")
	zap.L().Debug("rate limiter swept", zap.Int("evicted", evicted), zap.Int("remaining", remaining))
}

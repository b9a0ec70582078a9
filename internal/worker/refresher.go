// Package worker runs background jobs of the dashboard server.
package worker

import (
	"context"
	"sync"
	"time"

	"recyclehub/pkg/logger"
)

// Loader reloads every cached entity.
type Loader interface {
	Init(ctx context.Context)
}

// Refresher reloads the store on a fixed interval so the dashboard picks up
// changes made by other clients of the backend.
type Refresher struct {
	loader   Loader
	interval time.Duration
	log      *logger.Logger

	mu   sync.Mutex
	runs int
}

// NewRefresher creates a refresher. It does nothing when interval <= 0.
func NewRefresher(loader Loader, interval time.Duration, log *logger.Logger) *Refresher {
	return &Refresher{
		loader:   loader,
		interval: interval,
		log:      log.WithComponent("refresher"),
	}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Infow("refresher started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("refresher stopped")
			return

		case <-ticker.C:
			start := time.Now()
			r.loader.Init(ctx)

			r.mu.Lock()
			r.runs++
			r.mu.Unlock()

			r.log.Debugw("store refreshed", "duration_ms", time.Since(start).Milliseconds())
		}
	}
}

// Runs reports how many refreshes completed.
func (r *Refresher) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

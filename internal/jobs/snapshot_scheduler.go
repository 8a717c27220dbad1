package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"festserve/internal/metrics"
	"festserve/internal/pkg/clock"
	"festserve/internal/pkg/config"
	"festserve/internal/usecase/commands"
)

// SnapshotScheduler runs the periodic reporting batch. Each run fires at a
// wall-clock boundary (top of the hour by default) and snapshots every
// campaign once. Missed boundaries are not backfilled.
type SnapshotScheduler struct {
	snapshots commands.SnapshotCommands
	clock     clock.Clock
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

func NewSnapshotScheduler(snapshots commands.SnapshotCommands, clk clock.Clock, cfg config.SnapshotConfig) *SnapshotScheduler {
	return &SnapshotScheduler{
		snapshots: snapshots,
		clock:     clk,
		interval:  cfg.Interval,
	}
}

func (s *SnapshotScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	slog.Info("snapshot scheduler started", "interval", s.interval.String())
}

func (s *SnapshotScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	slog.Info("snapshot scheduler stopped")
}

func (s *SnapshotScheduler) run(ctx context.Context) {
	defer close(s.done)

	for {
		// Re-align after every run: a batch that overruns the boundary
		// skips straight to the next one instead of catching up.
		wait := time.Until(nextBoundary(s.clock.Now(), s.interval))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		s.runOnce(ctx)
	}
}

func (s *SnapshotScheduler) runOnce(ctx context.Context) {
	start := time.Now()
	written, err := s.snapshots.TakeAll(ctx)
	metrics.SnapshotJobDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SnapshotJobRuns.WithLabelValues("failure").Inc()
		slog.Error("snapshot batch failed", "error", err.Error())
		return
	}

	metrics.SnapshotJobRuns.WithLabelValues("success").Inc()
	slog.Info("snapshot batch completed", "snapshots_written", written)
}

// nextBoundary returns the first instant strictly after now that lies on the
// interval grid, e.g. the next top of the hour for a 1h interval.
func nextBoundary(now time.Time, interval time.Duration) time.Time {
	truncated := now.Truncate(interval)
	if !truncated.After(now) {
		truncated = truncated.Add(interval)
	}
	return truncated
}

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gdtbot/internal/domain"
)

// Reconciler runs one polling tick.
type Reconciler interface {
	Reconcile(ctx context.Context) (*domain.TickStats, error)
}

// tickTimeout bounds a single tick. A tick touches at most a few dozen
// remote calls, so anything running this long is wedged, not busy.
const tickTimeout = 5 * time.Minute

type Scheduler struct {
	reconciler Reconciler
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(reconciler Reconciler, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

// Start ticks immediately, then every interval, until the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runTick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	if _, err := s.reconciler.Reconcile(tickCtx); err != nil {
		s.logger.Error("tick failed", "error", err)
	}
}

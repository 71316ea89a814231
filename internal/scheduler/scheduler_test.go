package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdtbot/internal/domain"
)

type countingReconciler struct {
	ticks atomic.Int32
	err   error
}

func (r *countingReconciler) Reconcile(ctx context.Context) (*domain.TickStats, error) {
	r.ticks.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.TickStats{}, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerRunsImmediatelyAndOnInterval(t *testing.T) {
	rec := &countingReconciler{}
	s := NewScheduler(rec, 20*time.Millisecond, newTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// One immediate tick plus at least two interval ticks.
	assert.GreaterOrEqual(t, rec.ticks.Load(), int32(3))
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	rec := &countingReconciler{}
	s := NewScheduler(rec, time.Hour, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}

	assert.Equal(t, int32(1), rec.ticks.Load())
}

func TestSchedulerKeepsTickingAfterFailure(t *testing.T) {
	rec := &countingReconciler{err: errors.New("feed down")}
	s := NewScheduler(rec, 20*time.Millisecond, newTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, rec.ticks.Load(), int32(2))
}

//go:build unit

package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/pkg/clock"
	"parkme/internal/pkg/config"
	"parkme/internal/pkg/errs"
	"parkme/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandidates struct {
	ids   []uuid.UUID
	err   error
	calls []candidateCall
}

type candidateCall struct {
	now   time.Time
	grace time.Duration
	limit int
}

func (f *fakeCandidates) NoShowCandidates(_ context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error) {
	f.calls = append(f.calls, candidateCall{now: now, grace: grace, limit: limit})
	return f.ids, f.err
}

type fakeMarker struct {
	mu     sync.Mutex
	errs   map[uuid.UUID]error
	marked []uuid.UUID
}

func (f *fakeMarker) ExpireNoShow(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	f.marked = append(f.marked, id)
	return nil, nil
}

func sweepConfig() config.BookingConfig {
	return config.BookingConfig{
		NoShowGrace:    15 * time.Minute,
		SweepInterval:  10 * time.Millisecond,
		SweepBatchSize: 50,
	}
}

func TestNoShowSweeper_SweepOnce(t *testing.T) {
	now := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

	t.Run("marks every candidate and passes the configured window", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		candidates := &fakeCandidates{ids: ids}
		marker := &fakeMarker{}
		w := worker.NewNoShowSweeper(candidates, marker, clock.NewMockClock(now), sweepConfig())

		marked := w.SweepOnce(context.Background())

		assert.Equal(t, 2, marked)
		assert.Equal(t, ids, marker.marked)
		require.Len(t, candidates.calls, 1)
		assert.Equal(t, candidateCall{now: now, grace: 15 * time.Minute, limit: 50}, candidates.calls[0])

		stats := w.Stats()
		assert.Equal(t, int64(2), stats.TotalMarked)
		assert.Equal(t, int64(0), stats.TotalFailed)
		assert.Equal(t, 2, stats.LastMarkedCount)
		assert.Equal(t, now, stats.LastScanTime)
	})

	t.Run("skips bookings that moved on and counts real failures", func(t *testing.T) {
		moved, broken, ok := uuid.New(), uuid.New(), uuid.New()
		marker := &fakeMarker{errs: map[uuid.UUID]error{
			moved:  errs.Mark(errs.New("booking is ACTIVE"), errs.ErrInvalidTransition),
			broken: errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed),
		}}
		w := worker.NewNoShowSweeper(&fakeCandidates{ids: []uuid.UUID{moved, broken, ok}}, marker, clock.NewMockClock(now), sweepConfig())

		marked := w.SweepOnce(context.Background())

		assert.Equal(t, 1, marked)
		assert.Equal(t, []uuid.UUID{ok}, marker.marked)
		stats := w.Stats()
		assert.Equal(t, int64(1), stats.TotalMarked)
		assert.Equal(t, int64(1), stats.TotalFailed)
	})

	t.Run("listing failure marks nothing", func(t *testing.T) {
		marker := &fakeMarker{}
		candidates := &fakeCandidates{err: errs.New("db down")}
		w := worker.NewNoShowSweeper(candidates, marker, clock.NewMockClock(now), sweepConfig())

		assert.Equal(t, 0, w.SweepOnce(context.Background()))
		assert.Empty(t, marker.marked)
		assert.True(t, w.Stats().LastScanTime.IsZero())
	})

	t.Run("zero batch size falls back to the default", func(t *testing.T) {
		candidates := &fakeCandidates{}
		cfg := sweepConfig()
		cfg.SweepBatchSize = 0
		w := worker.NewNoShowSweeper(candidates, &fakeMarker{}, clock.NewMockClock(now), cfg)

		w.SweepOnce(context.Background())

		require.Len(t, candidates.calls, 1)
		assert.Equal(t, 100, candidates.calls[0].limit)
	})
}

type countingCandidates struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCandidates) NoShowCandidates(context.Context, time.Time, time.Duration, int) ([]uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil, nil
}

func (c *countingCandidates) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestNoShowSweeper_StartStop(t *testing.T) {
	candidates := &countingCandidates{}
	w := worker.NewNoShowSweeper(candidates, &fakeMarker{}, clock.NewRealClock(), sweepConfig())

	w.Start(context.Background())
	w.Start(context.Background())
	assert.True(t, w.Stats().IsRunning)

	assert.Eventually(t, func() bool { return candidates.count() >= 2 }, time.Second, 5*time.Millisecond)

	w.Stop()
	assert.False(t, w.Stats().IsRunning)

	after := candidates.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, candidates.count())

	w.Stop()
}

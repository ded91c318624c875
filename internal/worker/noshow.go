package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/pkg/clock"
	"parkme/internal/pkg/config"
	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

type NoShowCandidates interface {
	NoShowCandidates(ctx context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error)
}

type NoShowMarker interface {
	ExpireNoShow(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

type NoShowSweepStats struct {
	IsRunning       bool
	TotalMarked     int64
	TotalFailed     int64
	LastScanTime    time.Time
	LastMarkedCount int
}

// NoShowSweeper periodically moves CONFIRMED bookings past their no-show
// cutoff to NO_SHOW. Each booking goes through the regular command path, so
// a booking that was activated or cancelled since the scan is skipped.
type NoShowSweeper struct {
	candidates NoShowCandidates
	marker     NoShowMarker
	clock      clock.Clock
	interval   time.Duration
	batchSize  int
	grace      time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	stats   NoShowSweepStats
}

func NewNoShowSweeper(candidates NoShowCandidates, marker NoShowMarker, clk clock.Clock, cfg config.BookingConfig) *NoShowSweeper {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	batch := cfg.SweepBatchSize
	if batch <= 0 {
		batch = 100
	}
	return &NoShowSweeper{
		candidates: candidates,
		marker:     marker,
		clock:      clk,
		interval:   interval,
		batchSize:  batch,
		grace:      cfg.NoShowGrace,
	}
}

func (w *NoShowSweeper) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	w.running = true
	w.stats.IsRunning = true

	go w.loop(ctx, w.done)
	slog.Info("no-show sweep started", "interval", w.interval.String(), "batch_size", w.batchSize)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (w *NoShowSweeper) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	done := w.done
	w.running = false
	w.stats.IsRunning = false
	w.mu.Unlock()

	<-done
	slog.Info("no-show sweep stopped")
}

func (w *NoShowSweeper) Stats() NoShowSweepStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *NoShowSweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.SweepOnce(ctx)
		}
	}
}

// SweepOnce marks at most one batch and returns how many bookings moved to
// NO_SHOW. Per-booking failures are logged and do not stop the batch.
func (w *NoShowSweeper) SweepOnce(ctx context.Context) int {
	now := w.clock.Now()
	ids, err := w.candidates.NoShowCandidates(ctx, now, w.grace, w.batchSize)
	if err != nil {
		slog.Error("no-show sweep: failed to list candidates", "error", err.Error())
		return 0
	}

	marked, failed := 0, 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if _, err := w.marker.ExpireNoShow(ctx, id); err != nil {
			// Lost the race to activate or cancel; nothing to do.
			if errs.Is(err, errs.ErrInvalidTransition) {
				slog.Debug("no-show sweep: booking moved on", "booking_id", id.String())
				continue
			}
			failed++
			slog.Warn("no-show sweep: failed to mark booking",
				"booking_id", id.String(),
				"error", err.Error())
			continue
		}
		marked++
	}

	w.mu.Lock()
	w.stats.TotalMarked += int64(marked)
	w.stats.TotalFailed += int64(failed)
	w.stats.LastScanTime = now
	w.stats.LastMarkedCount = marked
	w.mu.Unlock()

	if marked > 0 || failed > 0 {
		slog.Info("no-show sweep finished", "candidates", len(ids), "marked", marked, "failed", failed)
	}
	return marked
}

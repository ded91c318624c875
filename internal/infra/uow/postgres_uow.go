package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/readstore"
	"parkme/internal/infra/repository"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool     *pgxpool.Pool
	q        *sqlc.Queries
	lockWait time.Duration
}

// NewPostgresUoW locks spots with row locks; lockWait bounds a blocking
// acquisition through lock_timeout.
func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, lockWait time.Duration) *PostgresUoW {
	// lock_timeout = 0 would wait forever
	if lockWait <= 0 {
		lockWait = 3 * time.Second
	}
	return &PostgresUoW{
		pool:     pool,
		q:        q,
		lockWait: lockWait,
	}
}

// WithinSpot runs fn in a ReadCommitted transaction that first takes the
// spot row lock. COMMIT releases the lock together with the writes.
func (u *PostgresUoW) WithinSpot(ctx context.Context, spotID uuid.UUID, policy lock.WaitPolicy, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ctx context.Context, dbtx pgx.Tx) error {
		if err := u.lockSpot(ctx, dbtx, spotID, policy); err != nil {
			return err
		}
		return fn(ctx, &pgTx{dbtx: dbtx, uow: u})
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) lockSpot(ctx context.Context, dbtx pgx.Tx, spotID uuid.UUID, policy lock.WaitPolicy) error {
	var err error
	if policy == lock.NoWait {
		_, err = u.q.LockSpotNoWait(ctx, dbtx, spotID)
	} else {
		if _, err = dbtx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", strconv.FormatInt(u.lockWait.Milliseconds(), 10)+"ms"); err != nil {
			return infra.WrapRepoErr("failed to set lock timeout", err)
		}
		_, err = u.q.LockSpot(ctx, dbtx, spotID)
	}
	if err == nil {
		return nil
	}

	switch {
	case pgconv.IsNoRows(err):
		return infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
	case pgconv.SQLState(err) == pgErrCodeLockNotAvailable && policy == lock.NoWait:
		return errs.Mark(errs.Wrapf(err, "spot %s is held by another operation", spotID), errs.ErrResourceLocked)
	case pgconv.SQLState(err) == pgErrCodeLockNotAvailable:
		return errs.Mark(errs.Wrapf(err, "timed out after %s waiting for spot %s", u.lockWait, spotID), errs.ErrLockTimeout)
	default:
		return infra.WrapRepoErr("failed to lock spot", err)
	}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx pgx.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, pgxTx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.SQLState(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	spotRepo         shared.SpotRepository
	bookingRepo      shared.BookingRepository
	subscriptionRepo shared.SubscriptionRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Spots() shared.SpotRepository {
	if t.spotRepo == nil {
		t.spotRepo = repository.NewSpotRepository(t.uow.q, t.dbtx)
	}
	return t.spotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.uow.q, t.dbtx)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	spotStore    *readstore.SpotReadStore
	bookingStore *readstore.BookingReadStore
	pricingStore *readstore.PricingReadStore
}

func (r *commandReads) spots() *readstore.SpotReadStore {
	if r.spotStore == nil {
		r.spotStore = readstore.NewSpotReadStore(r.uow.q, r.dbtx)
	}
	return r.spotStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) pricing() *readstore.PricingReadStore {
	if r.pricingStore == nil {
		r.pricingStore = readstore.NewPricingReadStore(r.uow.q, r.dbtx)
	}
	return r.pricingStore
}

func (r *commandReads) SpotByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.spots().FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().FindByID(ctx, id)
}

func (r *commandReads) HoldingBookingsForSpot(ctx context.Context, spotID uuid.UUID) ([]*booking.Booking, error) {
	return r.bookings().HoldingForSpot(ctx, spotID)
}

func (r *commandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	return r.pricing().VehicleByID(ctx, id)
}

func (r *commandReads) FacilityPricing(ctx context.Context, facilityID uuid.UUID) (*pricing.FacilityPricing, error) {
	return r.pricing().FacilityPricing(ctx, facilityID)
}

func (r *commandReads) ActiveSubscription(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error) {
	return r.pricing().ActiveSubscription(ctx, userID, facilityID, now)
}

func (r *commandReads) TicketExists(ctx context.Context, ticket booking.TicketNumber) (bool, error) {
	return r.bookings().TicketExists(ctx, ticket)
}

func (r *commandReads) NoShowCandidates(ctx context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error) {
	return r.bookings().NoShowCandidates(ctx, now, grace, limit)
}

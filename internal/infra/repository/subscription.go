package repository

import (
	"context"
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionWriteQueries interface {
	LockActiveSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.LockActiveSubscriptionParams) (sqlc.Subscription, error)
	ConsumeSubscriptionEntry(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SubscriptionExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

// LockActive row-locks the user's usable plan until the transaction ends.
// Returns nil, nil when there is none.
func (r *SubscriptionRepository) LockActive(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error) {
	row, err := r.queries.LockActiveSubscription(ctx, r.db, sqlc.LockActiveSubscriptionParams{
		UserID:     userID,
		FacilityID: facilityID,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock subscription", err)
	}
	return converter.SubscriptionFromRow(row), nil
}

// ConsumeEntry uses one entry of a counted plan. Unlimited plans match the
// update without changing.
func (r *SubscriptionRepository) ConsumeEntry(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.ConsumeSubscriptionEntry(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to consume subscription entry", err)
	}
	if n > 0 {
		return nil
	}

	exists, err := r.queries.SubscriptionExists(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to check subscription", err)
	}
	if !exists {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return errs.Mark(errs.Newf("subscription %s has no entries left", id), pricing.ErrSubscriptionExhausted)
}

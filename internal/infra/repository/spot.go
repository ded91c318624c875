package repository

import (
	"context"

	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotWriteQueries interface {
	GetSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spot, error)
	UpdateSpotState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpotStateParams) (int64, error)
	LockZone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	RecountZone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	LockFacility(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	RecountFacility(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type SpotRepository struct {
	queries SpotWriteQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotWriteQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpotRepository) Get(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.GetSpot(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get spot", err)
	}
	return converter.SpotFromRow(row)
}

func (r *SpotRepository) Save(ctx context.Context, s *spot.Spot) error {
	n, err := r.queries.UpdateSpotState(ctx, r.db, converter.SpotToStateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update spot state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecountAvailability locks the zone row and then its facility row so
// concurrent recounts serialise in the same order.
func (r *SpotRepository) RecountAvailability(ctx context.Context, zoneID uuid.UUID) error {
	facilityID, err := r.queries.LockZone(ctx, r.db, zoneID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("zone not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock zone", err)
	}
	if err := r.queries.RecountZone(ctx, r.db, zoneID); err != nil {
		return infra.WrapRepoErr("failed to recount zone", err)
	}
	if _, err := r.queries.LockFacility(ctx, r.db, facilityID); err != nil {
		return infra.WrapRepoErr("failed to lock facility", err)
	}
	if err := r.queries.RecountFacility(ctx, r.db, facilityID); err != nil {
		return infra.WrapRepoErr("failed to recount facility", err)
	}
	return nil
}

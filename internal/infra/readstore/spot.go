package readstore

import (
	"context"

	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SpotViewQueries interface {
	GetSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spot, error)
	GetFacilityAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetFacilityAvailabilityRow, error)
	ListZoneAvailability(ctx context.Context, db sqlc.DBTX, facilityID uuid.UUID) ([]sqlc.ListZoneAvailabilityRow, error)
	ListAvailableSpots(ctx context.Context, db sqlc.DBTX, facilityID uuid.UUID) ([]sqlc.Spot, error)
}

type SpotReadStore struct {
	queries SpotViewQueries
	db      sqlc.DBTX
}

func NewSpotReadStore(queries SpotViewQueries, db sqlc.DBTX) *SpotReadStore {
	return &SpotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.GetSpot(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get spot", err)
	}
	return converter.SpotFromRow(row)
}

func (r *SpotReadStore) FacilityAvailability(ctx context.Context, facilityID uuid.UUID) (*readmodel.FacilityAvailabilityView, error) {
	f, err := r.queries.GetFacilityAvailability(ctx, r.db, facilityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get facility availability", err)
	}
	zones, err := r.queries.ListZoneAvailability(ctx, r.db, facilityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list zone availability", err)
	}

	view := &readmodel.FacilityAvailabilityView{
		ID:             f.ID,
		Name:           f.Name,
		TimeZone:       f.Timezone,
		TotalSpots:     int(f.TotalSpots),
		AvailableSpots: int(f.AvailableSpots),
		Zones:          make([]readmodel.ZoneAvailabilityView, 0, len(zones)),
	}
	for _, z := range zones {
		view.Zones = append(view.Zones, readmodel.ZoneAvailabilityView{
			ID:             z.ID,
			Code:           z.Code,
			Name:           z.Name,
			TotalSpots:     int(z.TotalSpots),
			AvailableSpots: int(z.AvailableSpots),
		})
	}
	return view, nil
}

// AvailableSpots lists the facility's active AVAILABLE spots by number.
func (r *SpotReadStore) AvailableSpots(ctx context.Context, facilityID uuid.UUID) ([]*spot.Spot, error) {
	if _, err := r.queries.GetFacilityAvailability(ctx, r.db, facilityID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get facility", err)
	}
	rows, err := r.queries.ListAvailableSpots(ctx, r.db, facilityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available spots", err)
	}
	spots := make([]*spot.Spot, 0, len(rows))
	for _, row := range rows {
		sp, err := converter.SpotFromRow(row)
		if err != nil {
			return nil, err
		}
		spots = append(spots, sp)
	}
	return spots, nil
}

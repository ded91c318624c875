package readstore

import (
	"context"
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingViewQueries interface {
	GetFacility(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetFacilityRow, error)
	ListActivePricingRules(ctx context.Context, db sqlc.DBTX, facilityID uuid.UUID) ([]sqlc.ListActivePricingRulesRow, error)
	GetActiveSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveSubscriptionParams) (sqlc.Subscription, error)
	GetVehicle(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicle, error)
}

type PricingReadStore struct {
	queries PricingViewQueries
	db      sqlc.DBTX
}

func NewPricingReadStore(queries PricingViewQueries, db sqlc.DBTX) *PricingReadStore {
	return &PricingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PricingReadStore) FacilityPricing(ctx context.Context, facilityID uuid.UUID) (*pricing.FacilityPricing, error) {
	facility, err := r.queries.GetFacility(ctx, r.db, facilityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get facility", err)
	}
	rules, err := r.queries.ListActivePricingRules(ctx, r.db, facilityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	return converter.FacilityPricingFromRows(facility, rules)
}

// ActiveSubscription returns nil, nil when the user holds no usable plan.
func (r *PricingReadStore) ActiveSubscription(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error) {
	row, err := r.queries.GetActiveSubscription(ctx, r.db, sqlc.GetActiveSubscriptionParams{
		UserID:     userID,
		FacilityID: facilityID,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get active subscription", err)
	}
	return converter.SubscriptionFromRow(row), nil
}

func (r *PricingReadStore) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	row, err := r.queries.GetVehicle(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}
	return converter.VehicleFromRow(row)
}

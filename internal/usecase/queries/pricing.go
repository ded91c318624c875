package queries

import (
	"context"
	"time"

	"parkme/internal/domain/pricing"
	reqdto "parkme/internal/handler/dto/request"
	"parkme/internal/pkg/clock"

	"github.com/google/uuid"
)

// PricingReadStore is satisfied by the command-side reads; estimates only
// need committed rule and subscription data.
type PricingReadStore interface {
	FacilityPricing(ctx context.Context, facilityID uuid.UUID) (*pricing.FacilityPricing, error)
	ActiveSubscription(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error)
}

type PricingQueries interface {
	// Estimate never records subscription usage.
	Estimate(ctx context.Context, req reqdto.EstimateRequest, userID uuid.UUID) (*pricing.Result, error)
}

type pricingQueriesImpl struct {
	store      PricingReadStore
	calculator *pricing.Calculator
	clock      clock.Clock
}

func NewPricingQueries(store PricingReadStore, calculator *pricing.Calculator, clock clock.Clock) PricingQueries {
	return &pricingQueriesImpl{store: store, calculator: calculator, clock: clock}
}

func (q *pricingQueriesImpl) Estimate(ctx context.Context, req reqdto.EstimateRequest, userID uuid.UUID) (*pricing.Result, error) {
	facilityID, err := req.ParsedFacilityID()
	if err != nil {
		return nil, err
	}
	vehicleType, err := req.ParsedVehicleType()
	if err != nil {
		return nil, err
	}
	size, err := req.ParsedSpotSize()
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	start := now
	if req.StartTime != nil {
		start = *req.StartTime
	}

	fp, err := q.store.FacilityPricing(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	var sub *pricing.Subscription
	if userID != uuid.Nil {
		if sub, err = q.store.ActiveSubscription(ctx, userID, facilityID, now); err != nil {
			return nil, err
		}
	}

	return q.calculator.Estimate(*fp, pricing.Request{
		VehicleType:  vehicleType,
		SpotSize:     size,
		Start:        start,
		End:          start.Add(req.Duration()),
		Subscription: sub,
		Now:          now,
	})
}

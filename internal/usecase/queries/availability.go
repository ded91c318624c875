package queries

import (
	"context"

	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/usecase/readmodel"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	FacilityAvailability(ctx context.Context, facilityID uuid.UUID) (*readmodel.FacilityAvailabilityView, error)
	AvailableSpots(ctx context.Context, facilityID uuid.UUID) ([]*spot.Spot, error)
}

type AvailabilityQueries interface {
	Facility(ctx context.Context, facilityID uuid.UUID) (*readmodel.FacilityAvailabilityView, error)
	// CheckSpot never waits: a spot locked by an in-flight operation is
	// reported as locked rather than blocking the caller.
	CheckSpot(ctx context.Context, spotID uuid.UUID) (*readmodel.SpotAvailabilityView, error)
	// SearchSpots lists available spots that fit the vehicle and provide
	// every requested feature.
	SearchSpots(ctx context.Context, facilityID uuid.UUID, vehicleType spot.VehicleType, req spot.Requirements) ([]readmodel.SpotView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	uow   shared.UnitOfWork
}

func NewAvailabilityQueries(store AvailabilityReadStore, uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, uow: uow}
}

func (q *availabilityQueriesImpl) Facility(ctx context.Context, facilityID uuid.UUID) (*readmodel.FacilityAvailabilityView, error) {
	return q.store.FacilityAvailability(ctx, facilityID)
}

func (q *availabilityQueriesImpl) SearchSpots(ctx context.Context, facilityID uuid.UUID, vehicleType spot.VehicleType, req spot.Requirements) ([]readmodel.SpotView, error) {
	if !vehicleType.IsValid() {
		return nil, errs.Validation("unknown vehicle type %q", vehicleType)
	}
	spots, err := q.store.AvailableSpots(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	views := make([]readmodel.SpotView, 0, len(spots))
	for _, sp := range spots {
		if sp.CheckBookable() != nil || sp.Accommodates(vehicleType, req) != nil {
			continue
		}
		f := sp.Features()
		views = append(views, readmodel.SpotView{
			ID:         sp.ID(),
			ZoneID:     sp.ZoneID(),
			Number:     sp.Number(),
			Size:       sp.Size().String(),
			EVCharger:  f.EVCharger,
			Accessible: f.Accessible,
			Covered:    f.Covered,
			VIP:        f.VIP,
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) CheckSpot(ctx context.Context, spotID uuid.UUID) (*readmodel.SpotAvailabilityView, error) {
	var view *readmodel.SpotAvailabilityView
	err := q.uow.WithinSpot(ctx, spotID, lock.NoWait, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Spots().Get(ctx, spotID)
		if err != nil {
			return err
		}
		view = &readmodel.SpotAvailabilityView{
			SpotID:   sp.ID(),
			Number:   sp.Number(),
			Status:   sp.Status().String(),
			Bookable: sp.CheckBookable() == nil && sp.IsAvailable(),
		}
		return nil
	})
	if err == nil {
		return view, nil
	}
	if !errs.Is(err, errs.ErrResourceLocked) {
		return nil, err
	}

	sp, err := q.uow.CommandReads().SpotByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	return &readmodel.SpotAvailabilityView{
		SpotID: sp.ID(),
		Number: sp.Number(),
		Status: sp.Status().String(),
		Locked: true,
	}, nil
}

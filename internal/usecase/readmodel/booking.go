package readmodel

import (
	"time"

	"parkme/internal/domain/pricing"

	"github.com/google/uuid"
)

type BookingView struct {
	ID             uuid.UUID
	TicketNumber   string
	UserID         uuid.UUID
	VehicleID      uuid.UUID
	VehicleType    string
	SpotID         uuid.UUID
	SpotNumber     string
	FacilityID     uuid.UUID
	Type           string
	Status         string
	EntryTime      time.Time
	ExpectedExit   *time.Time
	ActualExit     *time.Time
	EstimatedPrice *pricing.Money
	FinalPrice     *pricing.Money
	Penalty        pricing.Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v *BookingView) IsOverstay() bool {
	return v.ActualExit != nil && v.ExpectedExit != nil && v.ActualExit.After(*v.ExpectedExit)
}

// BookingFilter lists newest first; After* is an exclusive keyset bound.
type BookingFilter struct {
	Status         *string
	Limit          int
	AfterCreatedAt *time.Time
	AfterID        uuid.UUID
}

// Admits reports whether (createdAt, id) sorts after the keyset bound in
// newest-first order.
func (f BookingFilter) Admits(createdAt time.Time, id uuid.UUID) bool {
	if f.AfterCreatedAt == nil {
		return true
	}
	bound := f.AfterCreatedAt.Truncate(time.Microsecond)
	ts := createdAt.Truncate(time.Microsecond)
	if ts.Equal(bound) {
		return id.String() < f.AfterID.String()
	}
	return ts.Before(bound)
}

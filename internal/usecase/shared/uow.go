package shared

import (
	"context"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/pkg/lock"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// WithinSpot: Atomic unit holding the exclusive lock on one spot. The
	// lock is released only after staged writes are durable.
	WithinSpot(ctx context.Context, spotID uuid.UUID, policy lock.WaitPolicy, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Spots() SpotRepository
	Bookings() BookingRepository
	Subscriptions() SubscriptionRepository
	Reads() CommandReads
}

type CommandReads interface {
	SpotByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// HoldingBookingsForSpot returns CONFIRMED and ACTIVE bookings on the spot.
	HoldingBookingsForSpot(ctx context.Context, spotID uuid.UUID) ([]*booking.Booking, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	FacilityPricing(ctx context.Context, facilityID uuid.UUID) (*pricing.FacilityPricing, error)
	// ActiveSubscription returns nil without error when the user has none.
	ActiveSubscription(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error)
	TicketExists(ctx context.Context, ticket booking.TicketNumber) (bool, error)
	NoShowCandidates(ctx context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error)
}

// Minimal vehicle snapshot; vehicles are owned by another service.
type VehicleSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Plate  string
	Type   spot.VehicleType
	Active bool
}

type SpotRepository interface {
	// Get reads the spot inside the unit of work, after its lock is held.
	Get(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	Save(ctx context.Context, s *spot.Spot) error
	// RecountAvailability recomputes zone and facility counters from spot rows.
	RecountAvailability(ctx context.Context, zoneID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	AddExtension(ctx context.Context, e *booking.Extension) error
}

type SubscriptionRepository interface {
	// LockActive returns the user's usable plan held for the rest of the
	// unit, or nil when there is none.
	LockActive(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error)
	// ConsumeEntry fails with pricing.ErrSubscriptionExhausted when a
	// counted plan has no entries left.
	ConsumeEntry(ctx context.Context, subscriptionID uuid.UUID) error
}

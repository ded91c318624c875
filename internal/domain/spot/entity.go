package spot

import (
	"time"

	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

type Spot struct {
	id             uuid.UUID
	zoneID         uuid.UUID
	facilityID     uuid.UUID
	number         string
	size           Size
	features       Features
	status         Status
	currentBooking *uuid.UUID
	active         bool
	updatedAt      time.Time
}

func ReconstructSpot(
	id, zoneID, facilityID uuid.UUID,
	number string,
	size Size,
	features Features,
	status Status,
	currentBooking *uuid.UUID,
	active bool,
	updatedAt time.Time,
) *Spot {
	return &Spot{
		id:             id,
		zoneID:         zoneID,
		facilityID:     facilityID,
		number:         number,
		size:           size,
		features:       features,
		status:         status,
		currentBooking: currentBooking,
		active:         active,
		updatedAt:      updatedAt,
	}
}

func (s *Spot) ID() uuid.UUID                { return s.id }
func (s *Spot) ZoneID() uuid.UUID            { return s.zoneID }
func (s *Spot) FacilityID() uuid.UUID        { return s.facilityID }
func (s *Spot) Number() string               { return s.number }
func (s *Spot) Size() Size                   { return s.size }
func (s *Spot) Features() Features           { return s.features }
func (s *Spot) Status() Status               { return s.status }
func (s *Spot) CurrentBookingID() *uuid.UUID { return s.currentBooking }
func (s *Spot) IsActive() bool               { return s.active }
func (s *Spot) UpdatedAt() time.Time         { return s.updatedAt }

func (s *Spot) IsAvailable() bool {
	return s.active && s.status == StatusAvailable
}

// CheckBookable rejects spots that cannot take any booking at all.
func (s *Spot) CheckBookable() error {
	if !s.active {
		return errs.Mark(errs.Newf("spot %s is disabled", s.number), errs.ErrResourceUnavailable)
	}
	if s.status == StatusMaintenance {
		return errs.Mark(errs.Newf("spot %s is under maintenance", s.number), errs.ErrResourceUnavailable)
	}
	return nil
}

// Accommodates checks size hierarchy and requested capability flags.
func (s *Spot) Accommodates(vehicle VehicleType, req Requirements) error {
	if !vehicle.IsValid() {
		return errs.Validation("unknown vehicle type %q", vehicle)
	}
	if !s.size.Fits(vehicle.RequiredSize()) {
		return errs.Mark(
			errs.Newf("spot %s (%s) is too small for %s", s.number, s.size, vehicle),
			errs.ErrIncompatibleSpot,
		)
	}
	if !s.features.Satisfies(req) {
		return errs.Mark(
			errs.Newf("spot %s lacks requested features", s.number),
			errs.ErrIncompatibleSpot,
		)
	}
	return nil
}

// Holder is a non-terminal booking that still claims the spot.
type Holder struct {
	BookingID uuid.UUID
	Active    bool
	Start     time.Time
}

// Reconcile derives status and the current-booking back-reference from the
// bookings that still hold the spot. Maintenance is left untouched.
func (s *Spot) Reconcile(holders []Holder, now time.Time) {
	if s.status == StatusMaintenance {
		return
	}

	var reserved *Holder
	for i := range holders {
		h := holders[i]
		if h.Active {
			id := h.BookingID
			s.status = StatusOccupied
			s.currentBooking = &id
			s.updatedAt = now
			return
		}
		if reserved == nil || h.Start.Before(reserved.Start) {
			reserved = &holders[i]
		}
	}

	if reserved != nil {
		id := reserved.BookingID
		s.status = StatusReserved
		s.currentBooking = &id
	} else {
		s.status = StatusAvailable
		s.currentBooking = nil
	}
	s.updatedAt = now
}

// Availability holds the denormalised counters kept on zones and facilities.
type Availability struct {
	ID             uuid.UUID
	Name           string
	TotalSpots     int
	AvailableSpots int
}

func (s *Spot) Clone() *Spot {
	c := *s
	if s.currentBooking != nil {
		id := *s.currentBooking
		c.currentBooking = &id
	}
	return &c
}

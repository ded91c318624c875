package booking

import (
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	vehicleID      uuid.UUID
	vehicleType    spot.VehicleType
	spotID         uuid.UUID
	facilityID     uuid.UUID
	bookingType    Type
	status         Status
	ticket         TicketNumber
	entryTime      time.Time
	expectedExit   *time.Time
	actualExit     *time.Time
	estimatedPrice *pricing.Money
	finalPrice     *pricing.Money
	penalty        pricing.Money
	appliedRuleID  *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

// Party identifies who books what, shared by both creation paths.
type Party struct {
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	VehicleType spot.VehicleType
	SpotID      uuid.UUID
	FacilityID  uuid.UUID
}

func (p Party) validate() error {
	if p.UserID == uuid.Nil {
		return errs.Validation("user id is required")
	}
	if p.VehicleID == uuid.Nil {
		return errs.Validation("vehicle id is required")
	}
	if p.SpotID == uuid.Nil {
		return errs.Validation("spot id is required")
	}
	if !p.VehicleType.IsValid() {
		return errs.Validation("unknown vehicle type %q", p.VehicleType)
	}
	return nil
}

// NewReservation creates a CONFIRMED booking for a future interval.
func NewReservation(p Party, interval Interval, ticket TicketNumber, estimate *pricing.Money, now time.Time) (*Booking, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if interval.End == nil {
		return nil, errs.Validation("reservation needs an expected exit")
	}
	if !interval.Start.Before(*interval.End) {
		return nil, errs.Validation("entry time must be before expected exit")
	}
	if !interval.End.After(now) {
		return nil, errs.Validation("expected exit %s is in the past", interval.End.Format(time.RFC3339))
	}

	exit := *interval.End
	return &Booking{
		id:             uuid.New(),
		userID:         p.UserID,
		vehicleID:      p.VehicleID,
		vehicleType:    p.VehicleType,
		spotID:         p.SpotID,
		facilityID:     p.FacilityID,
		bookingType:    TypeReservation,
		status:         StatusConfirmed,
		ticket:         ticket,
		entryTime:      interval.Start,
		expectedExit:   &exit,
		estimatedPrice: estimate,
		penalty:        pricing.Zero(),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewDriveIn creates an ACTIVE booking that starts now with no expected exit.
func NewDriveIn(p Party, ticket TicketNumber, now time.Time) (*Booking, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Booking{
		id:          uuid.New(),
		userID:      p.UserID,
		vehicleID:   p.VehicleID,
		vehicleType: p.VehicleType,
		spotID:      p.SpotID,
		facilityID:  p.FacilityID,
		bookingType: TypeDriveIn,
		status:      StatusActive,
		ticket:      ticket,
		entryTime:   now,
		penalty:     pricing.Zero(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, userID, vehicleID uuid.UUID,
	vehicleType spot.VehicleType,
	spotID, facilityID uuid.UUID,
	bookingType Type,
	status Status,
	ticket TicketNumber,
	entryTime time.Time,
	expectedExit, actualExit *time.Time,
	estimatedPrice, finalPrice *pricing.Money,
	penalty pricing.Money,
	appliedRuleID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		userID:         userID,
		vehicleID:      vehicleID,
		vehicleType:    vehicleType,
		spotID:         spotID,
		facilityID:     facilityID,
		bookingType:    bookingType,
		status:         status,
		ticket:         ticket,
		entryTime:      entryTime,
		expectedExit:   expectedExit,
		actualExit:     actualExit,
		estimatedPrice: estimatedPrice,
		finalPrice:     finalPrice,
		penalty:        penalty,
		appliedRuleID:  appliedRuleID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// CheckTransition reports whether the booking may move to status to.
func (b *Booking) CheckTransition(to Status) error {
	if !b.status.CanTransitionTo(to) {
		return errs.Mark(
			errs.Newf("booking %s cannot move from %s to %s", b.ticket, b.status, to),
			errs.ErrInvalidTransition,
		)
	}
	return nil
}

func (b *Booking) transition(to Status, now time.Time) error {
	if err := b.CheckTransition(to); err != nil {
		return err
	}
	b.status = to
	b.updatedAt = now
	return nil
}

// Activate checks a CONFIRMED booking in. entry_time becomes the actual
// arrival, early or late, so billing starts when the vehicle did. Callers
// must check the ArrivalInterval against the spot's other holders first.
func (b *Booking) Activate(now time.Time) error {
	if err := b.transition(StatusActive, now); err != nil {
		return err
	}
	b.entryTime = now
	return nil
}

// ArrivalInterval is the span the booking would hold if checked in at now.
func (b *Booking) ArrivalInterval(now time.Time) Interval {
	return Interval{Start: now, End: b.expectedExit}
}

// Extension records one move of a booking's expected exit.
type Extension struct {
	ID              uuid.UUID
	BookingID       uuid.UUID
	PreviousExit    time.Time
	NewExit         time.Time
	AdditionalPrice pricing.Money
	RequestedAt     time.Time
}

// CheckExtend reports whether the expected exit may move to newExit.
// Only CONFIRMED and ACTIVE bookings with a scheduled exit can be extended,
// and only later.
func (b *Booking) CheckExtend(newExit, now time.Time) error {
	if b.status != StatusConfirmed && b.status != StatusActive {
		return errs.Mark(
			errs.Newf("booking %s cannot be extended while %s", b.ticket, b.status),
			errs.ErrInvalidTransition,
		)
	}
	if b.expectedExit == nil {
		return errs.Validation("booking %s has no expected exit to extend", b.ticket)
	}
	if !newExit.After(*b.expectedExit) {
		return errs.Validation("new exit must be after %s", b.expectedExit.Format(time.RFC3339))
	}
	if !newExit.After(now) {
		return errs.Validation("new exit %s is in the past", newExit.Format(time.RFC3339))
	}
	return nil
}

// ExtendedInterval is the span the booking would hold with newExit.
func (b *Booking) ExtendedInterval(newExit time.Time) Interval {
	return Interval{Start: b.entryTime, End: &newExit}
}

// Extend moves the expected exit and re-estimates the stay. Callers must
// check the ExtendedInterval against the spot's other holders first.
func (b *Booking) Extend(newExit time.Time, estimate pricing.Money, now time.Time) (*Extension, error) {
	if err := b.CheckExtend(newExit, now); err != nil {
		return nil, err
	}
	previous := *b.expectedExit
	additional := estimate
	if b.estimatedPrice != nil {
		additional = estimate.Sub(*b.estimatedPrice)
	}
	exit := newExit
	b.expectedExit = &exit
	b.estimatedPrice = &estimate
	b.updatedAt = now
	return &Extension{
		ID:              uuid.New(),
		BookingID:       b.id,
		PreviousExit:    previous,
		NewExit:         newExit,
		AdditionalPrice: additional,
		RequestedAt:     now,
	}, nil
}

// Complete closes an ACTIVE booking with its final price.
func (b *Booking) Complete(now time.Time, final *pricing.Result) error {
	if err := b.CheckTransition(StatusCompleted); err != nil {
		return err
	}
	if final == nil {
		return errs.New("final price is required to complete a booking")
	}
	if err := b.transition(StatusCompleted, now); err != nil {
		return err
	}
	exit := now
	total := final.Total
	b.actualExit = &exit
	b.finalPrice = &total
	b.penalty = final.Penalties
	b.appliedRuleID = final.AppliedRuleID
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCancelled, now)
}

// MarkNoShow expires a CONFIRMED booking once its cutoff has passed.
func (b *Booking) MarkNoShow(now time.Time, grace time.Duration) error {
	if b.status != StatusConfirmed {
		return b.transition(StatusNoShow, now)
	}
	cutoff := b.NoShowCutoff(grace)
	if now.Before(cutoff) {
		return errs.Mark(
			errs.Newf("booking %s is not a no-show before %s", b.ticket, cutoff.Format(time.RFC3339)),
			errs.ErrInvalidTransition,
		)
	}
	return b.transition(StatusNoShow, now)
}

// NoShowCutoff is entry_time+grace when a grace is configured and ends
// before the expected exit, otherwise the expected exit itself.
func (b *Booking) NoShowCutoff(grace time.Duration) time.Time {
	if b.expectedExit == nil {
		return b.entryTime.Add(grace)
	}
	if grace > 0 {
		if c := b.entryTime.Add(grace); c.Before(*b.expectedExit) {
			return c
		}
	}
	return *b.expectedExit
}

func (b *Booking) Interval() Interval {
	return Interval{Start: b.entryTime, End: b.expectedExit}
}

// Holder is the view of this booking the spot reconciles against.
func (b *Booking) Holder() spot.Holder {
	return spot.Holder{BookingID: b.id, Active: b.status == StatusActive, Start: b.entryTime}
}

func (b *Booking) IsOverstay() bool {
	return b.actualExit != nil && b.expectedExit != nil && b.actualExit.After(*b.expectedExit)
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) UserID() uuid.UUID              { return b.userID }
func (b *Booking) VehicleID() uuid.UUID           { return b.vehicleID }
func (b *Booking) VehicleType() spot.VehicleType  { return b.vehicleType }
func (b *Booking) SpotID() uuid.UUID              { return b.spotID }
func (b *Booking) FacilityID() uuid.UUID          { return b.facilityID }
func (b *Booking) Type() Type                     { return b.bookingType }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) TicketNumber() TicketNumber     { return b.ticket }
func (b *Booking) EntryTime() time.Time           { return b.entryTime }
func (b *Booking) ExpectedExit() *time.Time       { return b.expectedExit }
func (b *Booking) ActualExit() *time.Time         { return b.actualExit }
func (b *Booking) EstimatedPrice() *pricing.Money { return b.estimatedPrice }
func (b *Booking) FinalPrice() *pricing.Money     { return b.finalPrice }
func (b *Booking) Penalty() pricing.Money         { return b.penalty }
func (b *Booking) AppliedRuleID() *uuid.UUID      { return b.appliedRuleID }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }

// Clone returns an independent copy so staged writes never alias stored state.
func (b *Booking) Clone() *Booking {
	c := *b
	c.expectedExit = copyTime(b.expectedExit)
	c.actualExit = copyTime(b.actualExit)
	if b.estimatedPrice != nil {
		v := *b.estimatedPrice
		c.estimatedPrice = &v
	}
	if b.finalPrice != nil {
		v := *b.finalPrice
		c.finalPrice = &v
	}
	if b.appliedRuleID != nil {
		v := *b.appliedRuleID
		c.appliedRuleID = &v
	}
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

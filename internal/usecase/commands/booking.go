package commands

import (
	"context"
	"log/slog"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	reqdto "parkme/internal/handler/dto/request"
	"parkme/internal/infra"
	"parkme/internal/pkg/clock"
	"parkme/internal/pkg/config"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/pkg/tracing"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTicketExhausted = errs.New("could not issue a unique ticket number")

const maxSubscriptionAttempts = 3

type CompleteResult struct {
	Booking *booking.Booking
	// Price is nil when the booking had already been completed.
	Price    *pricing.Result
	Replayed bool
}

type ExtendResult struct {
	Booking   *booking.Booking
	Extension *booking.Extension
}

type BookingCommands interface {
	Reserve(ctx context.Context, req reqdto.ReserveRequest, userID uuid.UUID) (*booking.Booking, error)
	DriveIn(ctx context.Context, req reqdto.DriveInRequest, userID uuid.UUID) (*booking.Booking, error)
	// Activate, Complete, Cancel, MarkNoShow and Extend only act on the caller's own bookings.
	Activate(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error)
	Complete(ctx context.Context, bookingID, userID uuid.UUID) (*CompleteResult, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error)
	MarkNoShow(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error)
	ExpireNoShow(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	Extend(ctx context.Context, bookingID, userID uuid.UUID, newExit time.Time) (*ExtendResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator *pricing.Calculator
	tickets    *booking.TicketGenerator
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calculator *pricing.Calculator,
	tickets *booking.TicketGenerator,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	if cfg.MaxTicketAttempts <= 0 {
		cfg.MaxTicketAttempts = 5
	}
	return &bookingCommandsImpl{
		uow:        uow,
		calculator: calculator,
		tickets:    tickets,
		clock:      clock,
		cfg:        cfg,
	}
}

func (c *bookingCommandsImpl) Reserve(ctx context.Context, req reqdto.ReserveRequest, userID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.reserve",
		attribute.String("spot.id", req.SpotID.String()),
		attribute.String("user.id", userID.String()),
	)
	defer func() { tracing.End(span, err) }()

	interval, err := req.Interval()
	if err != nil {
		return nil, err
	}
	vehicle, err := c.ownedVehicle(ctx, req.VehicleID, userID)
	if err != nil {
		return nil, err
	}
	requirements := req.Requirements.ToDomain()

	var created *booking.Booking
	err = c.withTicketRetry(ctx, req.SpotID, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		sp, err := tx.Spots().Get(ctx, req.SpotID)
		if err != nil {
			return err
		}
		if err := sp.CheckBookable(); err != nil {
			return err
		}
		if err := sp.Accommodates(vehicle.Type, requirements); err != nil {
			return err
		}

		holders, err := tx.Reads().HoldingBookingsForSpot(ctx, sp.ID())
		if err != nil {
			return err
		}
		if blocker := openEndedHolder(holders); blocker != nil {
			return errs.Mark(
				errs.Newf("spot %s is occupied by %s with no scheduled exit", sp.Number(), blocker.TicketNumber()),
				errs.ErrResourceUnavailable,
			)
		}
		if err := booking.CheckNoConflict(interval, holders); err != nil {
			return err
		}

		fp, err := tx.Reads().FacilityPricing(ctx, sp.FacilityID())
		if err != nil {
			return err
		}
		sub, err := tx.Reads().ActiveSubscription(ctx, userID, sp.FacilityID(), now)
		if err != nil {
			return err
		}
		estimate, err := c.calculator.Estimate(*fp, pricing.Request{
			VehicleType:  vehicle.Type,
			SpotSize:     sp.Size(),
			Start:        interval.Start,
			End:          *interval.End,
			Subscription: sub,
			Now:          now,
		})
		if err != nil {
			return err
		}

		ticket, err := c.issueTicket(ctx, tx.Reads())
		if err != nil {
			return err
		}
		b, err := booking.NewReservation(c.party(userID, vehicle, sp), interval, ticket, &estimate.Total, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := c.syncSpot(ctx, tx, sp, now); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation confirmed",
		"booking_id", created.ID().String(),
		"ticket", created.TicketNumber().String(),
		"spot_id", created.SpotID().String(),
		"estimated_price", created.EstimatedPrice().String())
	return created, nil
}

func (c *bookingCommandsImpl) DriveIn(ctx context.Context, req reqdto.DriveInRequest, userID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.drive_in",
		attribute.String("spot.id", req.SpotID.String()),
		attribute.String("user.id", userID.String()),
	)
	defer func() { tracing.End(span, err) }()

	vehicle, err := c.ownedVehicle(ctx, req.VehicleID, userID)
	if err != nil {
		return nil, err
	}
	requirements := req.Requirements.ToDomain()

	var created *booking.Booking
	err = c.withTicketRetry(ctx, req.SpotID, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		sp, err := tx.Spots().Get(ctx, req.SpotID)
		if err != nil {
			return err
		}
		if err := sp.CheckBookable(); err != nil {
			return err
		}
		if !sp.IsAvailable() {
			return errs.Mark(errs.Newf("spot %s is %s", sp.Number(), sp.Status()), errs.ErrResourceUnavailable)
		}
		if err := sp.Accommodates(vehicle.Type, requirements); err != nil {
			return err
		}

		ticket, err := c.issueTicket(ctx, tx.Reads())
		if err != nil {
			return err
		}
		b, err := booking.NewDriveIn(c.party(userID, vehicle, sp), ticket, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := c.syncSpot(ctx, tx, sp, now); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "drive-in started",
		"booking_id", created.ID().String(),
		"ticket", created.TicketNumber().String(),
		"spot_id", created.SpotID().String())
	return created, nil
}

func (c *bookingCommandsImpl) Activate(ctx context.Context, bookingID, userID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.activate", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	return c.transition(ctx, bookingID, ownedBy(userID), func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if err := b.CheckTransition(booking.StatusActive); err != nil {
			return err
		}
		sp, err := tx.Spots().Get(ctx, b.SpotID())
		if err != nil {
			return err
		}
		if cur := sp.CurrentBookingID(); sp.Status() == spot.StatusOccupied && cur != nil && *cur != b.ID() {
			return errs.Mark(errs.Newf("spot %s is still occupied", sp.Number()), errs.ErrResourceUnavailable)
		}
		// An early arrival widens the held interval toward now.
		holders, err := tx.Reads().HoldingBookingsForSpot(ctx, sp.ID())
		if err != nil {
			return err
		}
		if err := booking.CheckNoConflict(b.ArrivalInterval(now), otherHolders(holders, b.ID())); err != nil {
			return err
		}
		return b.Activate(now)
	})
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID, userID uuid.UUID) (_ *CompleteResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.complete", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	existing, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ownedBy(userID)(existing); err != nil {
		return nil, err
	}
	if existing.Status() == booking.StatusCompleted {
		tracing.AddEvent(ctx, "booking.complete.replayed")
		return &CompleteResult{Booking: existing, Replayed: true}, nil
	}

	var result *CompleteResult
	for attempt := 1; ; attempt++ {
		result, err = c.completeOnce(ctx, existing.SpotID(), bookingID)
		if err == nil || !errs.Is(err, pricing.ErrSubscriptionExhausted) || attempt >= maxSubscriptionAttempts {
			break
		}
		slog.WarnContext(ctx, "subscription used up by a concurrent completion, repricing",
			"booking_id", bookingID.String(),
			"attempt", attempt)
	}
	if err != nil {
		return nil, err
	}

	if result.Replayed {
		return result, nil
	}
	slog.InfoContext(ctx, "booking completed",
		"booking_id", bookingID.String(),
		"final_price", result.Price.Total.String(),
		"penalties", result.Price.Penalties.String(),
		"overstay", result.Booking.IsOverstay(),
		"rule", result.Price.AppliedRule)
	return result, nil
}

// completeOnce prices and closes the booking in one unit. The subscription
// row stays locked from pricing until commit so a counted plan cannot be
// spent twice.
func (c *bookingCommandsImpl) completeOnce(ctx context.Context, spotID, bookingID uuid.UUID) (*CompleteResult, error) {
	result := &CompleteResult{}
	err := c.uow.WithinSpot(ctx, spotID, lock.Block, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return err
		}
		// Lost the race to a concurrent completion.
		if b.Status() == booking.StatusCompleted {
			result.Booking = b
			result.Replayed = true
			return nil
		}
		if err := b.CheckTransition(booking.StatusCompleted); err != nil {
			return err
		}

		sp, err := tx.Spots().Get(ctx, b.SpotID())
		if err != nil {
			return err
		}
		fp, err := tx.Reads().FacilityPricing(ctx, b.FacilityID())
		if err != nil {
			return err
		}
		sub, err := tx.Subscriptions().LockActive(ctx, b.UserID(), b.FacilityID(), now)
		if err != nil {
			return err
		}
		start := b.EntryTime()
		if now.Before(start) {
			start = now
		}
		final, err := c.calculator.Final(*fp, pricing.Request{
			VehicleType:  b.VehicleType(),
			SpotSize:     sp.Size(),
			Start:        start,
			End:          now,
			Subscription: sub,
			Now:          now,
		}, b.ExpectedExit())
		if err != nil {
			return err
		}

		if err := b.Complete(now, final); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if final.SubscriptionID != nil {
			if err := tx.Subscriptions().ConsumeEntry(ctx, *final.SubscriptionID); err != nil {
				return err
			}
		}
		if err := c.syncSpot(ctx, tx, sp, now); err != nil {
			return err
		}
		result.Booking = b
		result.Price = final
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.cancel", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	return c.transition(ctx, bookingID, ownedBy(userID), func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Cancel(now)
	})
}

func (c *bookingCommandsImpl) MarkNoShow(ctx context.Context, bookingID, userID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.mark_no_show", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	return c.transition(ctx, bookingID, ownedBy(userID), func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.MarkNoShow(now, c.cfg.NoShowGrace)
	})
}

// ExpireNoShow is MarkNoShow for the sweeper, which acts for no user.
func (c *bookingCommandsImpl) ExpireNoShow(ctx context.Context, bookingID uuid.UUID) (_ *booking.Booking, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.expire_no_show", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	return c.transition(ctx, bookingID, nil, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.MarkNoShow(now, c.cfg.NoShowGrace)
	})
}

// Extend pushes the expected exit later once the longer stay is clear of the
// spot's other holders, and records the extension with its added price.
func (c *bookingCommandsImpl) Extend(ctx context.Context, bookingID, userID uuid.UUID, newExit time.Time) (_ *ExtendResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "booking.extend", attribute.String("booking.id", bookingID.String()))
	defer func() { tracing.End(span, err) }()

	var ext *booking.Extension
	b, err := c.transition(ctx, bookingID, ownedBy(userID), func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if err := b.CheckExtend(newExit, now); err != nil {
			return err
		}
		sp, err := tx.Spots().Get(ctx, b.SpotID())
		if err != nil {
			return err
		}
		holders, err := tx.Reads().HoldingBookingsForSpot(ctx, sp.ID())
		if err != nil {
			return err
		}
		if err := booking.CheckNoConflict(b.ExtendedInterval(newExit), otherHolders(holders, b.ID())); err != nil {
			return err
		}

		fp, err := tx.Reads().FacilityPricing(ctx, b.FacilityID())
		if err != nil {
			return err
		}
		sub, err := tx.Reads().ActiveSubscription(ctx, b.UserID(), b.FacilityID(), now)
		if err != nil {
			return err
		}
		estimate, err := c.calculator.Estimate(*fp, pricing.Request{
			VehicleType:  b.VehicleType(),
			SpotSize:     sp.Size(),
			Start:        b.EntryTime(),
			End:          newExit,
			Subscription: sub,
			Now:          now,
		})
		if err != nil {
			return err
		}

		ext, err = b.Extend(newExit, estimate.Total, now)
		if err != nil {
			return err
		}
		return tx.Bookings().AddExtension(ctx, ext)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking extended",
		"booking_id", bookingID.String(),
		"previous_exit", ext.PreviousExit.Format(time.RFC3339),
		"new_exit", ext.NewExit.Format(time.RFC3339),
		"additional_price", ext.AdditionalPrice.String())
	return &ExtendResult{Booking: b, Extension: ext}, nil
}

// transition runs mutate on a freshly read booking under its spot lock, then
// persists the booking and the spot state derived from it. A nil guard
// skips the ownership check.
func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	guard func(*booking.Booking) error,
	mutate func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error,
) (*booking.Booking, error) {
	existing, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if guard != nil {
		if err := guard(existing); err != nil {
			return nil, err
		}
	}

	var updated *booking.Booking
	err = c.uow.WithinSpot(ctx, existing.SpotID(), lock.Block, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := mutate(ctx, tx, b, now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		sp, err := tx.Spots().Get(ctx, b.SpotID())
		if err != nil {
			return err
		}
		if err := c.syncSpot(ctx, tx, sp, now); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking transitioned",
		"booking_id", bookingID.String(),
		"from", existing.Status().String(),
		"to", updated.Status().String())
	return updated, nil
}

// ownedBy hides other users' bookings the same way a missing one is reported.
func ownedBy(userID uuid.UUID) func(*booking.Booking) error {
	return func(b *booking.Booking) error {
		if b.UserID() != userID {
			return errs.Mark(errs.Newf("booking %s not found", b.ID()), errs.ErrNotFound)
		}
		return nil
	}
}

// syncSpot re-derives spot status from the bookings holding it after this
// unit's writes, then recounts zone and facility availability.
func (c *bookingCommandsImpl) syncSpot(ctx context.Context, tx shared.Tx, sp *spot.Spot, now time.Time) error {
	holders, err := tx.Reads().HoldingBookingsForSpot(ctx, sp.ID())
	if err != nil {
		return err
	}
	hs := make([]spot.Holder, 0, len(holders))
	for _, b := range holders {
		hs = append(hs, b.Holder())
	}
	sp.Reconcile(hs, now)

	if err := tx.Spots().Save(ctx, sp); err != nil {
		return err
	}
	return tx.Spots().RecountAvailability(ctx, sp.ZoneID())
}

// withTicketRetry reruns the whole unit when the store rejects a ticket
// number that collided after the in-transaction existence check.
func (c *bookingCommandsImpl) withTicketRetry(ctx context.Context, spotID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 1; ; attempt++ {
		err := c.uow.WithinSpot(ctx, spotID, lock.Block, fn)
		if err == nil || !infra.IsKind(err, infra.KindDuplicateKey) {
			return err
		}
		if attempt >= c.cfg.MaxTicketAttempts {
			return errs.Mark(err, ErrTicketExhausted)
		}
		slog.WarnContext(ctx, "ticket number collided on insert, retrying", "attempt", attempt)
	}
}

func (c *bookingCommandsImpl) issueTicket(ctx context.Context, reads shared.CommandReads) (booking.TicketNumber, error) {
	for attempt := 0; attempt < c.cfg.MaxTicketAttempts; attempt++ {
		ticket, err := c.tickets.Next()
		if err != nil {
			return "", err
		}
		taken, err := reads.TicketExists(ctx, ticket)
		if err != nil {
			return "", err
		}
		if !taken {
			return ticket, nil
		}
		tracing.AddEvent(ctx, "ticket.collision", attribute.String("ticket", ticket.String()))
	}
	return "", ErrTicketExhausted
}

func (c *bookingCommandsImpl) ownedVehicle(ctx context.Context, vehicleID, userID uuid.UUID) (*shared.VehicleSnapshot, error) {
	v, err := c.uow.CommandReads().VehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Active {
		return nil, errs.Validation("vehicle %s is not active", v.Plate)
	}
	if v.UserID != userID {
		return nil, errs.Validation("vehicle %s does not belong to the caller", v.Plate)
	}
	return v, nil
}

func (c *bookingCommandsImpl) party(userID uuid.UUID, v *shared.VehicleSnapshot, sp *spot.Spot) booking.Party {
	return booking.Party{
		UserID:      userID,
		VehicleID:   v.ID,
		VehicleType: v.Type,
		SpotID:      sp.ID(),
		FacilityID:  sp.FacilityID(),
	}
}

func openEndedHolder(holders []*booking.Booking) *booking.Booking {
	for _, b := range holders {
		if b.Status() == booking.StatusActive && b.ExpectedExit() == nil {
			return b
		}
	}
	return nil
}

func otherHolders(holders []*booking.Booking, self uuid.UUID) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(holders))
	for _, b := range holders {
		if b.ID() != self {
			out = append(out, b)
		}
	}
	return out
}

package memstore

import (
	"context"
	"sort"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx stages writes until the unit of work commits.
type memTx struct {
	store      *Store
	spots      map[uuid.UUID]*spot.Spot
	bookings   map[uuid.UUID]*booking.Booking
	created    []uuid.UUID
	consumed   []uuid.UUID
	extensions []booking.Extension
	recount    map[uuid.UUID]struct{}
}

func newTx(s *Store) *memTx {
	return &memTx{
		store:    s,
		spots:    make(map[uuid.UUID]*spot.Spot),
		bookings: make(map[uuid.UUID]*booking.Booking),
		recount:  make(map[uuid.UUID]struct{}),
	}
}

func (t *memTx) Spots() shared.SpotRepository                 { return txSpots{t} }
func (t *memTx) Bookings() shared.BookingRepository           { return txBookings{t} }
func (t *memTx) Subscriptions() shared.SubscriptionRepository { return txSubscriptions{t} }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{store: t.store, tx: t} }

type txSpots struct{ tx *memTx }

func (r txSpots) Get(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.tx.Reads().SpotByID(ctx, id)
}

func (r txSpots) Save(_ context.Context, sp *spot.Spot) error {
	r.tx.spots[sp.ID()] = sp.Clone()
	return nil
}

func (r txSpots) RecountAvailability(_ context.Context, zoneID uuid.UUID) error {
	r.tx.recount[zoneID] = struct{}{}
	return nil
}

type txBookings struct{ tx *memTx }

func (r txBookings) Create(_ context.Context, b *booking.Booking) error {
	t := r.tx
	t.store.mu.RLock()
	_, taken := t.store.tickets[b.TicketNumber()]
	t.store.mu.RUnlock()
	if taken {
		return infra.WrapRepoErr("ticket number already issued", nil, infra.KindDuplicateKey)
	}
	for _, staged := range t.bookings {
		if staged.TicketNumber() == b.TicketNumber() {
			return infra.WrapRepoErr("ticket number already issued", nil, infra.KindDuplicateKey)
		}
	}
	t.bookings[b.ID()] = b.Clone()
	t.created = append(t.created, b.ID())
	return nil
}

func (r txBookings) Update(_ context.Context, b *booking.Booking) error {
	t := r.tx
	if _, staged := t.bookings[b.ID()]; !staged {
		t.store.mu.RLock()
		_, ok := t.store.bookings[b.ID()]
		t.store.mu.RUnlock()
		if !ok {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
	}
	t.bookings[b.ID()] = b.Clone()
	return nil
}

func (r txBookings) AddExtension(_ context.Context, e *booking.Extension) error {
	r.tx.extensions = append(r.tx.extensions, *e)
	return nil
}

type txSubscriptions struct{ tx *memTx }

// LockActive reads the plan as committed. Exhaustion by a concurrent unit
// on another spot is caught when this unit commits.
func (r txSubscriptions) LockActive(ctx context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error) {
	return r.tx.Reads().ActiveSubscription(ctx, userID, facilityID, now)
}

func (r txSubscriptions) ConsumeEntry(_ context.Context, id uuid.UUID) error {
	t := r.tx
	t.store.mu.RLock()
	_, ok := t.store.subscriptions[id]
	t.store.mu.RUnlock()
	if !ok {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	t.consumed = append(t.consumed, id)
	return nil
}

// reads serves command-side lookups. Inside a unit of work staged writes
// shadow stored rows.
type reads struct {
	store *Store
	tx    *memTx
}

func (r *reads) SpotByID(_ context.Context, id uuid.UUID) (*spot.Spot, error) {
	if r.tx != nil {
		if sp, ok := r.tx.spots[id]; ok {
			return sp.Clone(), nil
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.spotLocked(id)
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.tx != nil {
		if b, ok := r.tx.bookings[id]; ok {
			return b.Clone(), nil
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.bookingLocked(id)
}

func (r *reads) HoldingBookingsForSpot(_ context.Context, spotID uuid.UUID) ([]*booking.Booking, error) {
	r.store.mu.RLock()
	stored := r.store.holdersLocked(spotID)
	r.store.mu.RUnlock()
	if r.tx == nil {
		return stored, nil
	}

	out := make([]*booking.Booking, 0, len(stored))
	for _, b := range stored {
		if _, staged := r.tx.bookings[b.ID()]; !staged {
			out = append(out, b)
		}
	}
	for _, b := range r.tx.bookings {
		if b.SpotID() == spotID && b.Status().Holds() {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryTime().Before(out[j].EntryTime()) })
	return out, nil
}

func (r *reads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v, ok := r.store.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

func (r *reads) FacilityPricing(_ context.Context, facilityID uuid.UUID) (*pricing.FacilityPricing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f, ok := r.store.facilities[facilityID]
	if !ok {
		return nil, infra.WrapRepoErr("facility not found", nil, infra.KindNotFound)
	}
	rules := make([]pricing.Rule, len(r.store.rules[facilityID]))
	copy(rules, r.store.rules[facilityID])
	return &pricing.FacilityPricing{
		FacilityID:      f.ID,
		Location:        f.Location,
		Rules:           rules,
		DefaultFlatRate: f.DefaultFlatRate,
		DefaultOverstay: f.DefaultOverstay,
	}, nil
}

func (r *reads) ActiveSubscription(_ context.Context, userID, facilityID uuid.UUID, now time.Time) (*pricing.Subscription, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var best *pricing.Subscription
	for _, sub := range r.store.subscriptions {
		if sub.UserID != userID || !sub.IsValid(facilityID, now) {
			continue
		}
		if best == nil || sub.ExpiresAt.After(best.ExpiresAt) {
			best = sub
		}
	}
	if best == nil {
		return nil, nil
	}
	c := *best
	if best.EntriesRemaining != nil {
		n := *best.EntriesRemaining
		c.EntriesRemaining = &n
	}
	return &c, nil
}

func (r *reads) TicketExists(_ context.Context, ticket booking.TicketNumber) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.tickets[ticket]
	return ok, nil
}

func (r *reads) NoShowCandidates(_ context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	type candidate struct {
		id     uuid.UUID
		cutoff time.Time
	}
	var cs []candidate
	for _, b := range r.store.bookings {
		if b.Status() != booking.StatusConfirmed {
			continue
		}
		if cutoff := b.NoShowCutoff(grace); !now.Before(cutoff) {
			cs = append(cs, candidate{id: b.ID(), cutoff: cutoff})
		}
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].cutoff.Before(cs[j].cutoff) })
	if limit > 0 && len(cs) > limit {
		cs = cs[:limit]
	}
	ids := make([]uuid.UUID, len(cs))
	for i, c := range cs {
		ids[i] = c.id
	}
	return ids, nil
}

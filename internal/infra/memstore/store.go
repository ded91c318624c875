// Package memstore keeps the whole parking registry in process memory. It
// serves tests and single-node demos with the same ports as the Postgres
// adapters; per-spot exclusion comes from the injected lock.Locker.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/usecase/readmodel"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

type Facility struct {
	ID              uuid.UUID
	Name            string
	Location        *time.Location
	DefaultFlatRate *pricing.Money
	DefaultOverstay pricing.OverstayPenalty
}

type Zone struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Code       string
	Name       string
}

type counters struct {
	total     int
	available int
}

type Store struct {
	locker lock.Locker

	mu            sync.RWMutex
	facilities    map[uuid.UUID]Facility
	zones         map[uuid.UUID]Zone
	zoneCounts    map[uuid.UUID]counters
	facCounts     map[uuid.UUID]counters
	spots         map[uuid.UUID]*spot.Spot
	bookings      map[uuid.UUID]*booking.Booking
	tickets       map[booking.TicketNumber]uuid.UUID
	vehicles      map[uuid.UUID]shared.VehicleSnapshot
	rules         map[uuid.UUID][]pricing.Rule
	subscriptions map[uuid.UUID]*pricing.Subscription
	extensions    map[uuid.UUID][]booking.Extension
}

func New(locker lock.Locker) *Store {
	return &Store{
		locker:        locker,
		facilities:    make(map[uuid.UUID]Facility),
		zones:         make(map[uuid.UUID]Zone),
		zoneCounts:    make(map[uuid.UUID]counters),
		facCounts:     make(map[uuid.UUID]counters),
		spots:         make(map[uuid.UUID]*spot.Spot),
		bookings:      make(map[uuid.UUID]*booking.Booking),
		tickets:       make(map[booking.TicketNumber]uuid.UUID),
		vehicles:      make(map[uuid.UUID]shared.VehicleSnapshot),
		rules:         make(map[uuid.UUID][]pricing.Rule),
		subscriptions: make(map[uuid.UUID]*pricing.Subscription),
		extensions:    make(map[uuid.UUID][]booking.Extension),
	}
}

func (s *Store) AddFacility(f Facility) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Location == nil {
		f.Location = time.UTC
	}
	s.facilities[f.ID] = f
	s.recountFacilityLocked(f.ID)
}

func (s *Store) AddZone(z Zone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones[z.ID] = z
	s.recountZoneLocked(z.ID)
}

func (s *Store) AddSpot(sp *spot.Spot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spots[sp.ID()] = sp.Clone()
	s.recountZoneLocked(sp.ZoneID())
}

func (s *Store) AddVehicle(v shared.VehicleSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[v.ID] = v
}

func (s *Store) AddRule(r pricing.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[r.FacilityID] = append(s.rules[r.FacilityID], r)
}

func (s *Store) AddSubscription(sub pricing.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := sub
	s.subscriptions[sub.ID] = &c
}

// AddBooking stores an existing booking as is, bypassing the lifecycle.
func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b.Clone()
	s.tickets[b.TicketNumber()] = b.ID()
}

// WithinSpot holds the spot lock for the whole of fn and applies staged
// writes before releasing it.
func (s *Store) WithinSpot(ctx context.Context, spotID uuid.UUID, policy lock.WaitPolicy, fn func(ctx context.Context, tx shared.Tx) error) error {
	h, err := s.locker.Acquire(ctx, spotID.String(), policy)
	if err != nil {
		return err
	}
	defer h.Release()

	tx := newTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range tx.created {
		b := tx.bookings[id]
		if _, taken := s.tickets[b.TicketNumber()]; taken {
			return infra.WrapRepoErr("ticket number already issued", nil, infra.KindDuplicateKey)
		}
	}
	for _, id := range tx.consumed {
		if sub, ok := s.subscriptions[id]; ok && sub.EntriesRemaining != nil && *sub.EntriesRemaining <= 0 {
			return errs.Mark(errs.Newf("subscription %s has no entries left", id), pricing.ErrSubscriptionExhausted)
		}
	}

	for id, sp := range tx.spots {
		s.spots[id] = sp
	}
	for id, b := range tx.bookings {
		s.bookings[id] = b
		s.tickets[b.TicketNumber()] = id
	}
	for _, id := range tx.consumed {
		if sub, ok := s.subscriptions[id]; ok && sub.EntriesRemaining != nil {
			n := *sub.EntriesRemaining - 1
			sub.EntriesRemaining = &n
		}
	}
	for _, e := range tx.extensions {
		s.extensions[e.BookingID] = append(s.extensions[e.BookingID], e)
	}
	for zoneID := range tx.recount {
		s.recountZoneLocked(zoneID)
	}
	return nil
}

// Extensions lists a booking's committed extensions, oldest first.
func (s *Store) Extensions(bookingID uuid.UUID) []booking.Extension {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]booking.Extension(nil), s.extensions[bookingID]...)
}

func (s *Store) recountZoneLocked(zoneID uuid.UUID) {
	var c counters
	for _, sp := range s.spots {
		if sp.ZoneID() != zoneID || !sp.IsActive() {
			continue
		}
		c.total++
		if sp.IsAvailable() {
			c.available++
		}
	}
	s.zoneCounts[zoneID] = c
	if z, ok := s.zones[zoneID]; ok {
		s.recountFacilityLocked(z.FacilityID)
	}
}

func (s *Store) recountFacilityLocked(facilityID uuid.UUID) {
	var c counters
	for zoneID, z := range s.zones {
		if z.FacilityID != facilityID {
			continue
		}
		zc := s.zoneCounts[zoneID]
		c.total += zc.total
		c.available += zc.available
	}
	s.facCounts[facilityID] = c
}

func (s *Store) spotLocked(id uuid.UUID) (*spot.Spot, error) {
	sp, ok := s.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return sp.Clone(), nil
}

func (s *Store) bookingLocked(id uuid.UUID) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.Clone(), nil
}

func (s *Store) holdersLocked(spotID uuid.UUID) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.SpotID() == spotID && b.Status().Holds() {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryTime().Before(out[j].EntryTime()) })
	return out
}

// Read side

func (s *Store) FindBookingByID(_ context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.viewLocked(b), nil
}

func (s *Store) FindBookingByTicket(_ context.Context, ticket string) (*readmodel.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tickets[booking.TicketNumber(ticket)]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.viewLocked(s.bookings[id]), nil
}

func (s *Store) ListBookingsByUser(_ context.Context, userID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*readmodel.BookingView
	for _, b := range s.bookings {
		if b.UserID() != userID {
			continue
		}
		if filter.Status != nil && b.Status().String() != *filter.Status {
			continue
		}
		if !filter.Admits(b.CreatedAt(), b.ID()) {
			continue
		}
		out = append(out, s.viewLocked(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() > out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) FacilityAvailability(_ context.Context, facilityID uuid.UUID) (*readmodel.FacilityAvailabilityView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.facilities[facilityID]
	if !ok {
		return nil, infra.WrapRepoErr("facility not found", nil, infra.KindNotFound)
	}
	fc := s.facCounts[facilityID]
	view := &readmodel.FacilityAvailabilityView{
		ID:             f.ID,
		Name:           f.Name,
		TimeZone:       f.Location.String(),
		TotalSpots:     fc.total,
		AvailableSpots: fc.available,
	}
	for id, z := range s.zones {
		if z.FacilityID != facilityID {
			continue
		}
		zc := s.zoneCounts[id]
		view.Zones = append(view.Zones, readmodel.ZoneAvailabilityView{
			ID:             z.ID,
			Code:           z.Code,
			Name:           z.Name,
			TotalSpots:     zc.total,
			AvailableSpots: zc.available,
		})
	}
	sort.Slice(view.Zones, func(i, j int) bool { return view.Zones[i].Code < view.Zones[j].Code })
	return view, nil
}

func (s *Store) AvailableSpots(_ context.Context, facilityID uuid.UUID) ([]*spot.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.facilities[facilityID]; !ok {
		return nil, infra.WrapRepoErr("facility not found", nil, infra.KindNotFound)
	}
	var out []*spot.Spot
	for _, sp := range s.spots {
		if sp.FacilityID() == facilityID && sp.IsActive() && sp.IsAvailable() {
			out = append(out, sp.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out, nil
}

func (s *Store) viewLocked(b *booking.Booking) *readmodel.BookingView {
	b = b.Clone()
	v := &readmodel.BookingView{
		ID:             b.ID(),
		TicketNumber:   b.TicketNumber().String(),
		UserID:         b.UserID(),
		VehicleID:      b.VehicleID(),
		VehicleType:    b.VehicleType().String(),
		SpotID:         b.SpotID(),
		FacilityID:     b.FacilityID(),
		Type:           b.Type().String(),
		Status:         b.Status().String(),
		EntryTime:      b.EntryTime(),
		ExpectedExit:   b.ExpectedExit(),
		ActualExit:     b.ActualExit(),
		EstimatedPrice: b.EstimatedPrice(),
		FinalPrice:     b.FinalPrice(),
		Penalty:        b.Penalty(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
	if sp, ok := s.spots[b.SpotID()]; ok {
		v.SpotNumber = sp.Number()
	}
	return v
}

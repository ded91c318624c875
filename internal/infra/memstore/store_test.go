//go:build unit

package memstore_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/memstore"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/usecase/readmodel"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	store      *memstore.Store
	facilityID uuid.UUID
	zoneID     uuid.UUID
	spotID     uuid.UUID
}

func newWorld(t *testing.T) world {
	t.Helper()
	w := world{
		store:      memstore.New(lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Second})),
		facilityID: uuid.New(),
		zoneID:     uuid.New(),
		spotID:     uuid.New(),
	}
	w.store.AddFacility(memstore.Facility{ID: w.facilityID, Name: "Central"})
	w.store.AddZone(memstore.Zone{ID: w.zoneID, FacilityID: w.facilityID, Code: "A", Name: "Level A"})
	w.store.AddSpot(spot.ReconstructSpot(w.spotID, w.zoneID, w.facilityID, "A-101", spot.SizeMedium, spot.Features{}, spot.StatusAvailable, nil, true, time.Now()))
	return w
}

func (w world) driveIn(t *testing.T, ticket booking.TicketNumber) *booking.Booking {
	t.Helper()
	b, err := booking.NewDriveIn(booking.Party{
		UserID:      uuid.New(),
		VehicleID:   uuid.New(),
		VehicleType: spot.VehicleCar,
		SpotID:      w.spotID,
		FacilityID:  w.facilityID,
	}, ticket, time.Now())
	require.NoError(t, err)
	return b
}

func TestStore_WithinSpotCommitsStagedWrites(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	b := w.driveIn(t, "PKM-00000001")

	err := w.store.WithinSpot(ctx, w.spotID, lock.Block, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Bookings().Create(ctx, b))

		// staged writes are visible inside the unit but not outside it
		holders, err := tx.Reads().HoldingBookingsForSpot(ctx, w.spotID)
		require.NoError(t, err)
		assert.Len(t, holders, 1)
		outside, err := w.store.CommandReads().HoldingBookingsForSpot(ctx, w.spotID)
		require.NoError(t, err)
		assert.Empty(t, outside)

		sp, err := tx.Spots().Get(ctx, w.spotID)
		require.NoError(t, err)
		sp.Reconcile([]spot.Holder{b.Holder()}, time.Now())
		require.NoError(t, tx.Spots().Save(ctx, sp))
		return tx.Spots().RecountAvailability(ctx, w.zoneID)
	})
	require.NoError(t, err)

	sp, err := w.store.CommandReads().SpotByID(ctx, w.spotID)
	require.NoError(t, err)
	assert.Equal(t, spot.StatusOccupied, sp.Status())

	exists, err := w.store.CommandReads().TicketExists(ctx, "PKM-00000001")
	require.NoError(t, err)
	assert.True(t, exists)

	view, err := w.store.FacilityAvailability(ctx, w.facilityID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalSpots)
	assert.Equal(t, 0, view.AvailableSpots)
	require.Len(t, view.Zones, 1)
	assert.Equal(t, 0, view.Zones[0].AvailableSpots)
}

func TestStore_WithinSpotDiscardsOnError(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	boom := errs.New("boom")

	err := w.store.WithinSpot(ctx, w.spotID, lock.Block, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Bookings().Create(ctx, w.driveIn(t, "PKM-00000002")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := w.store.CommandReads().TicketExists(ctx, "PKM-00000002")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_DuplicateTicketRejected(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	w.store.AddBooking(w.driveIn(t, "PKM-0000000A"))

	err := w.store.WithinSpot(ctx, w.spotID, lock.Block, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, w.driveIn(t, "PKM-0000000A"))
	})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestStore_CommitRejectsSpentSubscription(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	userID := uuid.New()
	entries := 1
	sub := pricing.Subscription{
		ID:               uuid.New(),
		UserID:           userID,
		FacilityID:       w.facilityID,
		ExpiresAt:        time.Now().Add(24 * time.Hour),
		EntriesRemaining: &entries,
		Active:           true,
	}
	w.store.AddSubscription(sub)

	err := w.store.WithinSpot(ctx, w.spotID, lock.Block, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Subscriptions().ConsumeEntry(ctx, sub.ID))

		// another spot spends the last entry first
		other := w.store.WithinSpot(ctx, uuid.New(), lock.Block, func(ctx context.Context, tx shared.Tx) error {
			return tx.Subscriptions().ConsumeEntry(ctx, sub.ID)
		})
		require.NoError(t, other)
		return nil
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, pricing.ErrSubscriptionExhausted))

	active, err := w.store.CommandReads().ActiveSubscription(ctx, userID, w.facilityID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStore_AvailableSpots(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	w.store.AddSpot(spot.ReconstructSpot(uuid.New(), w.zoneID, w.facilityID, "A-100", spot.SizeLarge, spot.Features{}, spot.StatusAvailable, nil, true, time.Now()))
	w.store.AddSpot(spot.ReconstructSpot(uuid.New(), w.zoneID, w.facilityID, "A-102", spot.SizeMedium, spot.Features{}, spot.StatusOccupied, nil, true, time.Now()))
	w.store.AddSpot(spot.ReconstructSpot(uuid.New(), w.zoneID, w.facilityID, "A-103", spot.SizeMedium, spot.Features{}, spot.StatusAvailable, nil, false, time.Now()))

	spots, err := w.store.AvailableSpots(ctx, w.facilityID)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "A-100", spots[0].Number())
	assert.Equal(t, w.spotID, spots[1].ID())

	_, err = w.store.AvailableSpots(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestStore_NotFoundIsMarked(t *testing.T) {
	w := newWorld(t)
	_, err := w.store.CommandReads().BookingByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = w.store.FindBookingByTicket(context.Background(), "PKM-FFFFFFFF")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestStore_WithinSpotNoWaitOnHeldSpot(t *testing.T) {
	locker := lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Second})
	store := memstore.New(locker)
	spotID := uuid.New()

	h, err := locker.Acquire(context.Background(), spotID.String(), lock.Block)
	require.NoError(t, err)
	defer h.Release()

	called := false
	err = store.WithinSpot(context.Background(), spotID, lock.NoWait, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrResourceLocked))
	assert.False(t, called)
}

func TestStore_NoShowCandidates(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	mk := func(ticket booking.TicketNumber, from, to time.Duration) *booking.Booking {
		interval, err := booking.NewInterval(base.Add(from), base.Add(to))
		require.NoError(t, err)
		b, err := booking.NewReservation(booking.Party{
			UserID:      uuid.New(),
			VehicleID:   uuid.New(),
			VehicleType: spot.VehicleCar,
			SpotID:      w.spotID,
			FacilityID:  w.facilityID,
		}, interval, ticket, nil, base)
		require.NoError(t, err)
		return b
	}
	early := mk("PKM-00000010", 8*time.Hour, 9*time.Hour)
	late := mk("PKM-00000011", 10*time.Hour, 12*time.Hour)
	future := mk("PKM-00000012", 20*time.Hour, 22*time.Hour)
	for _, b := range []*booking.Booking{late, future, early} {
		w.store.AddBooking(b)
	}

	ids, err := w.store.CommandReads().NoShowCandidates(ctx, base.Add(13*time.Hour), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{early.ID(), late.ID()}, ids)

	ids, err = w.store.CommandReads().NoShowCandidates(ctx, base.Add(10*time.Hour+30*time.Minute), 30*time.Minute, 1)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{early.ID()}, ids)
}

func TestStore_ListBookingsByUser(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	userID := uuid.New()

	for i, ticket := range []booking.TicketNumber{"PKM-00000021", "PKM-00000022", "PKM-00000023"} {
		b, err := booking.NewDriveIn(booking.Party{
			UserID:      userID,
			VehicleID:   uuid.New(),
			VehicleType: spot.VehicleCar,
			SpotID:      w.spotID,
			FacilityID:  w.facilityID,
		}, ticket, time.Now().Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		w.store.AddBooking(b)
	}
	w.store.AddBooking(w.driveIn(t, "PKM-00000024"))

	views, err := w.store.ListBookingsByUser(ctx, userID, readmodel.BookingFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "PKM-00000023", views[0].TicketNumber)
	assert.Equal(t, "A-101", views[0].SpotNumber)
}

func TestStore_LoadFixture(t *testing.T) {
	f, err := os.Open("../../../configs/seed.json")
	require.NoError(t, err)
	defer f.Close()

	store := memstore.New(lock.NewKeyedMutex(lock.Options{}))
	require.NoError(t, store.Load(f))

	ctx := context.Background()
	facilityID := uuid.MustParse("6f1d7f3e-5c1b-4c47-9b0a-0c6b1f2b9a01")

	view, err := store.FacilityAvailability(ctx, facilityID)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", view.TimeZone)
	assert.Equal(t, 5, view.TotalSpots)
	assert.Equal(t, 4, view.AvailableSpots, "maintenance spot is not available")
	require.Len(t, view.Zones, 2)
	assert.Equal(t, "A", view.Zones[0].Code)

	fp, err := store.CommandReads().FacilityPricing(ctx, facilityID)
	require.NoError(t, err)
	assert.Len(t, fp.Rules, 3)
	require.NotNil(t, fp.DefaultFlatRate)
	assert.Equal(t, "20.00", fp.DefaultFlatRate.String())
	assert.Equal(t, "0.10", fp.DefaultOverstay.PerMinute.String())

	var hourly *pricing.Rule
	for i := range fp.Rules {
		if fp.Rules[i].Strategy() == pricing.StrategyHourly {
			hourly = &fp.Rules[i]
		}
	}
	require.NotNil(t, hourly)
	assert.Equal(t, 15, hourly.FreeMinutes)

	v, err := store.CommandReads().VehicleByID(ctx, uuid.MustParse("c3d4e5f6-0000-4000-8000-000000000003"))
	require.NoError(t, err)
	assert.Equal(t, spot.VehicleTruck, v.Type)
}

func TestStore_LoadRejectsUnknownZone(t *testing.T) {
	store := memstore.New(lock.NewKeyedMutex(lock.Options{}))
	err := store.Load(strings.NewReader(`{"spots":[{"id":"9a0e6c1d-2b3f-4e5a-8c7d-000000000101","zone_id":"1b7c2b8e-4a41-4d0e-8f64-2c1a7d6b5e01","number":"A-1","size":"SMALL"}]}`))
	require.Error(t, err)
}

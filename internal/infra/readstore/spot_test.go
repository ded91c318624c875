//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/readstore"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	readstoremock "parkme/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpotReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	spotID := uuid.New()
	bookingID := uuid.New()
	updated := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	t.Run("converts the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetSpot(ctx, gomock.Any(), spotID).Return(sqlc.Spot{
			ID:               spotID,
			ZoneID:           uuid.New(),
			FacilityID:       uuid.New(),
			Number:           "A-102",
			Size:             "MEDIUM",
			EvCharger:        true,
			Status:           "OCCUPIED",
			CurrentBookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
			IsActive:         true,
			UpdatedAt:        pgtype.Timestamptz{Time: updated, Valid: true},
		}, nil)

		sp, err := readstore.NewSpotReadStore(q, &mockDBTX{}).FindByID(ctx, spotID)

		require.NoError(t, err)
		assert.Equal(t, "A-102", sp.Number())
		assert.Equal(t, spot.SizeMedium, sp.Size())
		assert.Equal(t, spot.StatusOccupied, sp.Status())
		assert.True(t, sp.Features().EVCharger)
		require.NotNil(t, sp.CurrentBookingID())
		assert.Equal(t, bookingID, *sp.CurrentBookingID())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetSpot(ctx, gomock.Any(), spotID).Return(sqlc.Spot{}, pgx.ErrNoRows)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).FindByID(ctx, spotID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSpotReadStore_FacilityAvailability(t *testing.T) {
	ctx := context.Background()
	facilityID := uuid.New()
	zoneA, zoneB := uuid.New(), uuid.New()

	t.Run("aggregates zone counters under the facility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{
			ID: facilityID, Name: "Central Garage", Timezone: "America/New_York", TotalSpots: 5, AvailableSpots: 3,
		}, nil)
		q.EXPECT().ListZoneAvailability(ctx, gomock.Any(), facilityID).Return([]sqlc.ListZoneAvailabilityRow{
			{ID: zoneA, Code: "A", Name: "Level A", TotalSpots: 3, AvailableSpots: 2},
			{ID: zoneB, Code: "B", Name: "Level B", TotalSpots: 2, AvailableSpots: 1},
		}, nil)

		view, err := readstore.NewSpotReadStore(q, &mockDBTX{}).FacilityAvailability(ctx, facilityID)

		require.NoError(t, err)
		assert.Equal(t, "America/New_York", view.TimeZone)
		assert.Equal(t, 5, view.TotalSpots)
		assert.Equal(t, 3, view.AvailableSpots)
		require.Len(t, view.Zones, 2)
		assert.Equal(t, zoneB, view.Zones[1].ID)
		assert.Equal(t, 1, view.Zones[1].AvailableSpots)
	})

	t.Run("unknown facility is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{}, pgx.ErrNoRows)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).FacilityAvailability(ctx, facilityID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("zone listing failure is a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{ID: facilityID}, nil)
		q.EXPECT().ListZoneAvailability(ctx, gomock.Any(), facilityID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).FacilityAvailability(ctx, facilityID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestSpotReadStore_AvailableSpots(t *testing.T) {
	ctx := context.Background()
	facilityID := uuid.New()
	zoneID := uuid.New()

	t.Run("converts rows in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		gomock.InOrder(
			q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{ID: facilityID}, nil),
			q.EXPECT().ListAvailableSpots(ctx, gomock.Any(), facilityID).Return([]sqlc.Spot{
				{ID: uuid.New(), ZoneID: zoneID, FacilityID: facilityID, Number: "A-101", Size: "MEDIUM", Status: "AVAILABLE", IsActive: true},
				{ID: uuid.New(), ZoneID: zoneID, FacilityID: facilityID, Number: "A-102", Size: "LARGE", Accessible: true, Status: "AVAILABLE", IsActive: true},
			}, nil),
		)

		spots, err := readstore.NewSpotReadStore(q, &mockDBTX{}).AvailableSpots(ctx, facilityID)

		require.NoError(t, err)
		require.Len(t, spots, 2)
		assert.Equal(t, "A-101", spots[0].Number())
		assert.Equal(t, spot.SizeLarge, spots[1].Size())
		assert.True(t, spots[1].Features().Accessible)
		assert.True(t, spots[1].IsAvailable())
	})

	t.Run("unknown facility is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{}, pgx.ErrNoRows)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).AvailableSpots(ctx, facilityID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("corrupt size is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{ID: facilityID}, nil)
		q.EXPECT().ListAvailableSpots(ctx, gomock.Any(), facilityID).Return([]sqlc.Spot{
			{ID: uuid.New(), ZoneID: zoneID, FacilityID: facilityID, Number: "A-101", Size: "HUGE", Status: "AVAILABLE", IsActive: true},
		}, nil)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).AvailableSpots(ctx, facilityID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "A-101")
	})

	t.Run("listing failure is a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSpotViewQueries(ctrl)
		q.EXPECT().GetFacilityAvailability(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityAvailabilityRow{ID: facilityID}, nil)
		q.EXPECT().ListAvailableSpots(ctx, gomock.Any(), facilityID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewSpotReadStore(q, &mockDBTX{}).AvailableSpots(ctx, facilityID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

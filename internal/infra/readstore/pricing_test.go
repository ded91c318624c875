//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"parkme/internal/domain/pricing"
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

func TestPricingReadStore_FacilityPricing(t *testing.T) {
	ctx := context.Background()
	facilityID := uuid.New()
	facility := sqlc.GetFacilityRow{
		ID:                         facilityID,
		Name:                       "Central Garage",
		Timezone:                   "Europe/Berlin",
		DefaultFlatRateCents:       pgtype.Int8{Int64: 1000, Valid: true},
		DefaultOverstayPerMinCents: 10,
	}

	testCases := []struct {
		name      string
		setupMock func(*readstoremock.MockPricingViewQueries)
		expectErr func(*testing.T, error)
		check     func(*testing.T, *pricing.FacilityPricing)
	}{
		{
			name: "success: rules decoded with facility defaults",
			setupMock: func(mock *readstoremock.MockPricingViewQueries) {
				mock.EXPECT().GetFacility(ctx, gomock.Any(), facilityID).Return(facility, nil)
				mock.EXPECT().ListActivePricingRules(ctx, gomock.Any(), facilityID).Return([]sqlc.ListActivePricingRulesRow{
					{
						ID:           uuid.New(),
						FacilityID:   facilityID,
						Name:         "weekday hourly",
						Strategy:     "HOURLY",
						Config:       []byte(`{"ratePerHour":"4.00"}`),
						Priority:     10,
						VehicleTypes: []string{"CAR", "SUV"},
						SpotSizes:    []string{},
						TimeWindow:   []byte(`{"days":["MON","TUE"],"start":"08:00","end":"18:00"}`),
						FreeMinutes:  15,
						IsActive:     true,
					},
				}, nil)
			},
			check: func(t *testing.T, fp *pricing.FacilityPricing) {
				assert.Equal(t, "Europe/Berlin", fp.Location.String())
				require.NotNil(t, fp.DefaultFlatRate)
				assert.Equal(t, "10.00", fp.DefaultFlatRate.String())
				assert.Equal(t, "0.10", fp.DefaultOverstay.PerMinute.String())
				require.Len(t, fp.Rules, 1)

				rule := fp.Rules[0]
				assert.Equal(t, pricing.StrategyHourly, rule.Strategy())
				assert.Equal(t, []spot.VehicleType{spot.VehicleCar, spot.VehicleSUV}, rule.VehicleTypes)
				assert.Equal(t, 15, rule.FreeMinutes)
				require.NotNil(t, rule.Window)
				assert.Len(t, rule.Window.Days, 2)
			},
		},
		{
			name: "error: facility not found",
			setupMock: func(mock *readstoremock.MockPricingViewQueries) {
				mock.EXPECT().GetFacility(ctx, gomock.Any(), facilityID).Return(sqlc.GetFacilityRow{}, pgx.ErrNoRows)
			},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			},
		},
		{
			name: "error: stored rule has an unknown strategy",
			setupMock: func(mock *readstoremock.MockPricingViewQueries) {
				mock.EXPECT().GetFacility(ctx, gomock.Any(), facilityID).Return(facility, nil)
				mock.EXPECT().ListActivePricingRules(ctx, gomock.Any(), facilityID).Return([]sqlc.ListActivePricingRulesRow{
					{ID: uuid.New(), FacilityID: facilityID, Name: "legacy", Strategy: "AUCTION", IsActive: true},
				}, nil)
			},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrValidation))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockPricingViewQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			fp, err := store.FacilityPricing(ctx, facilityID)
			if tc.expectErr != nil {
				require.Error(t, err)
				tc.expectErr(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, fp)
		})
	}
}

func TestPricingReadStore_ActiveSubscription(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	facilityID := uuid.New()
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	t.Run("success: counted plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingViewQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetActiveSubscription(ctx, gomock.Any(), sqlc.GetActiveSubscriptionParams{
			UserID:     userID,
			FacilityID: facilityID,
			Now:        pgtype.Timestamptz{Time: now, Valid: true},
		}).Return(sqlc.Subscription{
			ID:               uuid.New(),
			UserID:           userID,
			FacilityID:       facilityID,
			ExpiresAt:        pgtype.Timestamptz{Time: now.AddDate(0, 1, 0), Valid: true},
			EntriesRemaining: pgtype.Int4{Int32: 3, Valid: true},
			IsActive:         true,
		}, nil)

		sub, err := store.ActiveSubscription(ctx, userID, facilityID, now)
		require.NoError(t, err)
		require.NotNil(t, sub)
		require.NotNil(t, sub.EntriesRemaining)
		assert.Equal(t, 3, *sub.EntriesRemaining)
		assert.True(t, sub.IsValid(facilityID, now))
	})

	t.Run("success: no plan is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingViewQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetActiveSubscription(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Subscription{}, pgx.ErrNoRows)

		sub, err := store.ActiveSubscription(ctx, userID, facilityID, now)
		require.NoError(t, err)
		assert.Nil(t, sub)
	})
}

func TestPricingReadStore_VehicleByID(t *testing.T) {
	ctx := context.Background()
	vehicleID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockPricingViewQueries(ctrl)
	store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetVehicle(ctx, gomock.Any(), vehicleID).Return(sqlc.Vehicle{
		ID:          vehicleID,
		UserID:      uuid.New(),
		Plate:       "B-PK 1234",
		VehicleType: "ELECTRIC_CAR",
		IsActive:    true,
	}, nil)

	v, err := store.VehicleByID(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, spot.VehicleElectricCar, v.Type)
	assert.Equal(t, "B-PK 1234", v.Plate)
}

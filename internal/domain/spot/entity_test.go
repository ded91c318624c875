//go:build unit

package spot_test

import (
	"testing"
	"time"

	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpot(size spot.Size, features spot.Features, status spot.Status) *spot.Spot {
	return spot.ReconstructSpot(uuid.New(), uuid.New(), uuid.New(), "A-101", size, features, status, nil, true, time.Time{})
}

func TestSpot_Accommodates(t *testing.T) {
	testCases := []struct {
		name     string
		size     spot.Size
		features spot.Features
		vehicle  spot.VehicleType
		req      spot.Requirements
		wantErr  error
	}{
		{name: "car fits medium", size: spot.SizeMedium, vehicle: spot.VehicleCar},
		{name: "motorcycle fits medium", size: spot.SizeMedium, vehicle: spot.VehicleMotorcycle},
		{name: "suv does not fit medium", size: spot.SizeMedium, vehicle: spot.VehicleSUV, wantErr: errs.ErrIncompatibleSpot},
		{name: "bus needs xlarge", size: spot.SizeLarge, vehicle: spot.VehicleBus, wantErr: errs.ErrIncompatibleSpot},
		{name: "truck fits xlarge", size: spot.SizeXLarge, vehicle: spot.VehicleTruck},
		{
			name: "ev charger requested and present", size: spot.SizeMedium, vehicle: spot.VehicleElectricCar,
			features: spot.Features{EVCharger: true}, req: spot.Requirements{EVCharger: true},
		},
		{
			name: "ev charger requested but missing", size: spot.SizeMedium, vehicle: spot.VehicleElectricCar,
			req: spot.Requirements{EVCharger: true}, wantErr: errs.ErrIncompatibleSpot,
		},
		{
			name: "accessible requested but missing", size: spot.SizeLarge, vehicle: spot.VehicleCar,
			features: spot.Features{Covered: true}, req: spot.Requirements{Accessible: true}, wantErr: errs.ErrIncompatibleSpot,
		},
		{name: "unknown vehicle", size: spot.SizeLarge, vehicle: spot.VehicleType("TANK"), wantErr: errs.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSpot(tc.size, tc.features, spot.StatusAvailable)
			err := s.Accommodates(tc.vehicle, tc.req)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestSpot_CheckBookable(t *testing.T) {
	assert.NoError(t, newSpot(spot.SizeMedium, spot.Features{}, spot.StatusReserved).CheckBookable())

	err := newSpot(spot.SizeMedium, spot.Features{}, spot.StatusMaintenance).CheckBookable()
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrResourceUnavailable))

	disabled := spot.ReconstructSpot(uuid.New(), uuid.New(), uuid.New(), "A-102", spot.SizeMedium, spot.Features{}, spot.StatusAvailable, nil, false, time.Time{})
	err = disabled.CheckBookable()
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrResourceUnavailable))
}

func TestSpot_Reconcile(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	early := spot.Holder{BookingID: uuid.New(), Start: now.Add(time.Hour)}
	late := spot.Holder{BookingID: uuid.New(), Start: now.Add(5 * time.Hour)}
	active := spot.Holder{BookingID: uuid.New(), Active: true, Start: now}

	t.Run("no holders frees the spot", func(t *testing.T) {
		s := newSpot(spot.SizeMedium, spot.Features{}, spot.StatusOccupied)
		s.Reconcile(nil, now)
		assert.Equal(t, spot.StatusAvailable, s.Status())
		assert.Nil(t, s.CurrentBookingID())
		assert.True(t, s.IsAvailable())
	})

	t.Run("earliest confirmed booking reserves", func(t *testing.T) {
		s := newSpot(spot.SizeMedium, spot.Features{}, spot.StatusAvailable)
		s.Reconcile([]spot.Holder{late, early}, now)
		assert.Equal(t, spot.StatusReserved, s.Status())
		require.NotNil(t, s.CurrentBookingID())
		assert.Equal(t, early.BookingID, *s.CurrentBookingID())
	})

	t.Run("active booking occupies", func(t *testing.T) {
		s := newSpot(spot.SizeMedium, spot.Features{}, spot.StatusReserved)
		s.Reconcile([]spot.Holder{early, active}, now)
		assert.Equal(t, spot.StatusOccupied, s.Status())
		assert.Equal(t, active.BookingID, *s.CurrentBookingID())
	})

	t.Run("maintenance is preserved", func(t *testing.T) {
		s := newSpot(spot.SizeMedium, spot.Features{}, spot.StatusMaintenance)
		s.Reconcile([]spot.Holder{active}, now)
		assert.Equal(t, spot.StatusMaintenance, s.Status())
	})
}

func TestVehicleType_RequiredSize(t *testing.T) {
	assert.Equal(t, spot.SizeSmall, spot.VehicleBicycle.RequiredSize())
	assert.Equal(t, spot.SizeMedium, spot.VehicleElectricCar.RequiredSize())
	assert.Equal(t, spot.SizeLarge, spot.VehicleVan.RequiredSize())
	assert.Equal(t, spot.SizeXLarge, spot.VehicleBus.RequiredSize())
	assert.True(t, spot.VehicleElectricSUV.IsElectric())
	assert.False(t, spot.VehicleSUV.IsElectric())
}

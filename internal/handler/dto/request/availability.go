package request

import (
	"parkme/internal/domain/spot"
)

type SpotSearchRequest struct {
	VehicleType string `form:"vehicle_type" binding:"required"`
	EVCharger   bool   `form:"ev_charger"`
	Accessible  bool   `form:"accessible"`
	Covered     bool   `form:"covered"`
}

func (r SpotSearchRequest) ParsedVehicleType() (spot.VehicleType, error) {
	return spot.ParseVehicleType(r.VehicleType)
}

func (r SpotSearchRequest) Requirements() spot.Requirements {
	return spot.Requirements{
		EVCharger:  r.EVCharger,
		Accessible: r.Accessible,
		Covered:    r.Covered,
	}
}

package request

import (
	"math"
	"time"

	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

type EstimateRequest struct {
	FacilityID    string     `form:"facility_id" binding:"required,uuid"`
	VehicleType   string     `form:"vehicle_type" binding:"required"`
	DurationHours float64    `form:"duration_hours" binding:"required,gt=0"`
	SpotSize      string     `form:"spot_size"`
	StartTime     *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r EstimateRequest) Duration() time.Duration {
	return time.Duration(math.Round(r.DurationHours*60)) * time.Minute
}

func (r EstimateRequest) ParsedFacilityID() (uuid.UUID, error) {
	id, err := uuid.Parse(r.FacilityID)
	if err != nil {
		return uuid.Nil, errs.Validation("invalid facility id %q", r.FacilityID)
	}
	return id, nil
}

func (r EstimateRequest) ParsedVehicleType() (spot.VehicleType, error) {
	return spot.ParseVehicleType(r.VehicleType)
}

// ParsedSpotSize returns the empty size when the caller did not filter by size.
func (r EstimateRequest) ParsedSpotSize() (spot.Size, error) {
	if r.SpotSize == "" {
		return "", nil
	}
	return spot.ParseSize(r.SpotSize)
}

package request

import (
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/spot"

	"github.com/google/uuid"
)

type RequirementsRequest struct {
	EVCharger  bool `json:"ev_charger"`
	Accessible bool `json:"accessible"`
	Covered    bool `json:"covered"`
}

func (r *RequirementsRequest) ToDomain() spot.Requirements {
	if r == nil {
		return spot.Requirements{}
	}
	return spot.Requirements{
		EVCharger:  r.EVCharger,
		Accessible: r.Accessible,
		Covered:    r.Covered,
	}
}

type ReserveRequest struct {
	VehicleID    uuid.UUID            `json:"vehicle_id" binding:"required"`
	SpotID       uuid.UUID            `json:"spot_id" binding:"required"`
	EntryTime    time.Time            `json:"entry_time" binding:"required"`
	ExpectedExit time.Time            `json:"expected_exit" binding:"required"`
	Requirements *RequirementsRequest `json:"requirements,omitempty"`
}

func (r ReserveRequest) Interval() (booking.Interval, error) {
	return booking.NewInterval(r.EntryTime, r.ExpectedExit)
}

type DriveInRequest struct {
	VehicleID    uuid.UUID            `json:"vehicle_id" binding:"required"`
	SpotID       uuid.UUID            `json:"spot_id" binding:"required"`
	Requirements *RequirementsRequest `json:"requirements,omitempty"`
}

type ListBookingsRequest struct {
	Status *string `form:"status"`
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListBookingsRequest) GetLimit() int {
	if r.Limit <= 0 {
		return 20
	}
	return r.Limit
}

type ExtendRequest struct {
	NewExit time.Time `json:"new_exit" binding:"required"`
}

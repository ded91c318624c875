package readmodel

import (
	"github.com/google/uuid"
)

type ZoneAvailabilityView struct {
	ID             uuid.UUID
	Code           string
	Name           string
	TotalSpots     int
	AvailableSpots int
}

type FacilityAvailabilityView struct {
	ID             uuid.UUID
	Name           string
	TimeZone       string
	TotalSpots     int
	AvailableSpots int
	Zones          []ZoneAvailabilityView
}

type SpotAvailabilityView struct {
	SpotID   uuid.UUID
	Number   string
	Status   string
	Bookable bool
	// Locked means another operation held the spot when checked.
	Locked bool
}

// SpotView is a spot a vehicle can be parked in right now.
type SpotView struct {
	ID         uuid.UUID
	ZoneID     uuid.UUID
	Number     string
	Size       string
	EVCharger  bool
	Accessible bool
	Covered    bool
	VIP        bool
}

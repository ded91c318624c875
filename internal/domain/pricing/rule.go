package pricing

import (
	"time"

	"parkme/internal/domain/spot"

	"github.com/google/uuid"
)

type Rule struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	Name         string
	Config       StrategyConfig
	Priority     int
	VehicleTypes []spot.VehicleType
	SpotSizes    []spot.Size
	Window       *TimeWindow
	ValidFrom    *time.Time
	ValidUntil   *time.Time
	FreeMinutes  int
	Overstay     OverstayPenalty
	Active       bool
}

func (r Rule) Strategy() Strategy { return r.Config.Strategy() }

// TimeWindow restricts a rule to bookings starting on the given weekdays
// within [Start, End) local time. Empty Days means every day.
type TimeWindow struct {
	Days  []Weekday `json:"days,omitempty"`
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func (w TimeWindow) Contains(t time.Time) bool {
	if len(w.Days) > 0 && !containsDay(w.Days, t.Weekday()) {
		return false
	}
	ct := ClockTimeOf(t)
	return !ct.Before(w.Start) && ct.Before(w.End)
}

// OverstayPenalty is charged once the actual exit passes the expected exit.
type OverstayPenalty struct {
	PerMinute Money
	Flat      Money
}

func (p OverstayPenalty) IsZero() bool {
	return p.PerMinute.IsZero() && p.Flat.IsZero()
}

func (p OverstayPenalty) For(minutesOver int64) Money {
	if minutesOver <= 0 {
		return Zero()
	}
	return p.Flat.Add(p.PerMinute.Mul(minutesOver))
}

// Matches reports whether the rule applies to a booking of vehicle in a spot
// of size starting at start (already in facility local time).
func (r Rule) Matches(vehicle spot.VehicleType, size spot.Size, start time.Time) bool {
	if !r.Active {
		return false
	}
	if r.ValidFrom != nil && start.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && !start.Before(*r.ValidUntil) {
		return false
	}
	if len(r.VehicleTypes) > 0 && !contains(r.VehicleTypes, vehicle) {
		return false
	}
	if len(r.SpotSizes) > 0 && size != "" && !contains(r.SpotSizes, size) {
		return false
	}
	if r.Window != nil && !r.Window.Contains(start) {
		return false
	}
	return true
}

func contains[T comparable](xs []T, v T) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

package pricing

import (
	"time"

	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrSubscriptionExhausted reports that a counted plan ran out of entries
// between pricing and consumption.
var ErrSubscriptionExhausted = errs.New("subscription has no entries left")

type Subscription struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	FacilityID       uuid.UUID
	ExpiresAt        time.Time
	EntriesRemaining *int // nil for unlimited plans
	Active           bool
}

// IsValid reports whether the subscription can cover a booking at now.
func (s *Subscription) IsValid(facilityID uuid.UUID, now time.Time) bool {
	if s == nil || !s.Active {
		return false
	}
	if s.FacilityID != facilityID {
		return false
	}
	if !now.Before(s.ExpiresAt) {
		return false
	}
	if s.EntriesRemaining != nil && *s.EntriesRemaining <= 0 {
		return false
	}
	return true
}

package booking

import (
	"time"

	"parkme/internal/pkg/errs"
)

// Interval is half-open [Start, End). A nil End extends to infinity, which
// is how drive-ins without an expected exit occupy a spot.
type Interval struct {
	Start time.Time
	End   *time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errs.Validation("interval start %s must be before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: &end}, nil
}

func OpenInterval(start time.Time) Interval {
	return Interval{Start: start}
}

func (i Interval) IsOpen() bool { return i.End == nil }

// Overlaps: [t1,e1) and [t2,e2) overlap iff t1 < e2 and t2 < e1.
func (i Interval) Overlaps(o Interval) bool {
	if o.End != nil && !i.Start.Before(*o.End) {
		return false
	}
	if i.End != nil && !o.Start.Before(*i.End) {
		return false
	}
	return true
}

// FindConflict returns the first booking that still holds the spot and whose
// interval overlaps candidate, or nil.
func FindConflict(candidate Interval, existing []*Booking) *Booking {
	for _, b := range existing {
		if b == nil || !b.Status().Holds() {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			return b
		}
	}
	return nil
}

// CheckNoConflict is FindConflict surfaced as a TimeConflict error.
func CheckNoConflict(candidate Interval, existing []*Booking) error {
	if c := FindConflict(candidate, existing); c != nil {
		return errs.Mark(
			errs.Newf("spot already booked by %s", c.TicketNumber()),
			errs.ErrTimeConflict,
		)
	}
	return nil
}

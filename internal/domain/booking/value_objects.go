package booking

import (
	"parkme/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusActive, StatusCancelled, StatusNoShow},
	StatusActive:    {StatusCompleted},
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Holds reports whether a booking in this status still claims its spot for
// overlap purposes.
func (s Status) Holds() bool {
	return s == StatusConfirmed || s == StatusActive
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", errs.Validation("unknown booking status %q", v)
	}
	return s, nil
}

type Type string

const (
	TypeReservation Type = "RESERVATION"
	TypeDriveIn     Type = "DRIVE_IN"
)

func (t Type) String() string { return string(t) }

func ParseType(v string) (Type, error) {
	switch t := Type(v); t {
	case TypeReservation, TypeDriveIn:
		return t, nil
	}
	return "", errs.Validation("unknown booking type %q", v)
}

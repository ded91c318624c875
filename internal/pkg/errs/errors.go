package errs

import "errors"

// Error taxonomy surfaced by booking operations. Lower layers mark their
// errors with one of these so callers can classify with Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrIncompatibleSpot    = errors.New("incompatible spot")
	ErrTimeConflict        = errors.New("time conflict")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrPricingRuleNotFound = errors.New("pricing rule not found")

	// Lock errors are retryable
	ErrResourceLocked = errors.New("resource locked")
	ErrLockTimeout    = errors.New("lock timeout")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Code returns the stable machine-readable name of the taxonomy entry err is
// marked with, or "INTERNAL" when it carries none.
func Code(err error) string {
	switch {
	case Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case Is(err, ErrNotFound):
		return "NOT_FOUND"
	case Is(err, ErrResourceUnavailable):
		return "RESOURCE_UNAVAILABLE"
	case Is(err, ErrIncompatibleSpot):
		return "INCOMPATIBLE_SPOT"
	case Is(err, ErrTimeConflict):
		return "TIME_CONFLICT"
	case Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case Is(err, ErrPricingRuleNotFound):
		return "PRICING_RULE_NOT_FOUND"
	case Is(err, ErrResourceLocked):
		return "RESOURCE_LOCKED"
	case Is(err, ErrLockTimeout):
		return "LOCK_TIMEOUT"
	default:
		return "INTERNAL"
	}
}

func IsRetryable(err error) bool {
	return Is(err, ErrResourceLocked) || Is(err, ErrLockTimeout)
}

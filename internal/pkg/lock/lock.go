// Package lock provides exclusive per-key locks with an explicit wait
// policy: Block waits up to a bounded timeout, NoWait fails immediately.
package lock

import (
	"context"
	"time"

	"parkme/internal/pkg/errs"
)

type WaitPolicy int

const (
	Block WaitPolicy = iota
	NoWait
)

func (p WaitPolicy) String() string {
	if p == NoWait {
		return "NOWAIT"
	}
	return "BLOCK"
}

// Handle releases a held lock. Release is idempotent and safe to defer.
type Handle interface {
	Release()
}

type Locker interface {
	Acquire(ctx context.Context, key string, policy WaitPolicy) (Handle, error)
}

type Options struct {
	WaitTimeout   time.Duration
	LeaseTTL      time.Duration
	RetryInterval time.Duration
	KeyPrefix     string
}

func (o Options) withDefaults() Options {
	if o.WaitTimeout <= 0 {
		o.WaitTimeout = 3 * time.Second
	}
	if o.LeaseTTL <= 0 {
		o.LeaseTTL = 30 * time.Second
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = 25 * time.Millisecond
	}
	return o
}

func lockedError(key string) error {
	return errs.Mark(errs.Newf("lock %s is held by another operation", key), errs.ErrResourceLocked)
}

func timeoutError(key string, wait time.Duration) error {
	return errs.Mark(errs.Newf("timed out after %s waiting for lock %s", wait, key), errs.ErrLockTimeout)
}

// ClassifyContextErr maps a cancelled wait onto LockTimeout so callers see a
// retryable error rather than a bare context error.
func ClassifyContextErr(key string, err error) error {
	return errs.Mark(errs.Wrapf(err, "waiting for lock %s", key), errs.ErrLockTimeout)
}

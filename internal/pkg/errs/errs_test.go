//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"parkme/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "marked validation", err: errs.Validation("bad %s", "input"), want: "VALIDATION_ERROR"},
		{name: "marked conflict", err: errs.Mark(errs.New("overlap"), errs.ErrTimeConflict), want: "TIME_CONFLICT"},
		{name: "wrapped lock timeout", err: errs.Wrap(errs.Mark(errs.New("wait"), errs.ErrLockTimeout), "reserve"), want: "LOCK_TIMEOUT"},
		{name: "fmt wrapped sentinel", err: fmt.Errorf("x: %w", errs.ErrNotFound), want: "NOT_FOUND"},
		{name: "unclassified", err: errors.New("boom"), want: "INTERNAL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Code(tc.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, errs.IsRetryable(errs.Mark(errs.New("held"), errs.ErrResourceLocked)))
	assert.True(t, errs.IsRetryable(errs.Mark(errs.New("wait"), errs.ErrLockTimeout)))
	assert.False(t, errs.IsRetryable(errs.Mark(errs.New("overlap"), errs.ErrTimeConflict)))
}

//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkme/internal/handler/httperr"
	"parkme/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation("bad interval"), want: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(errs.New("x"), errs.ErrNotFound), want: http.StatusNotFound},
		{name: "unavailable", err: errs.Mark(errs.New("x"), errs.ErrResourceUnavailable), want: http.StatusConflict},
		{name: "time conflict", err: errs.Mark(errs.New("x"), errs.ErrTimeConflict), want: http.StatusConflict},
		{name: "invalid transition", err: errs.Mark(errs.New("x"), errs.ErrInvalidTransition), want: http.StatusConflict},
		{name: "incompatible spot", err: errs.Mark(errs.New("x"), errs.ErrIncompatibleSpot), want: http.StatusUnprocessableEntity},
		{name: "no pricing rule", err: errs.Mark(errs.New("x"), errs.ErrPricingRuleNotFound), want: http.StatusUnprocessableEntity},
		{name: "locked", err: errs.Wrap(errs.ErrResourceLocked, "spot"), want: http.StatusLocked},
		{name: "lock timeout", err: errs.Wrap(errs.ErrLockTimeout, "spot"), want: http.StatusServiceUnavailable},
		{name: "database", err: errs.Mark(errs.New("x"), errs.ErrDatabaseOperationFailed), want: http.StatusInternalServerError},
		{name: "unclassified", err: errs.New("x"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, httperr.Response) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		httperr.AbortWithDomainError(c, err)

		var body httperr.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("internal errors hide their message", func(t *testing.T) {
		rec, body := run(errs.New("pq: relation bookings does not exist"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
		assert.Equal(t, "INTERNAL", body.Error.Code)
		assert.Empty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("client errors keep their message", func(t *testing.T) {
		rec, body := run(errs.Mark(errs.New("spot A-101 is under maintenance"), errs.ErrResourceUnavailable))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "spot A-101 is under maintenance", body.Error.Message)
	})

	t.Run("lock contention advertises a retry", func(t *testing.T) {
		rec, body := run(errs.Wrap(errs.ErrResourceLocked, "spot"))
		assert.Equal(t, http.StatusLocked, rec.Code)
		assert.Equal(t, "RESOURCE_LOCKED", body.Error.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

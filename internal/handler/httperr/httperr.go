package httperr

import (
	"net/http"
	"strconv"
	"time"

	"parkme/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RetryAfter is advertised on lock errors; the lock is short-lived.
const RetryAfter = time.Second

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = errs.Code(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps err onto the booking error taxonomy. Unclassified
// errors become 500 with a generic message.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	switch {
	case errs.Is(err, errs.ErrResourceLocked):
		msg = "Spot is being modified by another request"
	case errs.Is(err, errs.ErrLockTimeout):
		msg = "Timed out waiting for the spot"
	case status >= http.StatusInternalServerError:
		msg = "Internal server error"
	}
	if errs.IsRetryable(err) {
		c.Header("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrResourceUnavailable),
		errs.Is(err, errs.ErrTimeConflict),
		errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errs.Is(err, errs.ErrIncompatibleSpot),
		errs.Is(err, errs.ErrPricingRuleNotFound):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrResourceLocked):
		return http.StatusLocked
	case errs.Is(err, errs.ErrLockTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

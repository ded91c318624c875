//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"parkme/internal/handler/middleware"
	"parkme/internal/pkg/jwt"
	"parkme/internal/usecase"
	"parkme/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	router := newAuthRouter(svc)

	t.Run("valid bearer token exposes the user id", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("missing header is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "required")
	})

	t.Run("token signed with another key is 401", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(uuid.New())
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/internal/usecase"
	"drop-arbiter/tests/common/httptest"
	usecasemock "drop-arbiter/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	operatorID := uuid.New()
	identity := &usecase.OperatorIdentity{OperatorID: operatorID, BusinessName: "Iron Forge Fitness"}

	newRouter := func(v usecase.TokenValidator) *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.NewAuthMiddleware(v).RequireOperator(), func(c *gin.Context) {
			actor, ok := middleware.GetActor(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, gin.H{"operator_id": actor.OperatorID, "name": actor.BusinessName})
		})
		return r
	}

	t.Run("success: bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)
		v.EXPECT().ValidateToken(gomock.Any(), "good-token").Return(identity, nil)

		rec := httptest.PerformRequest(t, newRouter(v), http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, operatorID.String(), body["operator_id"])
		assert.Equal(t, "Iron Forge Fitness", body["name"])
	})

	t.Run("success: cookie fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)
		v.EXPECT().ValidateToken(gomock.Any(), "cookie-token").Return(identity, nil)

		rec := httptest.PerformRequestWithCookies(t, newRouter(v), http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("error: missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newRouter(v), http.MethodGet, "/me", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)
		v.EXPECT().ValidateToken(gomock.Any(), "stale").Return(nil, errors.New("token expired"))

		rec := httptest.PerformRequest(t, newRouter(v), http.MethodGet, "/me", nil, "stale")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

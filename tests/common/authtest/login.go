//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"drop-arbiter/internal/handler/dto/request"
	"drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/tests/common/dbtest"
	"drop-arbiter/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginOperator(t *testing.T, router *gin.Engine, operatorID uuid.UUID, accessCode string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{OperatorID: operatorID, AccessCode: accessCode}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	require.Equal(t, body.Token, accessCookie.Value)

	return body.Token
}

// CreateAndLogin inserts an operator and returns its id with a fresh token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, businessName string) (uuid.UUID, string) {
	t.Helper()
	operatorID := dbtest.CreateTestOperator(t, db, businessName)
	return operatorID, LoginOperator(t, router, operatorID, dbtest.TestAccessCode)
}

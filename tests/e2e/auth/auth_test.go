//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"drop-arbiter/internal/handler/dto/request"
	"drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/tests/common/authtest"
	"drop-arbiter/tests/common/dbtest"
	"drop-arbiter/tests/common/httptest"
	"drop-arbiter/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		knownOperator  bool
		accessCode     string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid login",
			knownOperator:  true,
			accessCode:     dbtest.TestAccessCode,
			expectedStatus: http.StatusOK,
			description:    "valid credentials return a token",
		},
		{
			name:           "unknown operator",
			knownOperator:  false,
			accessCode:     dbtest.TestAccessCode,
			expectedStatus: http.StatusUnauthorized,
			description:    "an unknown operator cannot log in",
		},
		{
			name:           "wrong access code",
			knownOperator:  true,
			accessCode:     "wrong-code",
			expectedStatus: http.StatusUnauthorized,
			description:    "a wrong access code is rejected",
		},
		{
			name:           "empty access code",
			knownOperator:  true,
			accessCode:     "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty access code is rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			operatorID := dbtest.CreateTestOperator(t, s.DB, "Iron Forge Fitness")
			if !tt.knownOperator {
				operatorID = uuid.New()
			}

			reqBody := request.LoginRequest{OperatorID: operatorID, AccessCode: tt.accessCode}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var loginRes response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
			require.NotEmpty(t, loginRes.Token)
			require.NotNil(t, loginRes.Operator)
			assert.Equal(t, operatorID, loginRes.Operator.ID)
			assert.Equal(t, "Iron Forge Fitness", loginRes.Operator.BusinessName)

			accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
			require.NotNil(t, accessCookie)
			assert.True(t, accessCookie.HttpOnly)
			assert.Equal(t, loginRes.Token, accessCookie.Value)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("bearer token", func() {
		t := s.T()
		operatorID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Iron Forge Fitness")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me response.OperatorResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		assert.Equal(t, operatorID, me.ID)
		assert.Equal(t, "Iron Forge Fitness", me.BusinessName)
	})

	s.Run("cookie token", func() {
		t := s.T()
		operatorID := dbtest.CreateTestOperator(t, s.DB, "Iron Forge Fitness")
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{OperatorID: operatorID, AccessCode: dbtest.TestAccessCode}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(login), "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("expired token", func() {
		t := s.T()
		operatorID := dbtest.CreateTestOperator(t, s.DB, "Iron Forge Fitness")
		token := s.jwtHelper.CreateExpiredToken(t, operatorID, "Iron Forge Fitness")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("token of a deleted operator", func() {
		t := s.T()
		operatorID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Iron Forge Fitness")
		_, err := s.DB.Exec(t.Context(), "DELETE FROM operators WHERE id = $1", operatorID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("no token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the access cookie", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Iron Forge Fitness")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)

		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Less(t, cleared.MaxAge, 0)
	})

	s.Run("requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

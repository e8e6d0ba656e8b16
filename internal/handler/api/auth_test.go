//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	domoperator "drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/handler/api"
	reqdto "drop-arbiter/internal/handler/dto/request"
	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/internal/pkg/jwt"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/queries"
	"drop-arbiter/tests/common/httptest"
	"drop-arbiter/tests/common/testutil"
	commandsmock "drop-arbiter/tests/mock/commands"
	queriesmock "drop-arbiter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockOperatorQueries
	handler      *api.AuthHandler
	operatorID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOperatorQueries(s.mockCtrl)
	s.operatorID = uuid.New()
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwt.NewService("test-secret", time.Hour), config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", fakeAuth(s.operatorID), s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth(s.operatorID), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{OperatorID: s.operatorID, AccessCode: "forge-2024"}
	view := &queries.OperatorView{ID: s.operatorID, BusinessName: testBusinessName, CreatedAt: time.Now().UTC()}

	s.Run("success: returns token and sets cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), s.operatorID, "forge-2024").
			Return(&commands.LoginResult{Token: "signed-token", Operator: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed-token", body.Token)
		s.Require().NotNil(body.Operator)
		s.Equal(s.operatorID, body.Operator.ID)
		s.Equal(testBusinessName, body.Operator.BusinessName)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("signed-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)
	})

	s.Run("error: 400 on malformed body", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing operator_id", mutate: testutil.Field("operator_id", nil)},
			{name: "missing access_code", mutate: testutil.Field("access_code", nil)},
			{name: "operator_id not a uuid", mutate: testutil.Field("operator_id", "forge")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "bad credentials", err: domoperator.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid operator credentials"},
			{name: "token failure", err: commands.ErrTokenGeneration, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "unclassified", err: errors.New("pool exhausted"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "pool exhausted")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.True(accessCookie.MaxAge < 0)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current operator", func() {
		view := &queries.OperatorView{ID: s.operatorID, BusinessName: testBusinessName}
		s.mockQueries.EXPECT().GetCurrentOperator(gomock.Any(), s.operatorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body resdto.OperatorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.operatorID, body.ID)
	})

	s.Run("error: 404 when the operator vanished", func() {
		s.mockQueries.EXPECT().GetCurrentOperator(gomock.Any(), s.operatorID).Return(nil, queries.ErrOperatorNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

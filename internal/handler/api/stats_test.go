//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"drop-arbiter/internal/handler/api"
	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/usecase/queries"
	"drop-arbiter/tests/common/httptest"
	queriesmock "drop-arbiter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_Today(t *testing.T) {
	gin.SetMode(gin.TestMode)
	operatorID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(m *queriesmock.MockStatsQueries)
		expectCode int
		expectBody *resdto.TodayStatsResponse
	}{
		{
			name: "success: today's counters",
			setupMock: func(m *queriesmock.MockStatsQueries) {
				m.EXPECT().Today(gomock.Any(), operatorID).Return(&queries.TodayStats{
					RecoveredRevenueCents: 7500,
					DropsLaunched:         4,
					DropsFilled:           2,
					ClaimsCount:           9,
				}, nil)
			},
			expectCode: http.StatusOK,
			expectBody: &resdto.TodayStatsResponse{RecoveredRevenueCents: 7500, DropsLaunched: 4, DropsFilled: 2, ClaimsCount: 9},
		},
		{
			name: "error: store failure is a 500",
			setupMock: func(m *queriesmock.MockStatsQueries) {
				m.EXPECT().Today(gomock.Any(), operatorID).Return(nil, errors.New("timeout"))
			},
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockStatsQueries(ctrl)
			tc.setupMock(q)

			router := gin.New()
			router.GET("/stats/today", fakeAuth(operatorID), api.NewStatsHandler(q).Today)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/stats/today", nil, "bearer-token")

			if tc.expectBody == nil {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "Internal server error")
				return
			}
			var body resdto.TodayStatsResponse
			httptest.AssertSuccessResponse(t, rec, tc.expectCode, &body)
			assert.Equal(t, *tc.expectBody, body)
		})
	}
}

func TestStatsHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)
	operatorID := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		query      string
		expectDays int
		setupErr   error
		expectCode int
	}{
		{name: "success: days passed through", query: "?days=30", expectDays: 30, expectCode: http.StatusOK},
		{name: "success: missing days reaches the usecase as zero", query: "", expectDays: 0, expectCode: http.StatusOK},
		{name: "success: unparsable days reaches the usecase as zero", query: "?days=week", expectDays: 0, expectCode: http.StatusOK},
		{name: "error: store failure is a 500", query: "?days=7", expectDays: 7, setupErr: errors.New("timeout"), expectCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockStatsQueries(ctrl)
			if tc.setupErr != nil {
				q.EXPECT().History(gomock.Any(), operatorID, tc.expectDays).Return(nil, tc.setupErr)
			} else {
				q.EXPECT().History(gomock.Any(), operatorID, tc.expectDays).Return([]*queries.DayStats{
					{Day: day.AddDate(0, 0, -1)},
					{Day: day, DropsLaunched: 3, DropsFilled: 2, RecoveredRevenueCents: 4000},
				}, nil)
			}

			router := gin.New()
			router.GET("/stats/history", fakeAuth(operatorID), api.NewStatsHandler(q).History)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/stats/history"+tc.query, nil, "bearer-token")

			if tc.setupErr != nil {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "Internal server error")
				return
			}
			var body []resdto.DayStatsResponse
			httptest.AssertSuccessResponse(t, rec, tc.expectCode, &body)
			assert.Equal(t, []resdto.DayStatsResponse{
				{Day: "2025-03-13"},
				{Day: "2025-03-14", DropsLaunched: 3, DropsFilled: 2, RecoveredRevenueCents: 4000},
			}, body)
		})
	}

	t.Run("error: missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockStatsQueries(ctrl)

		router := gin.New()
		router.GET("/stats/history", fakeAuth(operatorID), api.NewStatsHandler(q).History)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/stats/history", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

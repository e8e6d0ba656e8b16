//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domclaim "drop-arbiter/internal/domain/claim"
	domdrop "drop-arbiter/internal/domain/drop"
	domoperator "drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: domdrop.ErrInvalidTimer, want: http.StatusBadRequest},
		{name: "unauthorized", err: domoperator.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "not found", err: domclaim.ErrNotFound, want: http.StatusNotFound},
		{name: "conflict", err: domdrop.ErrExpired, want: http.StatusConflict},
		{name: "wrapped conflict", err: errs.Wrap(domdrop.ErrNotLive, "submit claim"), want: http.StatusConflict},
		{name: "computed conflict", err: domdrop.ErrCannotConfirm(domdrop.StatusFilled), want: http.StatusConflict},
		{name: "unclassified", err: errors.New("broken pipe"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("classified errors keep their message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.Abort(c, domdrop.ErrExpired)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Drop has expired"}`, rec.Body.String())
		assert.True(t, c.IsAborted())
		assert.Len(t, c.Errors, 1)
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.Abort(c, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}

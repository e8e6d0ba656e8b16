//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse decodes a 2xx body into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the {"error": ...} envelope. An empty
// expectedMsg only checks the status and the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error string `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "undecodable error body: %s", w.Body.String()) {
		return
	}
	if expectedMsg != "" {
		assert.Contains(t, envelope.Error, expectedMsg)
	}
}

// AssertReplayed checks that w is a verbatim replay of original.
func AssertReplayed(t *testing.T, original, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, original.Code, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotency-Replayed"))
	assert.JSONEq(t, original.Body.String(), w.Body.String())
}

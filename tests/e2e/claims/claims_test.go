//go:build e2e

package claims_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/handler/dto/request"
	"drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/tests/common/authtest"
	"drop-arbiter/tests/common/builder"
	"drop-arbiter/tests/common/dbtest"
	"drop-arbiter/tests/common/httptest"
	"drop-arbiter/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type claimsSuite struct {
	e2e.SharedSuite
	operatorID uuid.UUID
	token      string
}

func TestClaimsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(claimsSuite))
}

func (s *claimsSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.operatorID, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Iron Forge Fitness")
}

func (s *claimsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operatorID, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Iron Forge Fitness")
}

func (s *claimsSuite) launch(t *testing.T, spots int) response.DropResponse {
	t.Helper()
	req := builder.NewDropBuilder().BuildCreateRequestDTO()
	req.SpotsAvailable = &spots
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/drops", req, s.token)
	var d response.DropResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &d)
	return d
}

func (s *claimsSuite) submit(t *testing.T, dropID uuid.UUID, phone, name string) response.ClaimResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL(dropID),
		request.SubmitClaimRequest{ClaimantPhone: phone, ClaimantName: name}, "")
	var c response.ClaimResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &c)
	return c
}

func (s *claimsSuite) confirm(t *testing.T, claimID uuid.UUID) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/claims/"+claimID.String()+"/confirm", nil, s.token)
}

func (s *claimsSuite) TestSubmit() {
	s.Run("pending claim with normalized phone", func() {
		t := s.T()
		d := s.launch(t, 2)

		c := s.submit(t, d.ID, "(415) 555-0134", "Dana")

		assert.Equal(t, d.ID, c.DropID)
		assert.Equal(t, "+14155550134", c.ClaimantPhone)
		assert.Equal(t, "pending", c.Status)
		assert.Nil(t, c.ConfirmedAt)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM operator_events WHERE type = 'claim_received' AND actor = 'customer'"))
	})

	s.Run("validation errors", func() {
		t := s.T()
		d := s.launch(t, 1)
		tests := []struct {
			body    request.SubmitClaimRequest
			wantMsg string
		}{
			{body: request.SubmitClaimRequest{ClaimantPhone: "", ClaimantName: "Dana"}, wantMsg: "claimant_phone is required"},
			{body: request.SubmitClaimRequest{ClaimantPhone: "call me", ClaimantName: "Dana"}, wantMsg: "claimant_phone must contain digits"},
			{body: request.SubmitClaimRequest{ClaimantPhone: "4155550134", ClaimantName: "  "}, wantMsg: "claimant_name is required"},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL(d.ID), tt.body, "")
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, tt.wantMsg)
		}
		assert.Zero(t, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM claims"))
	})

	s.Run("unknown drop", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL(uuid.New()),
			request.SubmitClaimRequest{ClaimantPhone: "4155550134", ClaimantName: "Dana"}, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Drop not found")
	})
}

// Two spots and three claimants; the second confirm fills the drop.
func (s *claimsSuite) TestConfirmUntilFilled() {
	t := s.T()
	d := s.launch(t, 2)
	first := s.submit(t, d.ID, "4155550101", "Ana")
	second := s.submit(t, d.ID, "4155550102", "Ben")
	third := s.submit(t, d.ID, "4155550103", "Cy")

	sub, err := s.Hub.Subscribe(s.operatorID)
	require.NoError(t, err)
	defer sub.Close()

	w := s.confirm(t, first.ID)
	var c response.ClaimResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &c)
	assert.Equal(t, "confirmed", c.Status)
	require.NotNil(t, c.ConfirmedAt)

	w = s.confirm(t, second.ID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.confirm(t, third.ID)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Drop is filled; cannot confirm more claims")

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/drops/"+d.ID.String(), nil, s.token)
	var detail response.DropDetailResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
	assert.Equal(t, "filled", detail.Status)
	statuses := map[uuid.UUID]string{}
	for _, cl := range detail.Claims {
		statuses[cl.ID] = cl.Status
	}
	assert.Equal(t, map[uuid.UUID]string{first.ID: "confirmed", second.ID: "confirmed", third.ID: "pending"}, statuses)

	got := collectEvents(t, sub, 3)
	assert.Equal(t, []event.Type{event.TypeClaimConfirmed, event.TypeClaimConfirmed, event.TypeDropFilled}, got)
	assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM operator_events WHERE type = 'drop_filled'"))
}

func (s *claimsSuite) TestConcurrentConfirmsNeverOversell() {
	t := s.T()
	const spots, claimants = 2, 6
	d := s.launch(t, spots)
	ids := make([]uuid.UUID, claimants)
	for i := range ids {
		ids[i] = s.submit(t, d.ID, fmt.Sprintf("41555501%02d", i), fmt.Sprintf("Claimant %d", i)).ID
	}

	codes := make([]int, claimants)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			codes[i] = s.confirm(t, id).Code
		}(i, id)
	}
	wg.Wait()

	var ok, conflict int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		}
	}
	assert.Equal(t, spots, ok)
	assert.Equal(t, claimants-spots, conflict)
	assert.Equal(t, spots, dbtest.CountRows(t, s.DB,
		"SELECT count(*) FROM claims WHERE drop_id = $1 AND status = 'confirmed'", d.ID))
	assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
		"SELECT count(*) FROM drops WHERE id = $1 AND status = 'filled'", d.ID))
}

func (s *claimsSuite) TestReject() {
	s.Run("pending claim is rejected once", func() {
		t := s.T()
		d := s.launch(t, 1)
		c := s.submit(t, d.ID, "4155550134", "Dana")
		url := "/api/claims/" + c.ID.String() + "/reject"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, s.token)
		var rejected response.ClaimResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		assert.Equal(t, "rejected", rejected.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Pending claim not found")

		w = s.confirm(t, c.ID)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Only pending claims can be confirmed")
	})

	s.Run("claim of another operator", func() {
		t := s.T()
		otherID := dbtest.CreateTestOperator(t, s.DB, "Other Gym")
		dropID := dbtest.CreateTestDrop(t, s.DB, otherID, 1, 90, time.Now())
		c := s.submit(t, dropID, "4155550134", "Dana")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/claims/"+c.ID.String()+"/reject", nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Pending claim not found")

		w = s.confirm(t, c.ID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Claim not found")
	})
}

// Cancelling a drop expires its pending claims.
func (s *claimsSuite) TestCancelExpiresPendingClaims() {
	t := s.T()
	d := s.launch(t, 2)
	c := s.submit(t, d.ID, "4155550134", "Dana")

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/drops/"+d.ID.String(),
		request.PatchDropRequest{Action: "cancel"}, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.confirm(t, c.ID)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Only pending claims can be confirmed")
	assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
		"SELECT count(*) FROM claims WHERE id = $1 AND status = 'expired'", c.ID))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL(d.ID),
		request.SubmitClaimRequest{ClaimantPhone: "4155550199", ClaimantName: "Lee"}, "")
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Drop is not live")
}

// A retried submission with the same key replays the first
// response and creates no second claim.
func (s *claimsSuite) TestIdempotentSubmit() {
	t := s.T()
	d := s.launch(t, 1)
	body := request.SubmitClaimRequest{ClaimantPhone: "4155550134", ClaimantName: "Dana"}
	headers := map[string]string{middleware.IdempotencyKeyHeader: "claim-" + uuid.NewString()}

	first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, claimURL(d.ID), body, "", headers)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.Empty(t, first.Header().Get(middleware.IdempotencyReplayedHeader))

	second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, claimURL(d.ID), body, "", headers)

	httptest.AssertReplayed(t, first, second)
	assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM claims WHERE drop_id = $1", d.ID))

	tooLong := map[string]string{middleware.IdempotencyKeyHeader: strings.Repeat("k", 256)}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, claimURL(d.ID), body, "", tooLong)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func claimURL(dropID uuid.UUID) string {
	return fmt.Sprintf("/api/drops/%s/claim", dropID)
}

func collectEvents(t *testing.T, sub interface{ Events() <-chan event.Event }, n int) []event.Type {
	t.Helper()
	got := make([]event.Type, 0, n)
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case ev := <-sub.Events():
			got = append(got, ev.Type)
		case <-timeout:
			t.Fatalf("received %d of %d events: %v", len(got), n, got)
		}
	}
	return got
}

package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"admarket/internal/core/domain"
	"admarket/internal/core/port"
)

// stubEngine is a canned port.AdEngine for routing tests.
type stubEngine struct {
	decision *port.AdDecision
	click    *port.ClickResult
	clickErr error
	impErr   error
}

func (s *stubEngine) RequestAd(context.Context, domain.AdRequest) (*port.AdDecision, error) {
	return s.decision, nil
}

func (s *stubEngine) TrackClick(context.Context, port.ClickRequest) (*port.ClickResult, error) {
	return s.click, s.clickErr
}

func (s *stubEngine) TrackImpression(context.Context, port.ImpressionRequest) error {
	return s.impErr
}

func (s *stubEngine) Stats(context.Context, port.StatsReq) (*port.StatsResp, error) {
	return &port.StatsResp{Requests: 1}, nil
}

func newTestHandler(engine port.AdEngine) http.Handler {
	return NewHandler(engine, nil, slog.New(slog.DiscardHandler)).Router()
}

func TestAdRequestValidation(t *testing.T) {
	h := newTestHandler(&stubEngine{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ad/request", strings.NewReader("{nope")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid JSON: status %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ad/request", strings.NewReader(`{"category":"tech"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing partner_id: status %d, want 400", rec.Code)
	}
}

func TestAdRequestFillResponse(t *testing.T) {
	engine := &stubEngine{decision: &port.AdDecision{
		Filled:         true,
		AssignmentCode: "code-1",
		TrackingURL:    "/api/v1/ad/click/code-1",
		Ad:             &port.AdPayload{ID: 5, Title: "t", DestinationURL: "https://example.com"},
		Explanation:    "because",
		Breakdown:      &domain.ScoreBreakdown{Total: 1.5},
	}}
	h := newTestHandler(engine)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ad/request", strings.NewReader(`{"partner_id":1}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body["filled"] != true || body["assignment_code"] != "code-1" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["score_breakdown"]; !ok {
		t.Fatal("fill response must include the score breakdown")
	}
}

func TestAdRequestNoFillResponse(t *testing.T) {
	engine := &stubEngine{decision: &port.AdDecision{Filled: false, Reason: domain.NoFillFreqCap}}
	h := newTestHandler(engine)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ad/request", strings.NewReader(`{"partner_id":1}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("no-fill must stay 200, got %d", rec.Code)
	}
	var body noFillResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body.Filled || body.Reason != domain.NoFillFreqCap {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestClickRedirects(t *testing.T) {
	engine := &stubEngine{click: &port.ClickResult{
		DestinationURL: "https://example.com/landing",
		Status:         domain.StatusAccepted,
	}}
	h := newTestHandler(engine)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ad/click/code-1", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://example.com/landing" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestClickRejectedStillRedirects(t *testing.T) {
	// Rejection only affects billing; the visitor still lands on the ad.
	engine := &stubEngine{click: &port.ClickResult{
		DestinationURL: "https://example.com/landing",
		Status:         domain.StatusRejected,
		RejectReason:   domain.RejectDuplicateClick,
	}}
	h := newTestHandler(engine)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ad/click/code-1", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", rec.Code)
	}
}

func TestClickUnknownCode(t *testing.T) {
	engine := &stubEngine{clickErr: port.ErrAssignmentNotFound}
	h := newTestHandler(engine)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ad/click/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestImpressionStatuses(t *testing.T) {
	h := newTestHandler(&stubEngine{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/track/impression/code-1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", rec.Code)
	}

	h = newTestHandler(&stubEngine{impErr: port.ErrAssignmentNotFound})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/track/impression/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestStatsOverviewValidation(t *testing.T) {
	h := newTestHandler(&stubEngine{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=yesterday", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid from: status %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("default period: status %d, want 200", rec.Code)
	}
}

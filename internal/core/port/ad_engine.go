package port

import (
	"context"

	"admarket/internal/core/domain"
)

// AdEngine is the primary inbound port: the ad decision engine as seen by the
// HTTP layer. No-fill and click rejection are structured outcomes, not
// errors; errors signal system faults only.
type AdEngine interface {
	// RequestAd runs the full decision flow: eligibility, frequency cap,
	// scoring, assignment issue. The returned decision is either a fill with
	// tracking code, ad payload and score breakdown, or a no-fill carrying
	// the reason.
	RequestAd(ctx context.Context, req domain.AdRequest) (*AdDecision, error)

	// TrackClick adjudicates a click against a tracking code and settles the
	// ledger on acceptance. ErrAssignmentNotFound is returned for unknown
	// codes; any resolved code yields a result with the destination URL
	// regardless of the adjudication outcome.
	TrackClick(ctx context.Context, click ClickRequest) (*ClickResult, error)

	// TrackImpression records an impression for a tracking code, idempotent
	// per code within the impression window. No billing side effect.
	TrackImpression(ctx context.Context, imp ImpressionRequest) error

	// Stats aggregates delivery and money flows for a period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// AdPayload is the creative content returned to the partner on a fill.
type AdPayload struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	ImageURL       string `json:"image_url"`
	DestinationURL string `json:"destination_url"`
}

// AdDecision is the outcome of one ad request.
type AdDecision struct {
	Filled         bool
	Reason         domain.NoFillReason
	AssignmentCode string
	TrackingURL    string
	Ad             *AdPayload
	Explanation    string
	Breakdown      *domain.ScoreBreakdown
}

// ClickRequest carries the signals the adjudicator needs from the transport
// layer.
type ClickRequest struct {
	Code      string
	IP        string
	UserAgent string
}

// ClickResult reports the adjudication outcome together with the redirect
// target. Rejection is silent to the browser; it only affects billing and
// metrics.
type ClickResult struct {
	DestinationURL string
	Status         domain.EventStatus
	RejectReason   domain.RejectReason
}

// ImpressionRequest identifies the impression being recorded.
type ImpressionRequest struct {
	Code string
	IP   string
}

package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"admarket/internal/core/domain"
)

var (
	// ErrInsufficientBudget is returned by SettleClick when the campaign can
	// no longer afford one click at its max CPC.
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrAssignmentConsumed is returned by SettleClick when the tracking code
	// was already consumed by a concurrent or earlier accepted click.
	ErrAssignmentConsumed = errors.New("assignment already consumed")
	// ErrAssignmentNotFound is returned when a tracking code is unknown.
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// Candidate is an eligible (ad, campaign) pair before scoring.
type Candidate struct {
	Ad       domain.Ad
	Campaign domain.Campaign
}

// CandidateStats are the per-candidate statistics the scorer consumes. The
// CTR counts are already resolved through the partner+ad, partner+campaign,
// campaign-global fallback; CTRLevel names the tier that supplied them.
type CandidateStats struct {
	CTRClicks      int64
	CTRImpressions int64
	CTRLevel       string

	PriorServes int64

	CampaignRequests int64
	CampaignClicks   int64

	PartnerCampaignEarnings decimal.Decimal
}

// PartnerClickCounts are accepted/rejected click decision counts over the
// recent and long lookback windows.
type PartnerClickCounts struct {
	RecentAccepted int64
	RecentRejected int64
	LongAccepted   int64
	LongRejected   int64
}

// AssignmentView joins an assignment with the ad and campaign it refers to,
// as the click and impression paths need all three.
type AssignmentView struct {
	Assignment domain.Assignment
	Ad         domain.Ad
	Campaign   domain.Campaign
}

// StatsReq selects the aggregation period and an optional campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp aggregates delivery and money flows for the period.
type StatsResp struct {
	Requests       int64           `json:"requests"`
	Filled         int64           `json:"filled"`
	Impressions    int64           `json:"impressions"`
	ClicksAccepted int64           `json:"clicks_accepted"`
	ClicksRejected int64           `json:"clicks_rejected"`
	Spend          decimal.Decimal `json:"spend"`
	Earnings       decimal.Decimal `json:"earnings"`
	Profit         decimal.Decimal `json:"profit"`
}

// AdRepository is the outbound persistence port of the decision engine.
// Implementations must be safe for concurrent use; SettleClick must make
// overspend structurally impossible.
type AdRepository interface {
	// EligibleCandidates returns active, in-flight, budget-eligible
	// (ad, campaign) pairs admitting the request's targeting hints, in
	// deterministic (campaign id, ad id) order.
	EligibleCandidates(ctx context.Context, req domain.AdRequest) ([]Candidate, error)

	// CandidateStats resolves the scoring statistics for one candidate.
	CandidateStats(ctx context.Context, partnerID, adID, campaignID int64, ctrSince, serveSince, deliverySince time.Time) (CandidateStats, error)

	// PartnerClickCounts returns the partner's click decision counts for the
	// two quality lookbacks.
	PartnerClickCounts(ctx context.Context, partnerID int64, recentSince, longSince time.Time) (PartnerClickCounts, error)

	// CreateAssignment persists a freshly issued assignment.
	CreateAssignment(ctx context.Context, a *domain.Assignment) error

	// ResolveAssignment returns the assignment view for a tracking code or
	// ErrAssignmentNotFound.
	ResolveAssignment(ctx context.Context, code string) (*AssignmentView, error)

	// SettleClick atomically consumes the assignment, debits the campaign,
	// credits the partner and records the accepted click event. It returns
	// ErrAssignmentConsumed when the code was already consumed and
	// ErrInsufficientBudget when the remaining budget is below max CPC; in
	// both cases nothing is committed.
	SettleClick(ctx context.Context, click *domain.ClickEvent) error

	// RecordClickReject records a rejected click event. It never touches
	// budgets or earnings.
	RecordClickReject(ctx context.Context, click *domain.ClickEvent) error

	// RecordImpression records an accepted impression event.
	RecordImpression(ctx context.Context, imp *domain.ImpressionEvent) error

	// RecordRequestEvent records an ad request outcome for fill-rate
	// accounting.
	RecordRequestEvent(ctx context.Context, evt *domain.RequestEvent) error

	// MarketHealth aggregates the marketplace health snapshot over the given
	// window. streakSample bounds the recent requests inspected for the
	// unfilled streak.
	MarketHealth(ctx context.Context, window time.Duration, streakSample int) (domain.MarketHealth, error)

	// Stats aggregates delivery and money flows for reporting.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

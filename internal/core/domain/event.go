package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the adjudication outcome recorded on click and impression
// events.
type EventStatus string

const (
	StatusAccepted EventStatus = "ACCEPTED"
	StatusRejected EventStatus = "REJECTED"
)

// RejectReason tags why a click was rejected. Reasons are checked in a fixed
// priority order; the first match wins.
type RejectReason string

const (
	RejectInvalidAssignment RejectReason = "INVALID_ASSIGNMENT"
	RejectDuplicateClick    RejectReason = "DUPLICATE_CLICK"
	RejectRateLimit         RejectReason = "RATE_LIMIT"
	RejectBotSuspected      RejectReason = "BOT_SUSPECTED"
	RejectBudgetExhausted   RejectReason = "BUDGET_EXHAUSTED"
)

// NoFillReason tags why an ad request returned no ad.
type NoFillReason string

const (
	NoFillNoEligibleAds NoFillReason = "NO_ELIGIBLE_ADS"
	NoFillFreqCap       NoFillReason = "FREQ_CAP"
)

// ClickEvent is the adjudicated record of a click against a tracking code.
// The deltas are zero for rejected clicks; for accepted clicks SpendDelta is
// the campaign's max CPC, EarningsDelta the partner payout and ProfitDelta
// the platform margin.
type ClickEvent struct {
	ID             int64
	AssignmentCode string
	PartnerID      *int64
	CampaignID     *int64
	AdID           *int64
	TS             time.Time
	IPHash         string
	UAHash         *string
	Status         EventStatus
	RejectReason   *RejectReason
	SpendDelta     decimal.Decimal
	EarningsDelta  decimal.Decimal
	ProfitDelta    decimal.Decimal
}

// ImpressionEvent records an ad being shown. It never touches budgets.
type ImpressionEvent struct {
	ID             int64
	AssignmentCode string
	PartnerID      int64
	CampaignID     int64
	AdID           int64
	TS             time.Time
	IPHash         string
	Status         EventStatus
}

// RequestEvent records every ad request and its outcome, filled or not. It
// feeds the fill-rate and unfilled-streak signals of the market health
// snapshot.
type RequestEvent struct {
	ID             int64
	CreatedAt      time.Time
	PartnerID      int64
	Category       string
	Geo            string
	Device         string
	Placement      string
	Filled         bool
	Reason         *NoFillReason
	AdID           *int64
	CampaignID     *int64
	AssignmentCode *string
	Explanation    *string
	Breakdown      *ScoreBreakdown
}

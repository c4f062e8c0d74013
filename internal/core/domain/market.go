package domain

import "time"

// MarketHealth is a process-wide snapshot of marketplace condition, recomputed
// on a fixed cadence and read-only to everything else between recomputations.
type MarketHealth struct {
	FillRate              float64
	RejectRate            float64
	RejectVolatility      float64
	EligibleAdsPerRequest float64
	UnfilledStreak        int
}

// MultiplierSnapshot is the versioned, immutable set of adaptive scoring
// multipliers derived from a MarketHealth. Every fill decision records the
// snapshot values it used; the snapshot only affects ranking, never billing.
type MultiplierSnapshot struct {
	Version        int64
	ComputedAt     time.Time
	AlphaProfit    float64
	BetaCTR        float64
	GammaTargeting float64
	DeltaQuality   float64
	MarketNote     string
}

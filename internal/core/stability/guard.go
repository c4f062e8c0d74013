// Package stability derives the adaptive scoring multipliers from marketplace
// health. The guard only rescales ranking terms; it never touches billing.
package stability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"admarket/internal/core/domain"
)

// Config holds the thresholds and boost sizes of the multiplier derivation,
// plus the hard [Min, Max] bounds every multiplier is clamped to so no single
// term can be zeroed out or inverted.
type Config struct {
	FillLow             float64
	FillHigh            float64
	EligibleSupplyLow   float64
	VolatilityThreshold float64
	UnfilledStreak      int
	RejectHealthy       float64

	ProfitBoostLowFill     float64
	ProfitBoostLowSupply   float64
	CTRBoostHealthy        float64
	TargetingBoostLowFill  float64
	TargetingBoostUnfilled float64
	QualityBoostLowFill    float64
	QualityBoostVolatility float64

	Min float64
	Max float64
}

func (c Config) clamp(v float64) float64 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// Derive computes the four multipliers and the market note for a health
// snapshot.
func Derive(h domain.MarketHealth, cfg Config) domain.MultiplierSnapshot {
	alpha, beta, gamma, delta := 1.0, 1.0, 1.0, 1.0
	var notes []string

	if h.FillRate < cfg.FillLow {
		alpha += cfg.ProfitBoostLowFill
		gamma += cfg.TargetingBoostLowFill
		// A supply shortage over-punishes partners; damp the penalty.
		delta -= cfg.QualityBoostLowFill
		notes = append(notes, "Tight supply: emphasizing profit and targeting, softening quality penalties.")
	}
	if h.FillRate > cfg.FillHigh && h.RejectRate < cfg.RejectHealthy {
		beta += cfg.CTRBoostHealthy
		notes = append(notes, "Healthy demand: modestly emphasizing CTR.")
	}
	if h.EligibleAdsPerRequest < cfg.EligibleSupplyLow {
		alpha += cfg.ProfitBoostLowSupply
		notes = append(notes, "Low eligible supply: prioritizing profit.")
	}
	if h.UnfilledStreak >= cfg.UnfilledStreak {
		gamma += cfg.TargetingBoostUnfilled
		notes = append(notes, "Recent unfilled streak: boosting targeting match.")
	}
	if h.RejectVolatility > cfg.VolatilityThreshold {
		delta += cfg.QualityBoostVolatility
		notes = append(notes, "Reject volatility: tightening quality penalty.")
	}

	note := "Market stable."
	if len(notes) > 0 {
		note = strings.Join(notes, " ")
	}
	return domain.MultiplierSnapshot{
		AlphaProfit:    cfg.clamp(alpha),
		BetaCTR:        cfg.clamp(beta),
		GammaTargeting: cfg.clamp(gamma),
		DeltaQuality:   cfg.clamp(delta),
		MarketNote:     note,
	}
}

// HealthSource supplies a fresh market health snapshot, typically from the
// event log.
type HealthSource func(ctx context.Context) (domain.MarketHealth, error)

// Guard publishes the latest multiplier snapshot. Readers always see the last
// fully computed snapshot; recomputation is the only writer.
type Guard struct {
	cfg     Config
	version atomic.Int64
	current atomic.Pointer[domain.MultiplierSnapshot]
}

// NewGuard seeds the guard with neutral multipliers so scoring works before
// the first refresh completes.
func NewGuard(cfg Config) *Guard {
	g := &Guard{cfg: cfg}
	g.current.Store(&domain.MultiplierSnapshot{
		Version:        0,
		AlphaProfit:    1.0,
		BetaCTR:        1.0,
		GammaTargeting: 1.0,
		DeltaQuality:   1.0,
		MarketNote:     "Market stable.",
	})
	return g
}

// Current returns the last published snapshot.
func (g *Guard) Current() domain.MultiplierSnapshot {
	return *g.current.Load()
}

// Refresh derives and publishes a new versioned snapshot from h.
func (g *Guard) Refresh(h domain.MarketHealth, now time.Time) domain.MultiplierSnapshot {
	snap := Derive(h, g.cfg)
	snap.Version = g.version.Add(1)
	snap.ComputedAt = now
	g.current.Store(&snap)
	return snap
}

// Run recomputes multipliers on the given cadence until ctx is cancelled.
// A failed health read keeps the previous snapshot in place.
func (g *Guard) Run(ctx context.Context, every time.Duration, source HealthSource, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h, err := source(ctx)
			if err != nil {
				logger.Warn("market health refresh failed", slog.Any("error", err))
				continue
			}
			snap := g.Refresh(h, time.Now().UTC())
			logger.Debug("market multipliers refreshed",
				slog.Int64("version", snap.Version),
				slog.String("note", snap.MarketNote),
				slog.String("alpha", fmt.Sprintf("%.2f", snap.AlphaProfit)),
				slog.String("delta", fmt.Sprintf("%.2f", snap.DeltaQuality)))
		}
	}
}

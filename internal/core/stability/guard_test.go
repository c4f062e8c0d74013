package stability

import (
	"strings"
	"testing"
	"time"

	"admarket/internal/core/domain"
)

func testConfig() Config {
	return Config{
		FillLow:             0.5,
		FillHigh:            0.8,
		EligibleSupplyLow:   0.5,
		VolatilityThreshold: 0.1,
		UnfilledStreak:      3,
		RejectHealthy:       0.05,

		ProfitBoostLowFill:     0.2,
		ProfitBoostLowSupply:   0.1,
		CTRBoostHealthy:        0.1,
		TargetingBoostLowFill:  0.1,
		TargetingBoostUnfilled: 0.1,
		QualityBoostLowFill:    0.2,
		QualityBoostVolatility: 0.1,

		Min: 0.5,
		Max: 2.0,
	}
}

func healthyMarket() domain.MarketHealth {
	return domain.MarketHealth{
		FillRate:              0.7,
		RejectRate:            0.03,
		RejectVolatility:      0.01,
		EligibleAdsPerRequest: 2.0,
	}
}

func TestDeriveStableMarket(t *testing.T) {
	snap := Derive(healthyMarket(), testConfig())
	if snap.AlphaProfit != 1 || snap.BetaCTR != 1 || snap.GammaTargeting != 1 || snap.DeltaQuality != 1 {
		t.Fatalf("stable market should keep neutral multipliers: %+v", snap)
	}
	if snap.MarketNote != "Market stable." {
		t.Fatalf("note = %q, want stable note", snap.MarketNote)
	}
}

func TestDeriveLowFillSoftensQuality(t *testing.T) {
	h := healthyMarket()
	h.FillRate = 0.3
	snap := Derive(h, testConfig())

	if snap.AlphaProfit != 1.2 {
		t.Fatalf("alpha = %v, want 1.2", snap.AlphaProfit)
	}
	if snap.GammaTargeting != 1.1 {
		t.Fatalf("gamma = %v, want 1.1", snap.GammaTargeting)
	}
	// Supply shortages damp the quality penalty rather than raising it.
	if snap.DeltaQuality != 0.8 {
		t.Fatalf("delta = %v, want 0.8", snap.DeltaQuality)
	}
	if !strings.Contains(snap.MarketNote, "Tight supply") {
		t.Fatalf("note = %q, want tight-supply note", snap.MarketNote)
	}
}

func TestDeriveHealthyDemandBoostsCTR(t *testing.T) {
	h := healthyMarket()
	h.FillRate = 0.9
	snap := Derive(h, testConfig())
	if snap.BetaCTR != 1.1 {
		t.Fatalf("beta = %v, want 1.1", snap.BetaCTR)
	}
}

func TestDeriveVolatilityTightensQuality(t *testing.T) {
	h := healthyMarket()
	h.RejectVolatility = 0.25
	snap := Derive(h, testConfig())
	if snap.DeltaQuality != 1.1 {
		t.Fatalf("delta = %v, want 1.1", snap.DeltaQuality)
	}
	if !strings.Contains(snap.MarketNote, "volatility") {
		t.Fatalf("note = %q, want volatility note", snap.MarketNote)
	}
}

func TestDeriveUnfilledStreakBoostsTargeting(t *testing.T) {
	h := healthyMarket()
	h.UnfilledStreak = 4
	snap := Derive(h, testConfig())
	if snap.GammaTargeting != 1.1 {
		t.Fatalf("gamma = %v, want 1.1", snap.GammaTargeting)
	}
}

func TestDeriveClampsToBounds(t *testing.T) {
	cfg := testConfig()
	cfg.QualityBoostLowFill = 5 // would push delta to -4 without the clamp
	h := healthyMarket()
	h.FillRate = 0.1
	h.EligibleAdsPerRequest = 0.1
	snap := Derive(h, cfg)

	if snap.DeltaQuality != cfg.Min {
		t.Fatalf("delta = %v, want clamped to %v", snap.DeltaQuality, cfg.Min)
	}
	for name, v := range map[string]float64{
		"alpha": snap.AlphaProfit,
		"beta":  snap.BetaCTR,
		"gamma": snap.GammaTargeting,
		"delta": snap.DeltaQuality,
	} {
		if v < cfg.Min || v > cfg.Max {
			t.Fatalf("%s = %v outside [%v, %v]", name, v, cfg.Min, cfg.Max)
		}
	}
}

func TestGuardSeedsNeutralSnapshot(t *testing.T) {
	g := NewGuard(testConfig())
	snap := g.Current()
	if snap.Version != 0 || snap.AlphaProfit != 1 || snap.DeltaQuality != 1 {
		t.Fatalf("fresh guard should publish neutral multipliers: %+v", snap)
	}
}

func TestGuardRefreshVersionsSnapshots(t *testing.T) {
	g := NewGuard(testConfig())
	now := time.Now().UTC()

	first := g.Refresh(healthyMarket(), now)
	if first.Version != 1 {
		t.Fatalf("first refresh version = %d, want 1", first.Version)
	}

	h := healthyMarket()
	h.FillRate = 0.3
	second := g.Refresh(h, now.Add(time.Minute))
	if second.Version != 2 {
		t.Fatalf("second refresh version = %d, want 2", second.Version)
	}
	if got := g.Current(); got != second {
		t.Fatalf("Current() = %+v, want latest snapshot %+v", got, second)
	}
}

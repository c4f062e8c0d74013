package signals

import (
	"math"
	"testing"
)

func TestSmoothedCTRNoHistory(t *testing.T) {
	// With no impressions the estimate must sit at the neutral prior, not 0.
	if got := SmoothedCTR(0, 0, 1); got != 0.5 {
		t.Fatalf("SmoothedCTR(0,0,1) = %v, want 0.5", got)
	}
}

func TestSmoothedCTRConvergesToRaw(t *testing.T) {
	// 50 clicks over 1000 impressions: smoothing barely moves the estimate.
	got := SmoothedCTR(50, 1000, 1)
	raw := 50.0 / 1000.0
	if math.Abs(got-raw) > 0.002 {
		t.Fatalf("SmoothedCTR(50,1000,1) = %v, too far from raw %v", got, raw)
	}
}

func TestSmoothedCTRPullsExtremes(t *testing.T) {
	// A single clicked impression must not read as a 100% CTR.
	if got := SmoothedCTR(1, 1, 1); got >= 1 || got <= 0.5 {
		t.Fatalf("SmoothedCTR(1,1,1) = %v, want in (0.5, 1)", got)
	}
	// A single unclicked impression must not read as 0%.
	if got := SmoothedCTR(0, 1, 1); got <= 0 || got >= 0.5 {
		t.Fatalf("SmoothedCTR(0,1,1) = %v, want in (0, 0.5)", got)
	}
}

func TestRejectRate(t *testing.T) {
	if got := RejectRate(0, 0); got != 0 {
		t.Fatalf("RejectRate(0,0) = %v, want 0", got)
	}
	if got := RejectRate(6, 4); got != 0.4 {
		t.Fatalf("RejectRate(6,4) = %v, want 0.4", got)
	}
	if got := RejectRate(0, 5); got != 1 {
		t.Fatalf("RejectRate(0,5) = %v, want 1", got)
	}
}

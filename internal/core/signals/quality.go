package signals

import (
	"sync"
	"time"

	"admarket/internal/core/domain"
)

// QualityConfig holds the thresholds of the partner quality state machine.
// AtRiskRate and RiskyRate are the upward thresholds; RecoverRate is the
// lower, hysteretic threshold a partner must stay under for RecoveryDwell
// before any downward transition happens.
type QualityConfig struct {
	MinSamples    int64
	StableMaxRate float64
	AtRiskRate    float64
	RiskyRate     float64
	RecoverRate   float64
	RecoveryDwell time.Duration
}

type qualityState struct {
	state     domain.QualityState
	since     time.Time
	goodSince time.Time
}

// QualityTracker runs the per-partner quality state machine. Evaluations move
// a partner at most one step at a time, so a single click can never flip
// STABLE to RISKY or back. All methods are safe for concurrent use.
type QualityTracker struct {
	cfg QualityConfig

	mu       sync.Mutex
	partners map[int64]*qualityState
}

// NewQualityTracker returns a tracker where every unseen partner starts NEW.
func NewQualityTracker(cfg QualityConfig) *QualityTracker {
	return &QualityTracker{cfg: cfg, partners: make(map[int64]*qualityState)}
}

// State returns the current state of a partner without evaluating.
func (t *QualityTracker) State(partnerID int64) domain.QualityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ps, ok := t.partners[partnerID]; ok {
		return ps.state
	}
	return domain.QualityNew
}

// Evaluate feeds the partner's current recent reject rate and sample count
// into the state machine and returns the (possibly advanced) state.
func (t *QualityTracker) Evaluate(partnerID int64, recentRate float64, samples int64, now time.Time) domain.QualityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	ps, ok := t.partners[partnerID]
	if !ok {
		ps = &qualityState{state: domain.QualityNew, since: now}
		t.partners[partnerID] = ps
	}

	if recentRate <= t.cfg.RecoverRate {
		if ps.goodSince.IsZero() {
			ps.goodSince = now
		}
	} else {
		ps.goodSince = time.Time{}
	}
	sustainedGood := !ps.goodSince.IsZero() && now.Sub(ps.goodSince) >= t.cfg.RecoveryDwell

	switch ps.state {
	case domain.QualityNew:
		if samples >= t.cfg.MinSamples && recentRate <= t.cfg.StableMaxRate {
			t.move(ps, domain.QualityStable, now)
		}
	case domain.QualityStable:
		if recentRate >= t.cfg.AtRiskRate {
			t.move(ps, domain.QualityAtRisk, now)
		}
	case domain.QualityAtRisk:
		if recentRate >= t.cfg.RiskyRate {
			t.move(ps, domain.QualityRisky, now)
		} else if sustainedGood {
			t.move(ps, domain.QualityRecovering, now)
		}
	case domain.QualityRisky:
		if sustainedGood {
			t.move(ps, domain.QualityRecovering, now)
		}
	case domain.QualityRecovering:
		if recentRate >= t.cfg.AtRiskRate {
			t.move(ps, domain.QualityAtRisk, now)
		} else if sustainedGood && now.Sub(ps.since) >= t.cfg.RecoveryDwell {
			t.move(ps, domain.QualityStable, now)
		}
	}
	return ps.state
}

func (t *QualityTracker) move(ps *qualityState, to domain.QualityState, now time.Time) {
	ps.state = to
	ps.since = now
}

// Note returns the human-readable explanation attached to a quality state.
func Note(state domain.QualityState) string {
	switch state {
	case domain.QualityNew:
		return "Limited history; penalties softened until more data arrives."
	case domain.QualityAtRisk:
		return "Reject rate drifting up; quality penalty raised."
	case domain.QualityRisky:
		return "Recent reject rate elevated; quality penalty intensified."
	case domain.QualityRecovering:
		return "Rejects are improving; penalty easing as quality recovers."
	default:
		return "Consistent quality; standard penalty applies."
	}
}

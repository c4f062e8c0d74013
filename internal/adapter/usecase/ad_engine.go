package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"admarket/internal/config/configs"
	"admarket/internal/core/domain"
	"admarket/internal/core/frequency"
	"admarket/internal/core/port"
	"admarket/internal/core/scoring"
	"admarket/internal/core/signals"
	"admarket/internal/core/stability"
	"admarket/internal/metrics"
)

// AdEngine implements port.AdEngine: it orchestrates eligibility, frequency
// capping, scoring, assignment issue and click/impression adjudication on top
// of the repository, the market stability guard and the in-memory sliding
// windows.
type AdEngine struct {
	repo    port.AdRepository
	cfg     configs.Engine
	logger  *slog.Logger
	guard   *stability.Guard
	quality *signals.QualityTracker
	stats   *metrics.Metrics

	freq   *frequency.Window
	rate   *frequency.Window
	dedup  *frequency.Window
	impDup *frequency.Window

	// now is swapped in tests for deterministic windows.
	now func() time.Time
}

// NewAdEngine wires the engine from its collaborators. The metrics handle may
// be nil.
func NewAdEngine(repo port.AdRepository, cfg configs.Engine, guard *stability.Guard, stats *metrics.Metrics, logger *slog.Logger) *AdEngine {
	return &AdEngine{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		guard:  guard,
		quality: signals.NewQualityTracker(signals.QualityConfig{
			MinSamples:    cfg.Quality.MinSamples,
			StableMaxRate: cfg.Quality.StableMaxRate,
			AtRiskRate:    cfg.Quality.AtRiskRate,
			RiskyRate:     cfg.Quality.RiskyRate,
			RecoverRate:   cfg.Quality.RecoverRate,
			RecoveryDwell: cfg.Quality.RecoveryDwell,
		}),
		stats:  stats,
		freq:   frequency.New(cfg.FreqCapMax, cfg.FreqCapWindow),
		rate:   frequency.New(cfg.RateLimitPerMinute, time.Minute),
		dedup:  frequency.New(1, cfg.DedupWindow),
		impDup: frequency.New(1, cfg.ImpressionWindow),
		now:    time.Now,
	}
}

func (e *AdEngine) weights() scoring.Weights {
	return scoring.Weights{
		CTRWeight:           e.cfg.CTRWeight,
		TargetingBonusValue: e.cfg.TargetingBonus,
		RejectPenaltyWeight: e.cfg.RejectPenaltyWeight,
		SmoothingK:          e.cfg.SmoothingK,
	}
}

func freqKey(partnerID, adID int64) string {
	return fmt.Sprintf("%d|%d", partnerID, adID)
}

// RequestAd selects the single best-matching, budget-eligible ad for the
// request, issues a tracking code and returns the full explanation. No-fill
// outcomes distinguish an empty eligible set from a frequency-capped one so
// the caller can tell "broaden targeting" from "try later".
func (e *AdEngine) RequestAd(ctx context.Context, req domain.AdRequest) (*port.AdDecision, error) {
	now := e.now().UTC()
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	candidates, err := e.repo.EligibleCandidates(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return e.noFill(ctx, req, domain.NoFillNoEligibleAds, now), nil
	}

	kept := make([]port.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if e.freq.AtCap(freqKey(req.PartnerID, c.Ad.ID), now) {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return e.noFill(ctx, req, domain.NoFillFreqCap, now), nil
	}

	counts, err := e.repo.PartnerClickCounts(ctx, req.PartnerID,
		now.Add(-e.cfg.Quality.RecentLookback), now.Add(-e.cfg.Quality.LongLookback))
	if err != nil {
		return nil, err
	}
	recentRate := signals.RejectRate(counts.RecentAccepted, counts.RecentRejected)
	rejectRate := signals.RejectRate(counts.LongAccepted, counts.LongRejected)
	state := e.quality.Evaluate(req.PartnerID, recentRate, counts.LongAccepted+counts.LongRejected, now)

	in := scoring.Inputs{
		Request:          req,
		RejectRate:       rejectRate,
		QualityState:     state,
		QualityDelta:     e.cfg.Quality.DeltaFor(state),
		Snapshot:         e.guard.Current(),
		DeliveryBoost:    e.cfg.Delivery.Boost,
		ExplorationBonus: e.cfg.Exploration.Bonus,
		ExplorationRate:  e.cfg.Exploration.Rate,
		ExplorationMax:   e.cfg.Exploration.MaxServes,
	}

	scorable := make([]scoring.Candidate, 0, len(kept))
	for _, c := range kept {
		cs, err := e.repo.CandidateStats(ctx, req.PartnerID, c.Ad.ID, c.Campaign.ID,
			now.Add(-e.cfg.CTRLookback),
			now.Add(-e.cfg.Exploration.Lookback),
			now.Add(-e.cfg.Delivery.Lookback))
		if err != nil {
			return nil, err
		}
		scorable = append(scorable, scoring.Candidate{
			Ad:                      c.Ad,
			Campaign:                c.Campaign,
			CTRClicks:               cs.CTRClicks,
			CTRImpressions:          cs.CTRImpressions,
			PriorServes:             cs.PriorServes,
			UnderDelivering:         e.underDelivering(c.Campaign, cs),
			PartnerCampaignEarnings: cs.PartnerCampaignEarnings,
		})
	}

	winner := scoring.Rank(scorable, in, e.weights())[0]
	code := uuid.NewString()
	assignment := &domain.Assignment{
		Code:       code,
		PartnerID:  req.PartnerID,
		CampaignID: winner.Candidate.Campaign.ID,
		AdID:       winner.Candidate.Ad.ID,
		Category:   optional(req.Category),
		Geo:        optional(req.Geo),
		Device:     optional(req.Device),
		Placement:  optional(req.Placement),
		Breakdown:  winner.Breakdown,
		IssuedAt:   now,
	}
	if err := e.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	e.freq.Record(freqKey(req.PartnerID, winner.Candidate.Ad.ID), now)

	explanation := scoring.Explain(winner.Breakdown)
	e.recordRequestEvent(ctx, &domain.RequestEvent{
		CreatedAt:      now,
		PartnerID:      req.PartnerID,
		Category:       req.Category,
		Geo:            req.Geo,
		Device:         req.Device,
		Placement:      req.Placement,
		Filled:         true,
		AdID:           &winner.Candidate.Ad.ID,
		CampaignID:     &winner.Candidate.Campaign.ID,
		AssignmentCode: &code,
		Explanation:    &explanation,
		Breakdown:      &winner.Breakdown,
	})
	e.stats.RecordRequest("filled")

	breakdown := winner.Breakdown
	return &port.AdDecision{
		Filled:         true,
		AssignmentCode: code,
		TrackingURL:    "/api/v1/ad/click/" + code,
		Ad: &port.AdPayload{
			ID:             winner.Candidate.Ad.ID,
			Title:          winner.Candidate.Ad.Title,
			Body:           winner.Candidate.Ad.Body,
			ImageURL:       winner.Candidate.Ad.ImageURL,
			DestinationURL: winner.Candidate.Ad.DestinationURL,
		},
		Explanation: explanation,
		Breakdown:   &breakdown,
	}, nil
}

// underDelivering marks a campaign behind its pacing target: enough recent
// requests, a click rate under the floor and most of its budget still unspent.
func (e *AdEngine) underDelivering(c domain.Campaign, cs port.CandidateStats) bool {
	d := e.cfg.Delivery
	if cs.CampaignRequests < d.MinRequests {
		return false
	}
	clickRate := float64(cs.CampaignClicks) / float64(cs.CampaignRequests)
	if clickRate >= d.LowClickRate {
		return false
	}
	if !c.BudgetTotal.IsPositive() {
		return false
	}
	remainingRatio, _ := c.BudgetRemaining().Div(c.BudgetTotal).Float64()
	return remainingRatio >= d.MinRemainingRatio
}

func (e *AdEngine) noFill(ctx context.Context, req domain.AdRequest, reason domain.NoFillReason, now time.Time) *port.AdDecision {
	r := reason
	e.recordRequestEvent(ctx, &domain.RequestEvent{
		CreatedAt: now,
		PartnerID: req.PartnerID,
		Category:  req.Category,
		Geo:       req.Geo,
		Device:    req.Device,
		Placement: req.Placement,
		Filled:    false,
		Reason:    &r,
	})
	e.stats.RecordRequest(string(reason))
	return &port.AdDecision{Filled: false, Reason: reason}
}

// recordRequestEvent is best-effort: losing one fill-rate sample must not
// fail the request itself.
func (e *AdEngine) recordRequestEvent(ctx context.Context, evt *domain.RequestEvent) {
	if err := e.repo.RecordRequestEvent(ctx, evt); err != nil {
		e.logger.Warn("record request event failed", slog.Any("error", err))
	}
}

// Stats returns aggregated delivery and money flows for a period.
func (e *AdEngine) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return e.repo.Stats(ctx, req)
}

// MarketHealth exposes the repository's health aggregation with the
// configured window, for the stability guard's refresh loop.
func (e *AdEngine) MarketHealth(ctx context.Context) (domain.MarketHealth, error) {
	return e.repo.MarketHealth(ctx, e.cfg.Market.Window, e.cfg.Market.StreakSample)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

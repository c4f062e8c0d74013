// Package scoring assembles the explainable ranking score and picks the
// winning candidate. Given identical inputs the winner and every breakdown
// term are identical; exploration jitter is keyed by ad and request ids
// rather than drawn from a shared random source.
package scoring

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/shopspring/decimal"

	"admarket/internal/core/domain"
	"admarket/internal/core/signals"
)

// Weights are the static scoring coefficients from configuration. The
// adaptive multipliers arrive separately in the snapshot.
type Weights struct {
	CTRWeight           float64
	TargetingBonusValue float64
	RejectPenaltyWeight float64
	SmoothingK          float64
}

// Candidate is an eligible, non-capped (ad, campaign) pair together with the
// per-candidate statistics the score needs.
type Candidate struct {
	Ad       domain.Ad
	Campaign domain.Campaign

	// CTR counts after the partner>campaign>global fallback.
	CTRClicks      int64
	CTRImpressions int64

	// PriorServes counts recent assignments of this ad to this partner,
	// driving exploration decay.
	PriorServes int64

	// UnderDelivering marks a campaign behind its pacing target.
	UnderDelivering bool

	// PartnerCampaignEarnings is the cumulative payout this partner has
	// already collected from this campaign, used only for tie-breaking.
	PartnerCampaignEarnings decimal.Decimal
}

// Inputs are the request-scoped signals shared by all candidates of one
// decision.
type Inputs struct {
	Request          domain.AdRequest
	RejectRate       float64
	QualityState     domain.QualityState
	QualityDelta     float64
	Snapshot         domain.MultiplierSnapshot
	DeliveryBoost    float64
	ExplorationBonus float64
	ExplorationRate  float64
	ExplorationMax   int64
}

// Scored pairs a candidate with its computed breakdown.
type Scored struct {
	Candidate Candidate
	Breakdown domain.ScoreBreakdown
}

// Score computes the full breakdown for one candidate.
func Score(c Candidate, in Inputs, w Weights) domain.ScoreBreakdown {
	profit, _ := c.Campaign.MaxCPC.Sub(c.Campaign.PartnerPayout).Float64()
	ctr := signals.SmoothedCTR(c.CTRClicks, c.CTRImpressions, w.SmoothingK)
	targeting := targetingBonus(c.Campaign.Targeting, in.Request, w.TargetingBonusValue)
	rejectPenalty := in.RejectRate * w.RejectPenaltyWeight
	qualityPenalty := in.Snapshot.DeltaQuality * in.QualityDelta * rejectPenalty

	var delivery float64
	if c.UnderDelivering {
		delivery = in.DeliveryBoost
	}
	exploration := explorationBonus(c.Ad.ID, in.Request.RequestID, c.PriorServes, in)

	total := in.Snapshot.AlphaProfit*profit +
		in.Snapshot.BetaCTR*w.CTRWeight*ctr +
		in.Snapshot.GammaTargeting*targeting -
		qualityPenalty +
		delivery +
		exploration

	return domain.ScoreBreakdown{
		Profit:              round4(profit),
		AlphaProfit:         round4(in.Snapshot.AlphaProfit),
		CTR:                 round4(ctr),
		CTRWeight:           round4(w.CTRWeight),
		BetaCTR:             round4(in.Snapshot.BetaCTR),
		TargetingBonus:      round4(targeting),
		GammaTargeting:      round4(in.Snapshot.GammaTargeting),
		PartnerRejectRate:   round4(in.RejectRate),
		PartnerRejectPen:    round4(rejectPenalty),
		DeltaQuality:        round4(in.Snapshot.DeltaQuality),
		PartnerQualityPen:   round4(qualityPenalty),
		DeliveryBoost:       round4(delivery),
		ExplorationBonus:    round4(exploration),
		Total:               round4(total),
		PartnerQualityState: in.QualityState,
		PartnerQualityNote:  signals.Note(in.QualityState),
		MarketNote:          in.Snapshot.MarketNote,
	}
}

// Rank scores every candidate and orders them best-first. Ties break on
// higher smoothed CTR, then on the lowest cumulative payout this partner has
// taken from the campaign, then on ad id, so outcomes are reproducible.
func Rank(candidates []Candidate, in Inputs, w Weights) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, Scored{Candidate: c, Breakdown: Score(c, in, w)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Breakdown.Total != b.Breakdown.Total {
			return a.Breakdown.Total > b.Breakdown.Total
		}
		if a.Breakdown.CTR != b.Breakdown.CTR {
			return a.Breakdown.CTR > b.Breakdown.CTR
		}
		if cmp := a.Candidate.PartnerCampaignEarnings.Cmp(b.Candidate.PartnerCampaignEarnings); cmp != 0 {
			return cmp < 0
		}
		return a.Candidate.Ad.ID < b.Candidate.Ad.ID
	})
	return scored
}

// Explain renders the human-readable summary attached to a fill.
func Explain(b domain.ScoreBreakdown) string {
	return fmt.Sprintf(
		"Score balances profit $%.2f, CTR %.2f%%, targeting bonus %.2f, and partner reject rate %.2f%%.",
		b.Profit, b.CTR*100, b.TargetingBonus, b.PartnerRejectRate*100)
}

func targetingBonus(t domain.Targeting, req domain.AdRequest, value float64) float64 {
	var bonus float64
	for _, dim := range []struct {
		campaign  *string
		requested string
	}{
		{t.Category, req.Category},
		{t.Geo, req.Geo},
		{t.Device, req.Device},
		{t.Placement, req.Placement},
	} {
		if dim.campaign != nil && dim.requested != "" && domain.MatchesDimension(dim.campaign, dim.requested) {
			bonus += value
		}
	}
	return bonus
}

// explorationBonus decays linearly with prior serves and adds a small
// deterministic jitter in [0, rate) keyed by ad and request ids.
func explorationBonus(adID int64, requestID string, serves int64, in Inputs) float64 {
	if in.ExplorationMax <= 0 || serves >= in.ExplorationMax {
		return 0
	}
	base := in.ExplorationBonus * (1 - float64(serves)/float64(in.ExplorationMax))
	return base + jitter(adID, requestID)*in.ExplorationRate
}

func jitter(adID int64, requestID string) float64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", adID, requestID)
	return float64(h.Sum64()%10000) / 10000
}

func round4(v float64) float64 {
	return float64(int64(v*10000+copysignHalf(v))) / 10000
}

func copysignHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

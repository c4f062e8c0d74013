package domain

// ScoreBreakdown is the full, explainable decomposition of a candidate's
// ranking score. It is returned to the partner on every fill and persisted
// with the assignment, so a decision can always be traced to the exact
// multiplier snapshot that produced it.
type ScoreBreakdown struct {
	Profit              float64      `json:"profit"`
	AlphaProfit         float64      `json:"alpha_profit"`
	CTR                 float64      `json:"ctr"`
	CTRWeight           float64      `json:"ctr_weight"`
	BetaCTR             float64      `json:"beta_ctr"`
	TargetingBonus      float64      `json:"targeting_bonus"`
	GammaTargeting      float64      `json:"gamma_targeting"`
	PartnerRejectRate   float64      `json:"partner_reject_rate"`
	PartnerRejectPen    float64      `json:"partner_reject_penalty"`
	DeltaQuality        float64      `json:"delta_quality"`
	PartnerQualityPen   float64      `json:"partner_quality_penalty"`
	DeliveryBoost       float64      `json:"delivery_boost"`
	ExplorationBonus    float64      `json:"exploration_bonus"`
	Total               float64      `json:"total"`
	PartnerQualityState QualityState `json:"partner_quality_state"`
	PartnerQualityNote  string       `json:"partner_quality_note"`
	MarketNote          string       `json:"market_note"`
}

package configs

import (
	"time"

	"github.com/shopspring/decimal"

	"admarket/internal/core/domain"
	"admarket/internal/core/stability"
)

// Engine groups every tunable of the ad decision engine. Defaults are the
// documented configuration snapshot; all of them can be overridden through
// ENGINE_-prefixed environment variables.
type Engine struct {
	// PlatformFeePercent is the platform's cut of the buyer CPC, clamped to
	// [0,100] when payouts are derived.
	PlatformFeePercent decimal.Decimal `env:"PLATFORM_FEE_PERCENT" envDefault:"30"`

	// CTRLookback bounds the click/impression history used for the smoothed
	// CTR estimate. SmoothingK is the Laplace constant k in
	// (clicks+k)/(impressions+2k).
	CTRLookback time.Duration `env:"CTR_LOOKBACK" envDefault:"336h"`
	SmoothingK  float64       `env:"SMOOTHING_K" envDefault:"1.0"`

	// Scoring weights.
	CTRWeight           float64 `env:"CTR_WEIGHT" envDefault:"1.0"`
	TargetingBonus      float64 `env:"TARGETING_BONUS" envDefault:"0.5"`
	RejectPenaltyWeight float64 `env:"REJECT_PENALTY_WEIGHT" envDefault:"1.0"`

	// AssignmentTTL bounds how long an unconsumed tracking code stays valid.
	AssignmentTTL time.Duration `env:"ASSIGNMENT_TTL" envDefault:"15m"`

	// Frequency cap: at most FreqCapMax assignments of the same ad to the
	// same partner within FreqCapWindow.
	FreqCapMax    int           `env:"FREQ_CAP_MAX" envDefault:"1"`
	FreqCapWindow time.Duration `env:"FREQ_CAP_WINDOW" envDefault:"60s"`

	// Click adjudication windows.
	DedupWindow        time.Duration `env:"DEDUP_WINDOW" envDefault:"10s"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	ImpressionWindow   time.Duration `env:"IMPRESSION_WINDOW" envDefault:"30s"`
	HashSalt           string        `env:"HASH_SALT" envDefault:"devsalt"`

	Exploration Exploration `envPrefix:"EXPLORATION_"`
	Delivery    Delivery    `envPrefix:"DELIVERY_"`
	Market      Market      `envPrefix:"MARKET_"`
	Quality     Quality     `envPrefix:"QUALITY_"`
}

// Exploration controls the bonus given to under-sampled ads. The bonus decays
// linearly with prior serves and carries a small deterministic jitter keyed by
// ad and request so test runs stay reproducible.
type Exploration struct {
	Bonus     float64       `env:"BONUS" envDefault:"0.2"`
	Rate      float64       `env:"RATE" envDefault:"0.05"`
	MaxServes int64         `env:"MAX_SERVES" envDefault:"5"`
	Lookback  time.Duration `env:"LOOKBACK" envDefault:"168h"`
}

// Delivery controls the boost for campaigns that are under-delivering
// relative to their pacing target.
type Delivery struct {
	Boost             float64       `env:"BOOST" envDefault:"0.25"`
	Lookback          time.Duration `env:"LOOKBACK" envDefault:"168h"`
	MinRequests       int64         `env:"MIN_REQUESTS" envDefault:"10"`
	LowClickRate      float64       `env:"LOW_CLICK_RATE" envDefault:"0.01"`
	MinRemainingRatio float64       `env:"MIN_REMAINING_RATIO" envDefault:"0.2"`
}

// Market configures the stability guard: the health window it aggregates over,
// how often multipliers are recomputed, the thresholds that trigger
// adjustments and the hard bounds every multiplier is clamped to.
type Market struct {
	Window       time.Duration `env:"WINDOW" envDefault:"60m"`
	Refresh      time.Duration `env:"REFRESH" envDefault:"30s"`
	StreakSample int           `env:"STREAK_SAMPLE" envDefault:"10"`

	FillLow             float64 `env:"FILL_LOW" envDefault:"0.5"`
	FillHigh            float64 `env:"FILL_HIGH" envDefault:"0.8"`
	EligibleSupplyLow   float64 `env:"ELIGIBLE_SUPPLY_LOW" envDefault:"0.5"`
	VolatilityThreshold float64 `env:"REJECT_VOLATILITY_THRESHOLD" envDefault:"0.1"`
	UnfilledStreak      int     `env:"UNFILLED_STREAK_THRESHOLD" envDefault:"3"`
	RejectHealthy       float64 `env:"REJECT_HEALTHY" envDefault:"0.05"`

	ProfitBoostLowFill     float64 `env:"ALPHA_BOOST_LOW_FILL" envDefault:"0.2"`
	ProfitBoostLowSupply   float64 `env:"ALPHA_BOOST_LOW_SUPPLY" envDefault:"0.1"`
	CTRBoostHealthy        float64 `env:"BETA_BOOST_HEALTHY" envDefault:"0.1"`
	TargetingBoostLowFill  float64 `env:"GAMMA_BOOST_LOW_FILL" envDefault:"0.1"`
	TargetingBoostUnfilled float64 `env:"GAMMA_BOOST_UNFILLED" envDefault:"0.1"`
	QualityBoostLowFill    float64 `env:"DELTA_BOOST_LOW_FILL" envDefault:"0.2"`
	QualityBoostVolatility float64 `env:"DELTA_BOOST_VOLATILITY" envDefault:"0.1"`

	MultiplierMin float64 `env:"MULTIPLIER_MIN" envDefault:"0.5"`
	MultiplierMax float64 `env:"MULTIPLIER_MAX" envDefault:"2.0"`
}

// GuardConfig maps the market settings onto the stability guard's
// derivation config.
func (m Market) GuardConfig() stability.Config {
	return stability.Config{
		FillLow:             m.FillLow,
		FillHigh:            m.FillHigh,
		EligibleSupplyLow:   m.EligibleSupplyLow,
		VolatilityThreshold: m.VolatilityThreshold,
		UnfilledStreak:      m.UnfilledStreak,
		RejectHealthy:       m.RejectHealthy,

		ProfitBoostLowFill:     m.ProfitBoostLowFill,
		ProfitBoostLowSupply:   m.ProfitBoostLowSupply,
		CTRBoostHealthy:        m.CTRBoostHealthy,
		TargetingBoostLowFill:  m.TargetingBoostLowFill,
		TargetingBoostUnfilled: m.TargetingBoostUnfilled,
		QualityBoostLowFill:    m.QualityBoostLowFill,
		QualityBoostVolatility: m.QualityBoostVolatility,

		Min: m.MultiplierMin,
		Max: m.MultiplierMax,
	}
}

// Quality configures the partner quality state machine and the per-state
// delta multipliers applied to the reject penalty.
type Quality struct {
	MinSamples     int64         `env:"MIN_SAMPLES" envDefault:"10"`
	StableMaxRate  float64       `env:"STABLE_MAX_RATE" envDefault:"0.10"`
	AtRiskRate     float64       `env:"AT_RISK_RATE" envDefault:"0.20"`
	RiskyRate      float64       `env:"RISKY_RATE" envDefault:"0.35"`
	RecoverRate    float64       `env:"RECOVER_RATE" envDefault:"0.15"`
	RecoveryDwell  time.Duration `env:"RECOVERY_DWELL" envDefault:"10m"`
	RecentLookback time.Duration `env:"RECENT_LOOKBACK" envDefault:"24h"`
	LongLookback   time.Duration `env:"LONG_LOOKBACK" envDefault:"168h"`

	DeltaNew        float64 `env:"DELTA_NEW" envDefault:"0.5"`
	DeltaStable     float64 `env:"DELTA_STABLE" envDefault:"1.0"`
	DeltaAtRisk     float64 `env:"DELTA_AT_RISK" envDefault:"1.25"`
	DeltaRisky      float64 `env:"DELTA_RISKY" envDefault:"1.5"`
	DeltaRecovering float64 `env:"DELTA_RECOVERING" envDefault:"0.75"`
}

// DeltaFor returns the quality multiplier configured for a state. Unknown
// states fall back to the stable multiplier.
func (q Quality) DeltaFor(state domain.QualityState) float64 {
	switch state {
	case domain.QualityNew:
		return q.DeltaNew
	case domain.QualityAtRisk:
		return q.DeltaAtRisk
	case domain.QualityRisky:
		return q.DeltaRisky
	case domain.QualityRecovering:
		return q.DeltaRecovering
	default:
		return q.DeltaStable
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner is a site owner who places ads and earns per accepted click.
// EarningsTotal is credited only by the ledger.
type Partner struct {
	ID            int64
	Name          string
	EarningsTotal decimal.Decimal
	CreatedAt     time.Time
}

// QualityState is the categorical health label derived from a partner's
// rolling reject rate. Transitions move one step at a time and recovery is
// always routed through QualityRecovering.
type QualityState string

const (
	QualityNew        QualityState = "NEW"
	QualityStable     QualityState = "STABLE"
	QualityAtRisk     QualityState = "AT_RISK"
	QualityRisky      QualityState = "RISKY"
	QualityRecovering QualityState = "RECOVERING"
)

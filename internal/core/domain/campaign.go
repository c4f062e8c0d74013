package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state a buyer controls.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
)

// Campaign represents a funded buyer campaign. Money fields are decimals with
// two fractional digits, matching the NUMERIC(12,2) columns they are stored
// in. BudgetSpent is mutated only by the ledger and never exceeds BudgetTotal.
type Campaign struct {
	ID                 int64
	BuyerID            int64
	Name               string
	Status             CampaignStatus
	BudgetTotal        decimal.Decimal
	BudgetSpent        decimal.Decimal
	MaxCPC             decimal.Decimal
	PartnerPayout      decimal.Decimal
	PlatformFeePercent decimal.Decimal
	Targeting          Targeting
	StartDate          *time.Time
	EndDate            *time.Time
	CreatedAt          time.Time
}

// BudgetRemaining returns the unspent portion of the total budget.
func (c *Campaign) BudgetRemaining() decimal.Decimal {
	return c.BudgetTotal.Sub(c.BudgetSpent)
}

// CanAffordClick reports whether one more click at MaxCPC fits in the budget.
func (c *Campaign) CanAffordClick() bool {
	return c.BudgetRemaining().GreaterThanOrEqual(c.MaxCPC)
}

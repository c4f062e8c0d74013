// Package pricing derives partner payouts from buyer CPCs. The platform fee
// is the only revenue lever: partner_payout = max_cpc * (1 - fee/100),
// rounded half-up to cents.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ClampFeePercent forces a platform fee into the [0,100] range.
func ClampFeePercent(fee decimal.Decimal) decimal.Decimal {
	if fee.IsNegative() {
		return decimal.Zero
	}
	if fee.GreaterThan(hundred) {
		return hundred
	}
	return fee
}

// PartnerPayout computes what a partner earns per accepted click at the given
// buyer CPC and platform fee percentage.
func PartnerPayout(maxCPC, feePercent decimal.Decimal) decimal.Decimal {
	fee := ClampFeePercent(feePercent)
	multiplier := hundred.Sub(fee).Div(hundred)
	return maxCPC.Mul(multiplier).Round(2)
}

// PlatformMargin is what the platform keeps from one accepted click.
func PlatformMargin(maxCPC, partnerPayout decimal.Decimal) decimal.Decimal {
	return maxCPC.Sub(partnerPayout)
}

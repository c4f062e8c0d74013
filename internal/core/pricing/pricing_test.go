package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPartnerPayout(t *testing.T) {
	tests := []struct {
		name   string
		maxCPC string
		fee    string
		want   string
	}{
		{"standard fee", "2.00", "30", "1.40"},
		{"zero fee", "1.50", "0", "1.50"},
		{"full fee", "1.50", "100", "0.00"},
		{"negative fee clamps to zero", "1.00", "-10", "1.00"},
		{"fee above hundred clamps", "1.00", "150", "0.00"},
		{"rounds half up to cents", "0.05", "50", "0.03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartnerPayout(decimal.RequireFromString(tt.maxCPC), decimal.RequireFromString(tt.fee))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("PartnerPayout(%s, %s) = %s, want %s", tt.maxCPC, tt.fee, got, tt.want)
			}
		})
	}
}

func TestPlatformMargin(t *testing.T) {
	maxCPC := decimal.RequireFromString("2.00")
	payout := PartnerPayout(maxCPC, decimal.RequireFromString("30"))
	margin := PlatformMargin(maxCPC, payout)
	if !margin.Equal(decimal.RequireFromString("0.60")) {
		t.Fatalf("margin = %s, want 0.60", margin)
	}
	if !payout.Add(margin).Equal(maxCPC) {
		t.Fatalf("payout %s + margin %s != max cpc %s", payout, margin, maxCPC)
	}
}

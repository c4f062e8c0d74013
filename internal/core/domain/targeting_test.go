package domain

import "testing"

func strPtr(s string) *string { return &s }

func TestMatchesDimension(t *testing.T) {
	tests := []struct {
		name      string
		campaign  *string
		requested string
		want      bool
	}{
		{"wildcard admits anything", nil, "US", true},
		{"wildcard admits absent hint", nil, "", true},
		{"set value admits equal hint", strPtr("US"), "US", true},
		{"set value admits case-insensitively", strPtr("US"), "us", true},
		{"set value rejects different hint", strPtr("US"), "UK", false},
		{"absent hint never excludes", strPtr("US"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesDimension(tt.campaign, tt.requested); got != tt.want {
				t.Fatalf("MatchesDimension(%v, %q) = %v, want %v", tt.campaign, tt.requested, got, tt.want)
			}
		})
	}
}

func TestTargetingAdmits(t *testing.T) {
	tests := []struct {
		name      string
		targeting Targeting
		req       AdRequest
		want      bool
	}{
		{
			name:      "run of network admits everything",
			targeting: Targeting{},
			req:       AdRequest{Category: "tech", Geo: "US", Device: "mobile", Placement: "sidebar"},
			want:      true,
		},
		{
			name:      "geo wildcard admits a geo hint",
			targeting: Targeting{Category: strPtr("tech")},
			req:       AdRequest{Category: "tech", Geo: "US"},
			want:      true,
		},
		{
			name:      "geo mismatch excludes",
			targeting: Targeting{Geo: strPtr("US")},
			req:       AdRequest{Geo: "UK"},
			want:      false,
		},
		{
			name:      "one mismatched dimension excludes despite others matching",
			targeting: Targeting{Category: strPtr("tech"), Device: strPtr("mobile")},
			req:       AdRequest{Category: "tech", Device: "desktop"},
			want:      false,
		},
		{
			name:      "empty request admits targeted campaign",
			targeting: Targeting{Category: strPtr("tech"), Geo: strPtr("US")},
			req:       AdRequest{},
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.targeting.Admits(tt.req); got != tt.want {
				t.Fatalf("Admits(%+v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

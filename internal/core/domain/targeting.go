package domain

import "strings"

// Targeting describes who a campaign wants to reach. A nil dimension is a
// wildcard and matches any request value.
type Targeting struct {
	Category  *string
	Geo       *string
	Device    *string
	Placement *string
}

// MatchesDimension reports whether a single campaign dimension admits the
// requested value. An absent request value never excludes a campaign; a set
// campaign value must equal it case-insensitively.
func MatchesDimension(campaign *string, requested string) bool {
	if requested == "" || campaign == nil {
		return true
	}
	return strings.EqualFold(*campaign, requested)
}

// Admits reports whether the targeting accepts the request hints.
func (t Targeting) Admits(req AdRequest) bool {
	return MatchesDimension(t.Category, req.Category) &&
		MatchesDimension(t.Geo, req.Geo) &&
		MatchesDimension(t.Device, req.Device) &&
		MatchesDimension(t.Placement, req.Placement)
}

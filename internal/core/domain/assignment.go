package domain

import "time"

// Assignment binds a tracking code to the chosen ad, partner and request
// context. A code is consumed by at most one accepted click and expires after
// a bounded TTL when unused.
type Assignment struct {
	ID         int64
	Code       string
	PartnerID  int64
	CampaignID int64
	AdID       int64
	Category   *string
	Geo        *string
	Device     *string
	Placement  *string
	Breakdown  ScoreBreakdown
	IssuedAt   time.Time
	Consumed   bool
	ConsumedAt *time.Time
}

// Expired reports whether the assignment's TTL has passed at the given time.
// A non-positive TTL disables expiry.
func (a *Assignment) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(a.IssuedAt.Add(ttl))
}

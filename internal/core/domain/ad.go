package domain

import "time"

// Ad is a single creative owned by exactly one campaign.
type Ad struct {
	ID             int64
	CampaignID     int64
	Title          string
	Body           string
	ImageURL       string
	DestinationURL string
	Active         bool
	CreatedAt      time.Time
}

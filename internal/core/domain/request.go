package domain

// AdRequest describes an inbound request from a partner site. All targeting
// hints are optional; an empty string means the dimension was not supplied.
// RequestID identifies the request for audit and for the deterministic
// exploration jitter.
type AdRequest struct {
	RequestID string
	PartnerID int64
	Category  string
	Geo       string
	Device    string
	Placement string
}

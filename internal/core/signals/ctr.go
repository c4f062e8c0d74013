// Package signals computes the statistical inputs of the ranking score:
// smoothed click-through rates, partner reject rates and the partner quality
// state machine.
package signals

// SmoothedCTR returns the Laplace-smoothed click-through estimate
// (clicks+k)/(impressions+2k). With no history the estimate sits at the
// neutral 0.5 prior instead of 0% or 100%.
func SmoothedCTR(clicks, impressions int64, k float64) float64 {
	return (float64(clicks) + k) / (float64(impressions) + 2*k)
}

// RejectRate returns rejected/(accepted+rejected), or 0 when there are no
// decisions yet.
func RejectRate(accepted, rejected int64) float64 {
	total := accepted + rejected
	if total == 0 {
		return 0
	}
	return float64(rejected) / float64(total)
}

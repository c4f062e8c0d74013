package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"admarket/internal/core/domain"
)

// MarketHealth aggregates the marketplace health snapshot over the given
// window. The previous window of click decisions feeds the reject-rate
// volatility term.
func (r *AdRepository) MarketHealth(ctx context.Context, window time.Duration, streakSample int) (domain.MarketHealth, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-window)
	prevCutoff := cutoff.Add(-window)

	var health domain.MarketHealth

	var totalRequests, filledRequests int64
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), count(*) FILTER (WHERE filled)
        FROM request_events WHERE created_at >= $1`, cutoff).
		Scan(&totalRequests, &filledRequests)
	if err != nil {
		return health, fmt.Errorf("health requests: %w", err)
	}
	if totalRequests > 0 {
		health.FillRate = float64(filledRequests) / float64(totalRequests)
	}

	var accepted, rejected, prevAccepted, prevRejected int64
	err = r.pool.QueryRow(ctx, `
        SELECT
            count(*) FILTER (WHERE status = 'ACCEPTED' AND ts >= $1),
            count(*) FILTER (WHERE status = 'REJECTED' AND ts >= $1),
            count(*) FILTER (WHERE status = 'ACCEPTED' AND ts < $1),
            count(*) FILTER (WHERE status = 'REJECTED' AND ts < $1)
        FROM click_events WHERE ts >= $2`, cutoff, prevCutoff).
		Scan(&accepted, &rejected, &prevAccepted, &prevRejected)
	if err != nil {
		return health, fmt.Errorf("health clicks: %w", err)
	}
	if total := accepted + rejected; total > 0 {
		health.RejectRate = float64(rejected) / float64(total)
	}
	var prevRate float64
	if total := prevAccepted + prevRejected; total > 0 {
		prevRate = float64(prevRejected) / float64(total)
	}
	health.RejectVolatility = abs(health.RejectRate - prevRate)

	var eligibleAds int64
	err = r.pool.QueryRow(ctx, `
        SELECT count(*)
        FROM ads a
        JOIN campaigns c ON a.campaign_id = c.id
        WHERE a.active AND c.status = 'active'
          AND c.budget_total - c.budget_spent >= c.max_cpc`).
		Scan(&eligibleAds)
	if err != nil {
		return health, fmt.Errorf("health supply: %w", err)
	}
	if totalRequests > 0 {
		health.EligibleAdsPerRequest = float64(eligibleAds) / float64(totalRequests)
	} else {
		health.EligibleAdsPerRequest = float64(eligibleAds)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT filled FROM request_events
        ORDER BY created_at DESC, id DESC LIMIT $1`, streakSample)
	if err != nil {
		return health, fmt.Errorf("health streak: %w", err)
	}
	filledFlags, err := pgx.CollectRows(rows, pgx.RowTo[bool])
	if err != nil {
		return health, fmt.Errorf("health streak: %w", err)
	}
	for _, filled := range filledFlags {
		if filled {
			break
		}
		health.UnfilledStreak++
	}
	return health, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admarket/internal/core/domain"
	"admarket/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// EligibleCandidates returns budget-eligible, active (ad, campaign) pairs
// admitting the request's targeting hints. Per dimension, a NULL campaign
// value is a wildcard and a set value must equal the hint case-insensitively;
// hints the request did not supply never exclude anything.
func (r *AdRepository) EligibleCandidates(ctx context.Context, req domain.AdRequest) ([]port.Candidate, error) {
	query := `
        SELECT
            c.id, c.buyer_id, c.name, c.status,
            c.budget_total, c.budget_spent, c.max_cpc, c.partner_payout,
            c.platform_fee_percent,
            c.targeting_category, c.targeting_geo, c.targeting_device, c.targeting_placement,
            c.start_date, c.end_date, c.created_at,
            a.id, a.campaign_id, a.title, a.body, a.image_url, a.destination_url,
            a.active, a.created_at
        FROM ads a
        JOIN campaigns c ON a.campaign_id = c.id
        WHERE c.status = 'active'
          AND a.active
          AND c.budget_total - c.budget_spent >= c.max_cpc
          AND (c.start_date IS NULL OR c.start_date <= CURRENT_DATE)
          AND (c.end_date IS NULL OR c.end_date >= CURRENT_DATE)
          AND ($1 = '' OR c.targeting_category IS NULL OR lower(c.targeting_category) = lower($1))
          AND ($2 = '' OR c.targeting_geo IS NULL OR lower(c.targeting_geo) = lower($2))
          AND ($3 = '' OR c.targeting_device IS NULL OR lower(c.targeting_device) = lower($3))
          AND ($4 = '' OR c.targeting_placement IS NULL OR lower(c.targeting_placement) = lower($4))
        ORDER BY c.id, a.id`
	rows, err := r.pool.Query(ctx, query, req.Category, req.Geo, req.Device, req.Placement)
	if err != nil {
		return nil, fmt.Errorf("eligible candidates: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		var cand port.Candidate
		err := row.Scan(
			&cand.Campaign.ID,
			&cand.Campaign.BuyerID,
			&cand.Campaign.Name,
			&cand.Campaign.Status,
			&cand.Campaign.BudgetTotal,
			&cand.Campaign.BudgetSpent,
			&cand.Campaign.MaxCPC,
			&cand.Campaign.PartnerPayout,
			&cand.Campaign.PlatformFeePercent,
			&cand.Campaign.Targeting.Category,
			&cand.Campaign.Targeting.Geo,
			&cand.Campaign.Targeting.Device,
			&cand.Campaign.Targeting.Placement,
			&cand.Campaign.StartDate,
			&cand.Campaign.EndDate,
			&cand.Campaign.CreatedAt,
			&cand.Ad.ID,
			&cand.Ad.CampaignID,
			&cand.Ad.Title,
			&cand.Ad.Body,
			&cand.Ad.ImageURL,
			&cand.Ad.DestinationURL,
			&cand.Ad.Active,
			&cand.Ad.CreatedAt,
		)
		return cand, err
	})
}

// CandidateStats gathers the scoring statistics for one candidate in a single
// round trip. The CTR counts fall back from partner+ad history to
// partner+campaign to campaign-global, so a new ad inherits its campaign's
// performance before it has impressions of its own.
func (r *AdRepository) CandidateStats(ctx context.Context, partnerID, adID, campaignID int64, ctrSince, serveSince, deliverySince time.Time) (port.CandidateStats, error) {
	query := `
        SELECT
            (SELECT count(*) FROM click_events
              WHERE partner_id = $1 AND ad_id = $2 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM impression_events
              WHERE partner_id = $1 AND ad_id = $2 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM click_events
              WHERE partner_id = $1 AND campaign_id = $3 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM impression_events
              WHERE partner_id = $1 AND campaign_id = $3 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM click_events
              WHERE campaign_id = $3 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM impression_events
              WHERE campaign_id = $3 AND status = 'ACCEPTED' AND ts >= $4),
            (SELECT count(*) FROM assignments
              WHERE partner_id = $1 AND ad_id = $2 AND issued_at >= $5),
            (SELECT count(*) FROM request_events
              WHERE campaign_id = $3 AND created_at >= $6),
            (SELECT count(*) FROM click_events
              WHERE campaign_id = $3 AND status = 'ACCEPTED' AND ts >= $6),
            (SELECT COALESCE(sum(earnings_delta), 0) FROM click_events
              WHERE partner_id = $1 AND campaign_id = $3 AND status = 'ACCEPTED')`
	var (
		adClicks, adImps     int64
		campClicks, campImps int64
		globClicks, globImps int64
		stats                port.CandidateStats
	)
	err := r.pool.QueryRow(ctx, query, partnerID, adID, campaignID, ctrSince, serveSince, deliverySince).Scan(
		&adClicks, &adImps,
		&campClicks, &campImps,
		&globClicks, &globImps,
		&stats.PriorServes,
		&stats.CampaignRequests,
		&stats.CampaignClicks,
		&stats.PartnerCampaignEarnings,
	)
	if err != nil {
		return port.CandidateStats{}, fmt.Errorf("candidate stats: %w", err)
	}
	switch {
	case adImps > 0:
		stats.CTRClicks, stats.CTRImpressions, stats.CTRLevel = adClicks, adImps, "partner_ad"
	case campImps > 0:
		stats.CTRClicks, stats.CTRImpressions, stats.CTRLevel = campClicks, campImps, "partner_campaign"
	default:
		stats.CTRClicks, stats.CTRImpressions, stats.CTRLevel = globClicks, globImps, "campaign_global"
	}
	return stats, nil
}

// PartnerClickCounts returns accepted/rejected click decisions for the recent
// and long quality lookbacks.
func (r *AdRepository) PartnerClickCounts(ctx context.Context, partnerID int64, recentSince, longSince time.Time) (port.PartnerClickCounts, error) {
	query := `
        SELECT
            count(*) FILTER (WHERE status = 'ACCEPTED' AND ts >= $2),
            count(*) FILTER (WHERE status = 'REJECTED' AND ts >= $2),
            count(*) FILTER (WHERE status = 'ACCEPTED'),
            count(*) FILTER (WHERE status = 'REJECTED')
        FROM click_events
        WHERE partner_id = $1 AND ts >= $3`
	var counts port.PartnerClickCounts
	err := r.pool.QueryRow(ctx, query, partnerID, recentSince, longSince).Scan(
		&counts.RecentAccepted,
		&counts.RecentRejected,
		&counts.LongAccepted,
		&counts.LongRejected,
	)
	if err != nil {
		return port.PartnerClickCounts{}, fmt.Errorf("partner click counts: %w", err)
	}
	return counts, nil
}

// CreateAssignment persists a freshly issued assignment with its score
// breakdown snapshot.
func (r *AdRepository) CreateAssignment(ctx context.Context, a *domain.Assignment) error {
	breakdown, err := json.Marshal(a.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	err = r.pool.QueryRow(ctx, `
        INSERT INTO assignments
            (code, partner_id, campaign_id, ad_id, category, geo, device, placement, score_breakdown, issued_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id`,
		a.Code, a.PartnerID, a.CampaignID, a.AdID,
		a.Category, a.Geo, a.Device, a.Placement, breakdown, a.IssuedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// ResolveAssignment loads an assignment together with its ad and campaign.
func (r *AdRepository) ResolveAssignment(ctx context.Context, code string) (*port.AssignmentView, error) {
	var (
		view      port.AssignmentView
		breakdown []byte
	)
	err := r.pool.QueryRow(ctx, `
        SELECT
            s.id, s.code, s.partner_id, s.campaign_id, s.ad_id,
            s.category, s.geo, s.device, s.placement,
            s.score_breakdown, s.issued_at, s.consumed, s.consumed_at,
            a.id, a.campaign_id, a.title, a.body, a.image_url, a.destination_url, a.active, a.created_at,
            c.id, c.buyer_id, c.name, c.status,
            c.budget_total, c.budget_spent, c.max_cpc, c.partner_payout, c.platform_fee_percent,
            c.targeting_category, c.targeting_geo, c.targeting_device, c.targeting_placement,
            c.start_date, c.end_date, c.created_at
        FROM assignments s
        JOIN ads a ON a.id = s.ad_id
        JOIN campaigns c ON c.id = s.campaign_id
        WHERE s.code = $1`, code).Scan(
		&view.Assignment.ID, &view.Assignment.Code, &view.Assignment.PartnerID,
		&view.Assignment.CampaignID, &view.Assignment.AdID,
		&view.Assignment.Category, &view.Assignment.Geo,
		&view.Assignment.Device, &view.Assignment.Placement,
		&breakdown, &view.Assignment.IssuedAt,
		&view.Assignment.Consumed, &view.Assignment.ConsumedAt,
		&view.Ad.ID, &view.Ad.CampaignID, &view.Ad.Title, &view.Ad.Body,
		&view.Ad.ImageURL, &view.Ad.DestinationURL, &view.Ad.Active, &view.Ad.CreatedAt,
		&view.Campaign.ID, &view.Campaign.BuyerID, &view.Campaign.Name, &view.Campaign.Status,
		&view.Campaign.BudgetTotal, &view.Campaign.BudgetSpent,
		&view.Campaign.MaxCPC, &view.Campaign.PartnerPayout, &view.Campaign.PlatformFeePercent,
		&view.Campaign.Targeting.Category, &view.Campaign.Targeting.Geo,
		&view.Campaign.Targeting.Device, &view.Campaign.Targeting.Placement,
		&view.Campaign.StartDate, &view.Campaign.EndDate, &view.Campaign.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve assignment: %w", err)
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &view.Assignment.Breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal breakdown: %w", err)
		}
	}
	return &view, nil
}

// RecordClickReject records a rejected click. Budgets and earnings are never
// touched on this path.
func (r *AdRepository) RecordClickReject(ctx context.Context, click *domain.ClickEvent) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO click_events
            (assignment_code, partner_id, campaign_id, ad_id, ts, ip_hash, ua_hash,
             status, reject_reason, spend_delta, earnings_delta, profit_delta)
        VALUES ($1,$2,$3,$4,$5,$6,$7,'REJECTED',$8,0,0,0)`,
		click.AssignmentCode, click.PartnerID, click.CampaignID, click.AdID,
		click.TS, click.IPHash, click.UAHash, click.RejectReason)
	if err != nil {
		return fmt.Errorf("record click reject: %w", err)
	}
	return nil
}

// RecordImpression records an accepted impression event.
func (r *AdRepository) RecordImpression(ctx context.Context, imp *domain.ImpressionEvent) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO impression_events
            (assignment_code, partner_id, campaign_id, ad_id, ts, ip_hash, status)
        VALUES ($1,$2,$3,$4,$5,$6,'ACCEPTED')`,
		imp.AssignmentCode, imp.PartnerID, imp.CampaignID, imp.AdID, imp.TS, imp.IPHash)
	if err != nil {
		return fmt.Errorf("record impression: %w", err)
	}
	return nil
}

// RecordRequestEvent records an ad request outcome.
func (r *AdRepository) RecordRequestEvent(ctx context.Context, evt *domain.RequestEvent) error {
	var breakdown []byte
	if evt.Breakdown != nil {
		var err error
		breakdown, err = json.Marshal(evt.Breakdown)
		if err != nil {
			return fmt.Errorf("marshal breakdown: %w", err)
		}
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO request_events
            (created_at, partner_id, category, geo, device, placement,
             filled, reason, ad_id, campaign_id, assignment_code, explanation, score_breakdown)
        VALUES ($1,$2,NULLIF($3,''),NULLIF($4,''),NULLIF($5,''),NULLIF($6,''),$7,$8,$9,$10,$11,$12,$13)`,
		evt.CreatedAt, evt.PartnerID, evt.Category, evt.Geo, evt.Device, evt.Placement,
		evt.Filled, evt.Reason, evt.AdID, evt.CampaignID, evt.AssignmentCode, evt.Explanation, breakdown)
	if err != nil {
		return fmt.Errorf("record request event: %w", err)
	}
	return nil
}

// Stats returns aggregated delivery and money flows for the period.
func (r *AdRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	campaignFilter := ""
	if req.CampaignID != nil {
		campaignFilter = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}

	var resp port.StatsResp
	reqQuery := fmt.Sprintf(`
        SELECT count(*), count(*) FILTER (WHERE filled)
        FROM request_events
        WHERE created_at >= $1 AND created_at <= $2 %s`, campaignFilter)
	if err := r.pool.QueryRow(ctx, reqQuery, args...).Scan(&resp.Requests, &resp.Filled); err != nil {
		return nil, fmt.Errorf("stats requests: %w", err)
	}

	impQuery := fmt.Sprintf(`
        SELECT count(*)
        FROM impression_events
        WHERE ts >= $1 AND ts <= $2 %s`, campaignFilter)
	if err := r.pool.QueryRow(ctx, impQuery, args...).Scan(&resp.Impressions); err != nil {
		return nil, fmt.Errorf("stats impressions: %w", err)
	}

	clickQuery := fmt.Sprintf(`
        SELECT
            count(*) FILTER (WHERE status = 'ACCEPTED'),
            count(*) FILTER (WHERE status = 'REJECTED'),
            COALESCE(sum(spend_delta), 0),
            COALESCE(sum(earnings_delta), 0),
            COALESCE(sum(profit_delta), 0)
        FROM click_events
        WHERE ts >= $1 AND ts <= $2 %s`, campaignFilter)
	if err := r.pool.QueryRow(ctx, clickQuery, args...).Scan(
		&resp.ClicksAccepted, &resp.ClicksRejected,
		&resp.Spend, &resp.Earnings, &resp.Profit,
	); err != nil {
		return nil, fmt.Errorf("stats clicks: %w", err)
	}
	return &resp, nil
}

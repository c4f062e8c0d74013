package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"admarket/internal/core/pricing"
)

// Seed inserts demo data into the admarket database: a few partners, a mix
// of targeted and run-of-network campaigns with their ads, and a batch of
// historical impression and click events so the CTR and quality signals have
// something to work with on a fresh install.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	partners := []string{"Tech Blog Network", "Travel Weekly", "Fitness Daily"}
	for i, name := range partners {
		_, err := db.Exec(ctx, `INSERT INTO partners (id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, i+1, name)
		if err != nil {
			return err
		}
	}

	categories := []*string{strPtr("tech"), strPtr("travel"), nil, strPtr("fitness"), nil}
	geos := []*string{strPtr("US"), nil, strPtr("DE"), nil, nil}
	devices := []*string{nil, strPtr("mobile"), nil, nil, strPtr("desktop")}
	fee := decimal.NewFromInt(30)

	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		budgetTotal := decimal.NewFromInt(int64(500 + 250*i))
		maxCPC := decimal.NewFromFloat(0.50 + 0.25*float64(i))
		payout := pricing.PartnerPayout(maxCPC, fee)
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, buyer_id, name, status, budget_total, budget_spent, max_cpc, partner_payout,
     platform_fee_percent, targeting_category, targeting_geo, targeting_device,
     start_date, end_date)
VALUES ($1,$2,$3,'active',$4,0,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
			i, 100+i, name, budgetTotal, maxCPC, payout, fee,
			categories[i-1], geos[i-1], devices[i-1], start, end)
		if err != nil {
			return err
		}
		for j := 1; j <= 3; j++ {
			adID := (i-1)*3 + j
			_, err = db.Exec(ctx, `INSERT INTO ads
    (id, campaign_id, title, body, image_url, destination_url, active)
VALUES ($1,$2,$3,$4,$5,$6,true) ON CONFLICT DO NOTHING`,
				adID, i,
				fmt.Sprintf("Ad %d for campaign %d", j, i),
				fmt.Sprintf("Landing copy for ad %d", adID),
				fmt.Sprintf("https://cdn.example.com/creative/%d.png", adID),
				fmt.Sprintf("https://example.com/landing/%d", adID))
			if err != nil {
				return err
			}
		}
	}

	// Synthetic delivery history: impressions with an occasional click, spread
	// over the last two weeks.
	for i := 0; i < 500; i++ {
		adID := int64(r.Intn(15) + 1)
		campaignID := (adID-1)/3 + 1
		partnerID := int64(r.Intn(len(partners)) + 1)
		code := uuid.NewString()
		ts := time.Now().Add(-time.Duration(r.Intn(14*24)) * time.Hour)
		ipHash := fmt.Sprintf("seed-%d", r.Intn(200))
		_, err := db.Exec(ctx, `INSERT INTO impression_events
    (assignment_code, partner_id, campaign_id, ad_id, ts, ip_hash, status)
VALUES ($1,$2,$3,$4,$5,$6,'ACCEPTED')`,
			code, partnerID, campaignID, adID, ts, ipHash)
		if err != nil {
			return err
		}
		if r.Intn(100) >= 3 {
			continue
		}
		_, err = db.Exec(ctx, `INSERT INTO click_events
    (assignment_code, partner_id, campaign_id, ad_id, ts, ip_hash, status)
VALUES ($1,$2,$3,$4,$5,$6,'ACCEPTED')`,
			code, partnerID, campaignID, adID, ts.Add(time.Minute), ipHash)
		if err != nil {
			return err
		}
	}

	// Keep the id sequences ahead of the fixed ids above.
	for _, stmt := range []string{
		`SELECT setval('partners_id_seq', (SELECT max(id) FROM partners))`,
		`SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`,
		`SELECT setval('ads_id_seq', (SELECT max(id) FROM ads))`,
	} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

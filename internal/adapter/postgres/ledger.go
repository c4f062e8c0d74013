package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"admarket/internal/core/domain"
	"admarket/internal/core/port"
)

// SettleClick is the budget ledger's accept path. In one transaction it
// consumes the assignment exactly once, locks the campaign row, verifies the
// remaining budget still covers one click, debits the campaign, credits the
// partner and records the accepted click event. The transaction runs at read
// committed: a concurrent click blocked on the assignment or campaign row
// re-reads the winner's committed version after the lock wait and observes
// ErrAssignmentConsumed or ErrInsufficientBudget instead of a serialization
// failure, so overspend is structurally impossible and race losers always get
// a structured outcome.
func (r *AdRepository) SettleClick(ctx context.Context, click *domain.ClickEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin settle: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// Exactly-once consumption: the row predicate is the atomic primitive.
	ct, err := tx.Exec(ctx, `
        UPDATE assignments SET consumed = true, consumed_at = now()
        WHERE code = $1 AND NOT consumed`, click.AssignmentCode)
	if err != nil {
		return fmt.Errorf("consume assignment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		err = port.ErrAssignmentConsumed
		return err
	}

	var remaining, maxCPC, payout decimal.Decimal
	err = tx.QueryRow(ctx, `
        SELECT budget_total - budget_spent, max_cpc, partner_payout
        FROM campaigns WHERE id = $1 FOR UPDATE`, *click.CampaignID).
		Scan(&remaining, &maxCPC, &payout)
	if err != nil {
		return fmt.Errorf("lock campaign: %w", err)
	}
	if remaining.LessThan(maxCPC) {
		err = port.ErrInsufficientBudget
		return err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE campaigns SET budget_spent = budget_spent + $1 WHERE id = $2`,
		maxCPC, *click.CampaignID); err != nil {
		return fmt.Errorf("debit campaign: %w", err)
	}
	if _, err = tx.Exec(ctx, `
        UPDATE partners SET earnings_total = earnings_total + $1 WHERE id = $2`,
		payout, *click.PartnerID); err != nil {
		return fmt.Errorf("credit partner: %w", err)
	}

	click.Status = domain.StatusAccepted
	click.SpendDelta = maxCPC
	click.EarningsDelta = payout
	click.ProfitDelta = maxCPC.Sub(payout)
	if _, err = tx.Exec(ctx, `
        INSERT INTO click_events
            (assignment_code, partner_id, campaign_id, ad_id, ts, ip_hash, ua_hash,
             status, reject_reason, spend_delta, earnings_delta, profit_delta)
        VALUES ($1,$2,$3,$4,$5,$6,$7,'ACCEPTED',NULL,$8,$9,$10)`,
		click.AssignmentCode, click.PartnerID, click.CampaignID, click.AdID,
		click.TS, click.IPHash, click.UAHash,
		click.SpendDelta, click.EarningsDelta, click.ProfitDelta); err != nil {
		return fmt.Errorf("record accepted click: %w", err)
	}
	return nil
}

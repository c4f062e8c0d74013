package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mssola/user_agent"

	"admarket/internal/core/domain"
	"admarket/internal/core/port"
	"admarket/internal/core/signals"
)

// TrackClick adjudicates a click against a tracking code. Rejections are
// checked in fixed priority order: invalid assignment, duplicate, rate limit,
// bot heuristic, then the ledger's own budget check. Every decision is
// recorded as a click event; only an unknown code yields an error instead of
// a result.
func (e *AdEngine) TrackClick(ctx context.Context, req port.ClickRequest) (*port.ClickResult, error) {
	now := e.now().UTC()
	ipHash := fingerprint(e.cfg.HashSalt, req.IP)
	var uaHash *string
	if strings.TrimSpace(req.UserAgent) != "" {
		h := fingerprint(e.cfg.HashSalt, req.UserAgent)
		uaHash = &h
	}

	view, err := e.repo.ResolveAssignment(ctx, req.Code)
	if errors.Is(err, port.ErrAssignmentNotFound) {
		e.recordReject(ctx, &domain.ClickEvent{
			AssignmentCode: req.Code,
			TS:             now,
			IPHash:         ipHash,
			UAHash:         uaHash,
		}, domain.RejectInvalidAssignment)
		return nil, port.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}

	click := &domain.ClickEvent{
		AssignmentCode: req.Code,
		PartnerID:      &view.Assignment.PartnerID,
		CampaignID:     &view.Assignment.CampaignID,
		AdID:           &view.Assignment.AdID,
		TS:             now,
		IPHash:         ipHash,
		UAHash:         uaHash,
	}
	result := &port.ClickResult{DestinationURL: view.Ad.DestinationURL}

	reason, fault := e.adjudicate(ctx, view, click, req.UserAgent, ipHash, now)
	if fault != nil {
		return nil, fault
	}
	if reason != "" {
		e.recordReject(ctx, click, reason)
		result.Status = domain.StatusRejected
		result.RejectReason = reason
	} else {
		result.Status = domain.StatusAccepted
	}
	e.stats.RecordClick(string(result.Status), string(reason))
	e.refreshQuality(ctx, view.Assignment.PartnerID, now)
	return result, nil
}

// adjudicate returns the reject reason for the first matching condition, the
// empty reason after a successful settlement, or a system fault.
func (e *AdEngine) adjudicate(ctx context.Context, view *port.AssignmentView, click *domain.ClickEvent, ua, ipHash string, now time.Time) (domain.RejectReason, error) {
	switch {
	case view.Assignment.Expired(e.cfg.AssignmentTTL, now):
		return domain.RejectInvalidAssignment, nil
	case view.Assignment.Consumed:
		return domain.RejectDuplicateClick, nil
	case !e.dedup.Allow(view.Assignment.Code+"|"+ipHash, now):
		return domain.RejectDuplicateClick, nil
	case !e.rate.Allow(fmt.Sprintf("%d|%s", view.Assignment.PartnerID, ipHash), now):
		return domain.RejectRateLimit, nil
	case looksLikeBot(ua):
		return domain.RejectBotSuspected, nil
	}

	err := e.repo.SettleClick(ctx, click)
	switch {
	case errors.Is(err, port.ErrAssignmentConsumed):
		// Lost the consume race to a concurrent accepted click.
		return domain.RejectDuplicateClick, nil
	case errors.Is(err, port.ErrInsufficientBudget):
		return domain.RejectBudgetExhausted, nil
	case err != nil:
		return "", err
	}
	return "", nil
}

// TrackImpression records an impression, idempotent per tracking code within
// the impression window. Impressions never touch budgets.
func (e *AdEngine) TrackImpression(ctx context.Context, req port.ImpressionRequest) error {
	now := e.now().UTC()
	view, err := e.repo.ResolveAssignment(ctx, req.Code)
	if err != nil {
		return err
	}
	if !e.impDup.Allow(req.Code, now) {
		// repeat inside the window: acknowledged, not recorded
		return nil
	}
	e.stats.RecordImpression()
	return e.repo.RecordImpression(ctx, &domain.ImpressionEvent{
		AssignmentCode: req.Code,
		PartnerID:      view.Assignment.PartnerID,
		CampaignID:     view.Assignment.CampaignID,
		AdID:           view.Assignment.AdID,
		TS:             now,
		IPHash:         fingerprint(e.cfg.HashSalt, req.IP),
		Status:         domain.StatusAccepted,
	})
}

func (e *AdEngine) recordReject(ctx context.Context, click *domain.ClickEvent, reason domain.RejectReason) {
	click.Status = domain.StatusRejected
	click.RejectReason = &reason
	if err := e.repo.RecordClickReject(ctx, click); err != nil {
		e.logger.Warn("record click reject failed",
			slog.String("reason", string(reason)), slog.Any("error", err))
	}
}

// refreshQuality advances the partner's quality state machine with rates
// including the click just adjudicated. Best-effort.
func (e *AdEngine) refreshQuality(ctx context.Context, partnerID int64, now time.Time) {
	counts, err := e.repo.PartnerClickCounts(ctx, partnerID,
		now.Add(-e.cfg.Quality.RecentLookback), now.Add(-e.cfg.Quality.LongLookback))
	if err != nil {
		e.logger.Warn("partner quality refresh failed", slog.Any("error", err))
		return
	}
	recentRate := signals.RejectRate(counts.RecentAccepted, counts.RecentRejected)
	e.quality.Evaluate(partnerID, recentRate, counts.LongAccepted+counts.LongRejected, now)
}

func looksLikeBot(ua string) bool {
	if strings.TrimSpace(ua) == "" {
		return true
	}
	return user_agent.New(ua).Bot()
}

// fingerprint hashes a request attribute with the configured salt so raw IPs
// and user agents are never stored.
func fingerprint(salt, value string) string {
	sum := sha256.Sum256([]byte(salt + ":" + value))
	return hex.EncodeToString(sum[:])
}

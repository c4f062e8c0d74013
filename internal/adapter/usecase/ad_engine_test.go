package usecase

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"admarket/internal/config/configs"
	"admarket/internal/core/domain"
	"admarket/internal/core/port"
	"admarket/internal/core/port/mocks"
	"admarket/internal/core/stability"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func testEngineConfig() configs.Engine {
	return configs.Engine{
		PlatformFeePercent:  decimal.NewFromInt(30),
		CTRLookback:         14 * 24 * time.Hour,
		SmoothingK:          1.0,
		CTRWeight:           1.0,
		TargetingBonus:      0.5,
		RejectPenaltyWeight: 1.0,
		AssignmentTTL:       15 * time.Minute,
		FreqCapMax:          1,
		FreqCapWindow:       time.Minute,
		DedupWindow:         10 * time.Second,
		RateLimitPerMinute:  20,
		ImpressionWindow:    30 * time.Second,
		HashSalt:            "test",
		Exploration:         configs.Exploration{Bonus: 0.2, Rate: 0.05, MaxServes: 5, Lookback: 7 * 24 * time.Hour},
		Delivery:            configs.Delivery{Boost: 0.25, Lookback: 7 * 24 * time.Hour, MinRequests: 10, LowClickRate: 0.01, MinRemainingRatio: 0.2},
		Quality: configs.Quality{
			MinSamples: 10, StableMaxRate: 0.10, AtRiskRate: 0.20, RiskyRate: 0.35,
			RecoverRate: 0.15, RecoveryDwell: 10 * time.Minute,
			RecentLookback: 24 * time.Hour, LongLookback: 7 * 24 * time.Hour,
			DeltaNew: 0.5, DeltaStable: 1.0, DeltaAtRisk: 1.25, DeltaRisky: 1.5, DeltaRecovering: 0.75,
		},
	}
}

func testEngine(repo port.AdRepository) *AdEngine {
	guard := stability.NewGuard(stability.Config{Min: 0.5, Max: 2.0})
	return NewAdEngine(repo, testEngineConfig(), guard, nil, slog.New(slog.DiscardHandler))
}

func candidate(adID, campaignID int64, maxCPC, payout string) port.Candidate {
	return port.Candidate{
		Ad: domain.Ad{ID: adID, CampaignID: campaignID, Title: "t", DestinationURL: "https://example.com"},
		Campaign: domain.Campaign{
			ID:            campaignID,
			Status:        domain.CampaignActive,
			BudgetTotal:   decimal.RequireFromString("100.00"),
			MaxCPC:        decimal.RequireFromString(maxCPC),
			PartnerPayout: decimal.RequireFromString(payout),
		},
	}
}

// TestRequestAdPicksBestCandidate ensures the engine fills with the
// highest-scoring eligible ad.
func TestRequestAdPicksBestCandidate(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().
		EligibleCandidates(mock.Anything, mock.AnythingOfType("domain.AdRequest")).
		Return([]port.Candidate{
			candidate(1, 1, "1.00", "0.70"), // profit 0.30
			candidate(2, 2, "3.00", "2.10"), // profit 0.90
		}, nil)
	repo.EXPECT().
		PartnerClickCounts(mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(port.PartnerClickCounts{}, nil)
	repo.EXPECT().
		CandidateStats(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.CandidateStats{}, nil)
	repo.EXPECT().
		CreateAssignment(mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Return(nil)
	repo.EXPECT().
		RecordRequestEvent(mock.Anything, mock.AnythingOfType("*domain.RequestEvent")).
		Return(nil)

	engine := testEngine(repo)
	decision, err := engine.RequestAd(context.Background(), domain.AdRequest{PartnerID: 7})
	if err != nil {
		t.Fatalf("RequestAd error: %v", err)
	}
	if !decision.Filled {
		t.Fatalf("expected a fill, got no-fill %s", decision.Reason)
	}
	if decision.Ad.ID != 2 {
		t.Fatalf("expected the higher-profit ad 2, got %d", decision.Ad.ID)
	}
	if decision.AssignmentCode == "" || decision.TrackingURL == "" {
		t.Fatal("fill must carry a tracking code and URL")
	}
	if decision.Breakdown == nil || decision.Explanation == "" {
		t.Fatal("fill must carry the score breakdown and explanation")
	}
}

// TestRequestAdNoEligible ensures an empty eligible set is reported as
// NO_ELIGIBLE_ADS, not as an error.
func TestRequestAdNoEligible(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().
		EligibleCandidates(mock.Anything, mock.AnythingOfType("domain.AdRequest")).
		Return(nil, nil)
	repo.EXPECT().
		RecordRequestEvent(mock.Anything, mock.AnythingOfType("*domain.RequestEvent")).
		Return(nil)

	engine := testEngine(repo)
	decision, err := engine.RequestAd(context.Background(), domain.AdRequest{PartnerID: 1})
	if err != nil {
		t.Fatalf("RequestAd error: %v", err)
	}
	if decision.Filled || decision.Reason != domain.NoFillNoEligibleAds {
		t.Fatalf("expected NO_ELIGIBLE_ADS no-fill, got %+v", decision)
	}
}

// TestRequestAdFrequencyCap ensures a partner cannot be assigned the same ad
// twice inside the cap window, and that the no-fill reason distinguishes the
// cap from an empty eligible set.
func TestRequestAdFrequencyCap(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().
		EligibleCandidates(mock.Anything, mock.AnythingOfType("domain.AdRequest")).
		Return([]port.Candidate{candidate(1, 1, "1.00", "0.70")}, nil)
	repo.EXPECT().
		PartnerClickCounts(mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(port.PartnerClickCounts{}, nil)
	repo.EXPECT().
		CandidateStats(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.CandidateStats{}, nil)
	repo.EXPECT().
		CreateAssignment(mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Return(nil)
	repo.EXPECT().
		RecordRequestEvent(mock.Anything, mock.AnythingOfType("*domain.RequestEvent")).
		Return(nil)

	engine := testEngine(repo)
	req := domain.AdRequest{PartnerID: 1}

	first, err := engine.RequestAd(context.Background(), req)
	if err != nil {
		t.Fatalf("first RequestAd error: %v", err)
	}
	if !first.Filled {
		t.Fatalf("first request should fill, got %s", first.Reason)
	}

	second, err := engine.RequestAd(context.Background(), req)
	if err != nil {
		t.Fatalf("second RequestAd error: %v", err)
	}
	if second.Filled || second.Reason != domain.NoFillFreqCap {
		t.Fatalf("second request should be FREQ_CAP, got %+v", second)
	}
}

// TestConcurrentClickBudget settles concurrent clicks against a shared $10
// budget at a $2 CPC: exactly five are accepted and the rest exhaust the
// budget, with total spend never exceeding the budget.
func TestConcurrentClickBudget(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	cpc := decimal.RequireFromString("2.00")
	var (
		mu     sync.Mutex
		budget = decimal.RequireFromString("10.00")
		spent  decimal.Decimal
	)

	repo.EXPECT().
		ResolveAssignment(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(ctx context.Context, code string) (*port.AssignmentView, error) {
			view := &port.AssignmentView{
				Assignment: domain.Assignment{Code: code, PartnerID: 1, CampaignID: 1, AdID: 1, IssuedAt: time.Now().UTC()},
				Ad:         domain.Ad{ID: 1, DestinationURL: "https://example.com"},
			}
			view.Campaign.ID = 1
			view.Campaign.MaxCPC = cpc
			return view, nil
		})
	repo.EXPECT().
		SettleClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).
		RunAndReturn(func(ctx context.Context, click *domain.ClickEvent) error {
			mu.Lock()
			defer mu.Unlock()
			if budget.Sub(spent).LessThan(cpc) {
				return port.ErrInsufficientBudget
			}
			spent = spent.Add(cpc)
			click.SpendDelta = cpc
			return nil
		})
	repo.EXPECT().
		RecordClickReject(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).
		Return(nil)
	repo.EXPECT().
		PartnerClickCounts(mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(port.PartnerClickCounts{}, nil)

	engine := testEngine(repo)

	const clicks = 10
	results := make([]*port.ClickResult, clicks)
	var wg sync.WaitGroup
	wg.Add(clicks)
	for i := 0; i < clicks; i++ {
		go func(i int) {
			defer wg.Done()
			res, err := engine.TrackClick(context.Background(), port.ClickRequest{
				Code:      string(rune('a' + i)),
				IP:        "10.0.0." + string(rune('0'+i)),
				UserAgent: browserUA,
			})
			if err != nil {
				t.Errorf("TrackClick error: %v", err)
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	var accepted, exhausted int
	for _, res := range results {
		if res == nil {
			continue
		}
		switch {
		case res.Status == domain.StatusAccepted:
			accepted++
		case res.RejectReason == domain.RejectBudgetExhausted:
			exhausted++
		default:
			t.Fatalf("unexpected rejection %s", res.RejectReason)
		}
	}
	if accepted != 5 || exhausted != 5 {
		t.Fatalf("accepted %d / exhausted %d, want 5 / 5", accepted, exhausted)
	}
	if spent.GreaterThan(budget) {
		t.Fatalf("spend %s exceeded budget %s", spent, budget)
	}
}

// TestStatsPassesThrough ensures the engine delegates reporting untouched.
func TestStatsPassesThrough(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	want := &port.StatsResp{Requests: 10, Filled: 7}
	repo.EXPECT().
		Stats(mock.Anything, mock.AnythingOfType("port.StatsReq")).
		Return(want, nil)

	engine := testEngine(repo)
	got, err := engine.Stats(context.Background(), port.StatsReq{From: time.Now().Add(-time.Hour), To: time.Now()})
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if got != want {
		t.Fatalf("Stats = %+v, want %+v", got, want)
	}
}

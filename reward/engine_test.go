package reward

import "testing"

func floatPtr(v float64) *float64 {
	return &v
}

// goldenSnapshot mirrors the reference lawyer used to pin down the scoring
// formula: an established, responsive lawyer one year into the platform.
func goldenSnapshot() *Snapshot {
	return &Snapshot{
		Rating:                 4.8,
		ReviewCount:            42,
		ConsultationsCompleted: 38,
		AvgResponseTimeMinutes: floatPtr(45),
		SuccessRate:            floatPtr(0.87),
		ProfileCompletion:      floatPtr(0.95),
		DaysActive:             365,
		ResponseRate:           floatPtr(0.93),
		TotalInquiries:         76,
		CasesCompleted:         32,
		RecencyFactor:          1.1,
		CurrentTier:            TierStandard,
	}
}

func TestComputePointsGoldenSnapshot(t *testing.T) {
	engine := New(nil, nil)

	points := engine.ComputePoints(goldenSnapshot())
	if points != 958 {
		t.Errorf("Expected 958 points for golden snapshot, got %d", points)
	}
}

func TestComputePointsMissingOptionalMetrics(t *testing.T) {
	engine := New(nil, nil)

	// Only rating and reviews present: 100*(5/5)*log10(4)/2 + 3*10
	snap := &Snapshot{Rating: 5.0, ReviewCount: 3}
	points := engine.ComputePoints(snap)
	if points != 60 {
		t.Errorf("Expected 60 points with optional metrics absent, got %d", points)
	}
}

func TestComputePointsResponseTimeBoundary(t *testing.T) {
	engine := New(nil, nil)

	base := &Snapshot{Rating: 4.0, ReviewCount: 10}
	baseline := engine.ComputePoints(base)

	// Exactly 24 hours contributes zero, not a negative amount
	at24h := &Snapshot{Rating: 4.0, ReviewCount: 10, AvgResponseTimeMinutes: floatPtr(24 * 60)}
	if got := engine.ComputePoints(at24h); got != baseline {
		t.Errorf("Expected 24h response time to contribute nothing: baseline %d, got %d", baseline, got)
	}

	// Slightly above 24 hours also contributes zero
	over24h := &Snapshot{Rating: 4.0, ReviewCount: 10, AvgResponseTimeMinutes: floatPtr(24*60 + 1)}
	if got := engine.ComputePoints(over24h); got != baseline {
		t.Errorf("Expected >24h response time to contribute nothing: baseline %d, got %d", baseline, got)
	}
}

func TestDetermineTier(t *testing.T) {
	engine := New(nil, nil)

	cases := []struct {
		points      int
		rating      float64
		reviewCount int
		want        Tier
	}{
		{958, 4.8, 42, TierPlatinum},
		{500, 4.5, 30, TierPlatinum},
		{499, 4.5, 30, TierGold},
		{500, 4.4, 30, TierGold},
		{300, 4.0, 20, TierGold},
		{150, 3.5, 10, TierSilver},
		{1000, 3.0, 50, TierStandard}, // rating below every paid tier
		{0, 0, 0, TierStandard},
	}

	for _, tc := range cases {
		got := engine.DetermineTier(tc.points, tc.rating, tc.reviewCount)
		if got != tc.want {
			t.Errorf("DetermineTier(%d, %.1f, %d) = %s, want %s",
				tc.points, tc.rating, tc.reviewCount, got, tc.want)
		}
	}
}

func TestDetermineTierIdempotentAndMonotonic(t *testing.T) {
	engine := New(nil, nil)

	first := engine.DetermineTier(320, 4.2, 25)
	second := engine.DetermineTier(320, 4.2, 25)
	if first != second {
		t.Errorf("Expected identical tiers for identical inputs, got %s then %s", first, second)
	}

	// Growing the review count with everything else fixed never demotes
	order := map[Tier]int{TierStandard: 0, TierSilver: 1, TierGold: 2, TierPlatinum: 3}
	previous := engine.DetermineTier(600, 4.6, 10)
	for reviews := 11; reviews <= 60; reviews++ {
		current := engine.DetermineTier(600, 4.6, reviews)
		if order[current] < order[previous] {
			t.Errorf("Tier dropped from %s to %s when reviews grew to %d", previous, current, reviews)
		}
		previous = current
	}
}

func TestEvaluateBadgesPerfectScore(t *testing.T) {
	engine := New(nil, nil)

	snap := &Snapshot{Rating: 5.0, ReviewCount: 3}
	badges := engine.EvaluateBadges(snap)

	if !containsBadge(badges, BadgePerfectScore) {
		t.Errorf("Expected Perfect Score for 5.0 rating with 3 reviews, got %v", badges)
	}
	if containsBadge(badges, BadgeExperiencedPro) {
		t.Errorf("Did not expect Experienced Pro with 3 reviews, got %v", badges)
	}
	if len(badges) != 1 {
		t.Errorf("Expected exactly one badge, got %v", badges)
	}
}

func TestEvaluateBadgesRisingStar(t *testing.T) {
	engine := New(nil, nil)

	snap := &Snapshot{Rating: 4.1, ReviewCount: 12, DaysActive: 100}
	if !containsBadge(engine.EvaluateBadges(snap), BadgeRisingStar) {
		t.Errorf("Expected Rising Star for 4.1 rating, 12 reviews, 100 days active")
	}

	// The review upper bound is exclusive
	atBound := &Snapshot{Rating: 4.1, ReviewCount: 15, DaysActive: 100}
	if containsBadge(engine.EvaluateBadges(atBound), BadgeRisingStar) {
		t.Errorf("Did not expect Rising Star at 15 reviews")
	}

	tooOld := &Snapshot{Rating: 4.1, ReviewCount: 12, DaysActive: 181}
	if containsBadge(engine.EvaluateBadges(tooOld), BadgeRisingStar) {
		t.Errorf("Did not expect Rising Star after 181 days registered")
	}
}

func TestEvaluateBadgesQuickResponder(t *testing.T) {
	engine := New(nil, nil)

	snap := &Snapshot{
		Rating:                 4.0,
		ReviewCount:            8,
		ResponseRate:           floatPtr(0.95),
		AvgResponseTimeMinutes: floatPtr(120),
		TotalInquiries:         20,
	}
	if !containsBadge(engine.EvaluateBadges(snap), BadgeQuickResponder) {
		t.Errorf("Expected Quick Responder for 95%% response rate at 2h")
	}

	// A missing response rate fails the predicate outright
	missing := &Snapshot{
		Rating:                 4.0,
		ReviewCount:            8,
		AvgResponseTimeMinutes: floatPtr(120),
		TotalInquiries:         20,
	}
	if containsBadge(engine.EvaluateBadges(missing), BadgeQuickResponder) {
		t.Errorf("Did not expect Quick Responder without a response rate")
	}
}

type stubRanker struct {
	rank float64
	ok   bool
}

func (r stubRanker) PercentileRank(metric string, value float64) (float64, bool) {
	return r.rank, r.ok
}

func TestTopTenPercentNeedsRanker(t *testing.T) {
	snap := &Snapshot{Rating: 4.9, ReviewCount: 20}

	// Without population data the badge is indeterminate and never granted
	engine := New(nil, nil)
	if containsBadge(engine.EvaluateBadges(snap), BadgeTopTenPercent) {
		t.Errorf("Did not expect Top 10%% without a ranker")
	}

	ranked := New(nil, stubRanker{rank: 5, ok: true})
	if !containsBadge(ranked.EvaluateBadges(snap), BadgeTopTenPercent) {
		t.Errorf("Expected Top 10%% with a rank of 5")
	}

	outside := New(nil, stubRanker{rank: 40, ok: true})
	if containsBadge(outside.EvaluateBadges(snap), BadgeTopTenPercent) {
		t.Errorf("Did not expect Top 10%% with a rank of 40")
	}

	unavailable := New(nil, stubRanker{ok: false})
	if containsBadge(unavailable.EvaluateBadges(snap), BadgeTopTenPercent) {
		t.Errorf("Did not expect Top 10%% when the ranker has no data")
	}
}

func TestComputeSearchBoostPremiumBadges(t *testing.T) {
	engine := New(nil, nil)

	badges := []string{BadgeTopRated, BadgeClientFavorite, BadgePerfectScore}
	boost := engine.ComputeSearchBoost(TierPlatinum, badges, 1.0)
	if boost != 2.6 {
		t.Errorf("Expected boost 2.6 for platinum with three premium badges, got %v", boost)
	}
}

func TestComputeSearchBoostFloor(t *testing.T) {
	engine := New(nil, nil)

	// An inactive standard lawyer still never drops below the 1.0 floor
	boost := engine.ComputeSearchBoost(TierStandard, nil, 0.5)
	if boost != 1.0 {
		t.Errorf("Expected boost floor of 1.0, got %v", boost)
	}
}

func TestProcessRewardsGoldenSnapshot(t *testing.T) {
	engine := New(nil, nil)

	result, events, err := engine.ProcessRewards(goldenSnapshot())
	if err != nil {
		t.Fatalf("ProcessRewards failed: %v", err)
	}

	if result.Points != 958 {
		t.Errorf("Expected 958 points, got %d", result.Points)
	}
	if result.Tier != TierPlatinum {
		t.Errorf("Expected platinum tier, got %s", result.Tier)
	}

	wantBadges := []string{
		BadgeTopRated, BadgeClientFavorite, BadgeExperiencedPro,
		BadgeQuickResponder, BadgeCaseWinner,
	}
	if len(result.Badges) != len(wantBadges) {
		t.Errorf("Expected badges %v, got %v", wantBadges, result.Badges)
	}
	for _, badge := range wantBadges {
		if !containsBadge(result.Badges, badge) {
			t.Errorf("Expected badge %q in %v", badge, result.Badges)
		}
	}

	// 2.0 tier base + 0.5 capped badge boost + 0.2 premium, scaled by 1.1
	if result.SearchBoost != 2.97 {
		t.Errorf("Expected search boost 2.97, got %v", result.SearchBoost)
	}

	// Standard -> platinum plus five fresh badges
	if len(events) != 6 {
		t.Errorf("Expected 6 events, got %d: %v", len(events), events)
	}
	if events[0].Type != EventTierChange || events[0].OldTier != TierStandard || events[0].NewTier != TierPlatinum {
		t.Errorf("Expected a standard->platinum tier change first, got %+v", events[0])
	}
}

func TestProcessRewardsBadgesRecomputedFromScratch(t *testing.T) {
	engine := New(nil, nil)

	// A previously held badge whose criteria no longer hold is dropped
	snap := &Snapshot{
		Rating:        4.8,
		ReviewCount:   42,
		CurrentTier:   TierPlatinum,
		CurrentBadges: []string{BadgePerfectScore},
	}
	result, _, err := engine.ProcessRewards(snap)
	if err != nil {
		t.Fatalf("ProcessRewards failed: %v", err)
	}
	if containsBadge(result.Badges, BadgePerfectScore) {
		t.Errorf("Expected Perfect Score to lapse at 4.8 rating, got %v", result.Badges)
	}

	// Held badges only suppress events, never the recomputed set
	heldSnap := &Snapshot{Rating: 4.9, ReviewCount: 12, CurrentBadges: []string{BadgeTopRated}}
	heldResult, heldEvents, err := engine.ProcessRewards(heldSnap)
	if err != nil {
		t.Fatalf("ProcessRewards failed: %v", err)
	}
	if !containsBadge(heldResult.Badges, BadgeTopRated) {
		t.Errorf("Expected Top Rated to remain in the badge set, got %v", heldResult.Badges)
	}
	for _, event := range heldEvents {
		if event.Type == EventBadgeEarned && event.Badge == BadgeTopRated {
			t.Errorf("Did not expect a badge event for an already held badge")
		}
	}
}

func TestProcessRewardsRejectsInvalidSnapshot(t *testing.T) {
	engine := New(nil, nil)

	invalid := []*Snapshot{
		{Rating: 5.5, ReviewCount: 10},
		{Rating: -0.1},
		{Rating: 4.0, ReviewCount: -1},
		{Rating: 4.0, SuccessRate: floatPtr(1.2)},
		{Rating: 4.0, AvgResponseTimeMinutes: floatPtr(-5)},
		{Rating: 4.0, RecencyFactor: -1},
	}
	for i, snap := range invalid {
		result, events, err := engine.ProcessRewards(snap)
		if err == nil {
			t.Errorf("Case %d: expected validation error, got result %+v", i, result)
		}
		if result != nil || events != nil {
			t.Errorf("Case %d: expected no partial result on failure", i)
		}
	}
}

func TestProcessRewardsDefaultsRecencyFactor(t *testing.T) {
	engine := New(nil, nil)

	// An unset recency factor behaves like 1.0
	snap := &Snapshot{Rating: 4.8, ReviewCount: 42, CurrentTier: TierPlatinum}
	result, _, err := engine.ProcessRewards(snap)
	if err != nil {
		t.Fatalf("ProcessRewards failed: %v", err)
	}

	explicit := &Snapshot{Rating: 4.8, ReviewCount: 42, RecencyFactor: 1.0, CurrentTier: TierPlatinum}
	explicitResult, _, err := engine.ProcessRewards(explicit)
	if err != nil {
		t.Fatalf("ProcessRewards failed: %v", err)
	}

	if result.SearchBoost != explicitResult.SearchBoost {
		t.Errorf("Expected zero recency to default to 1.0: got %v vs %v",
			result.SearchBoost, explicitResult.SearchBoost)
	}
}

func containsBadge(badges []string, name string) bool {
	for _, badge := range badges {
		if badge == name {
			return true
		}
	}
	return false
}

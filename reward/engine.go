package reward

import "math"

// Engine computes reward points, tiers, badges and search boosts from a
// metrics snapshot. It is stateless and safe for concurrent use.
type Engine struct {
	Config *Config
	ranker PercentileRanker
}

// New creates an engine with the given configuration. A nil config uses
// DefaultConfig. The ranker may be nil, in which case percentile-gated
// badges are never granted.
func New(config *Config, ranker PercentileRanker) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{Config: config, ranker: ranker}
}

// ComputePoints sums the weighted metric contributions, applies the
// activity multiplier and truncates to an integer
func (e *Engine) ComputePoints(snap *Snapshot) int {
	w := e.Config.Weights
	points := 0.0

	// Rating contribution, weighted logarithmically by review volume
	ratingFactor := snap.Rating / 5.0
	reviewWeight := math.Min(1.0, math.Log10(float64(snap.ReviewCount)+1)/2)
	points += w.Rating * ratingFactor * reviewWeight

	points += float64(snap.ReviewCount) * w.Review
	points += float64(snap.ConsultationsCompleted) * w.Consultation

	// Responsiveness: faster replies score higher, anything past 24h scores nothing
	if snap.AvgResponseTimeMinutes != nil {
		hours := *snap.AvgResponseTimeMinutes / 60
		if hours <= 24 {
			points += w.ResponseTime * math.Max(0, 1-hours/24)
		}
	}

	if snap.SuccessRate != nil {
		points += w.SuccessRate * *snap.SuccessRate
	}
	if snap.ProfileCompletion != nil {
		points += w.ProfileQuality * *snap.ProfileCompletion
	}

	// Activity multiplier, capped after ActivityBonusDays
	if snap.DaysActive > 0 {
		bonus := math.Min(1.0, float64(snap.DaysActive)/float64(e.Config.ActivityBonusDays))
		points *= 1 + bonus*e.Config.ActivityBonusMax
	}

	if points < 0 {
		return 0
	}
	return int(points)
}

// DetermineTier walks the threshold table from the highest tier down and
// returns the first tier whose points, rating and review thresholds are all
// met. Standard has zero thresholds and always qualifies.
func (e *Engine) DetermineTier(points int, rating float64, reviewCount int) Tier {
	for _, req := range e.Config.Tiers {
		if points >= req.MinPoints && rating >= req.MinRating && reviewCount >= req.MinReviews {
			return req.Tier
		}
	}
	return TierStandard
}

// EvaluateBadges recomputes the full badge set from the snapshot. Previously
// held badges whose criteria no longer hold are not carried over.
func (e *Engine) EvaluateBadges(snap *Snapshot) []string {
	var earned []string
	for _, criteria := range e.Config.Badges {
		if e.meetsCriteria(snap, criteria) {
			earned = append(earned, criteria.Name)
		}
	}
	return earned
}

func (e *Engine) meetsCriteria(snap *Snapshot, c BadgeCriteria) bool {
	if c.MinRating > 0 && snap.Rating < c.MinRating {
		return false
	}
	if c.ExactRating > 0 && snap.Rating != c.ExactRating {
		return false
	}
	if c.MinReviews > 0 && snap.ReviewCount < c.MinReviews {
		return false
	}
	if c.MaxReviews > 0 && snap.ReviewCount >= c.MaxReviews {
		return false
	}
	if c.MaxDaysRegistered > 0 && snap.DaysActive > c.MaxDaysRegistered {
		return false
	}
	if c.MinResponseRate > 0 {
		if snap.ResponseRate == nil || *snap.ResponseRate < c.MinResponseRate {
			return false
		}
	}
	if c.MaxResponseHours > 0 {
		if snap.AvgResponseTimeMinutes == nil || *snap.AvgResponseTimeMinutes/60 > c.MaxResponseHours {
			return false
		}
	}
	if c.MinInquiries > 0 && snap.TotalInquiries < c.MinInquiries {
		return false
	}
	if c.MinSuccessRate > 0 {
		if snap.SuccessRate == nil || *snap.SuccessRate < c.MinSuccessRate {
			return false
		}
	}
	if c.MinCases > 0 && snap.CasesCompleted < c.MinCases {
		return false
	}
	if c.Percentile > 0 {
		// Indeterminate without population data: not granted
		if e.ranker == nil {
			return false
		}
		value, ok := snapshotMetric(snap, c.PercentileMetric)
		if !ok {
			return false
		}
		rank, ok := e.ranker.PercentileRank(c.PercentileMetric, value)
		if !ok || rank > c.Percentile {
			return false
		}
	}
	return true
}

func snapshotMetric(snap *Snapshot, metric string) (float64, bool) {
	switch metric {
	case "rating":
		return snap.Rating, true
	default:
		return 0, false
	}
}

// ComputeSearchBoost combines the tier base boost, the badge count boost and
// the premium badge boost, scales by the recency factor and rounds to two
// decimals. The result never drops below 1.0.
func (e *Engine) ComputeSearchBoost(tier Tier, badges []string, recencyFactor float64) float64 {
	base, ok := e.Config.TierBoosts[tier]
	if !ok {
		base = 1.0
	}

	badgeBoost := math.Min(e.Config.BadgeBoostCap, float64(len(badges))*e.Config.BadgeBoost)

	premiumCount := 0
	for _, badge := range badges {
		for _, premium := range e.Config.PremiumBadges {
			if badge == premium {
				premiumCount++
				break
			}
		}
	}

	total := (base + badgeBoost + float64(premiumCount)*e.Config.PremiumBoost) * recencyFactor
	boost := math.Round(total*100) / 100
	if boost < 1.0 {
		return 1.0
	}
	return boost
}

// ProcessRewards runs the full pipeline over one snapshot: points, tier,
// badges and boost, plus the tier-change and badge-earned events obtained
// by diffing against the snapshot's current state. Invalid snapshots fail
// atomically with no partial result.
func (e *Engine) ProcessRewards(snap *Snapshot) (*Result, []Event, error) {
	if err := snap.Validate(); err != nil {
		return nil, nil, err
	}

	points := e.ComputePoints(snap)
	tier := e.DetermineTier(points, snap.Rating, snap.ReviewCount)
	badges := e.EvaluateBadges(snap)

	recency := snap.RecencyFactor
	if recency == 0 {
		recency = 1.0
	}
	boost := e.ComputeSearchBoost(tier, badges, recency)

	result := &Result{
		Points:      points,
		Tier:        tier,
		Badges:      badges,
		SearchBoost: boost,
	}

	var events []Event

	currentTier := snap.CurrentTier
	if currentTier == "" {
		currentTier = TierStandard
	}
	if tier != currentTier {
		events = append(events, Event{
			Type:    EventTierChange,
			OldTier: currentTier,
			NewTier: tier,
			Points:  points,
		})
	}

	held := make(map[string]bool, len(snap.CurrentBadges))
	for _, badge := range snap.CurrentBadges {
		held[badge] = true
	}
	for _, badge := range badges {
		if !held[badge] {
			events = append(events, Event{Type: EventBadgeEarned, Badge: badge})
		}
	}

	return result, events, nil
}

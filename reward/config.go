package reward

// Badge names awarded by the default catalog
const (
	BadgeTopRated       = "Top Rated"
	BadgeClientFavorite = "Client Favorite"
	BadgeRisingStar     = "Rising Star"
	BadgeExperiencedPro = "Experienced Pro"
	BadgePerfectScore   = "Perfect Score"
	BadgeQuickResponder = "Quick Responder"
	BadgeCaseWinner     = "Case Winner"
	BadgeTopTenPercent  = "Top 10%"
)

// Weights holds the point contribution weights
type Weights struct {
	Rating         float64 `yaml:"rating"`
	Review         float64 `yaml:"review"`
	Consultation   float64 `yaml:"consultation"`
	ResponseTime   float64 `yaml:"responseTime"`
	SuccessRate    float64 `yaml:"successRate"`
	ProfileQuality float64 `yaml:"profileQuality"`
}

// TierRequirement is one row of the tier threshold table. A tier qualifies
// only when all three thresholds are met.
type TierRequirement struct {
	Tier       Tier    `yaml:"tier"`
	MinPoints  int     `yaml:"minPoints"`
	MinRating  float64 `yaml:"minRating"`
	MinReviews int     `yaml:"minReviews"`
}

// BadgeCriteria is the conjunction of predicates for one badge. A zero
// value disables a predicate; every enabled predicate must hold for the
// badge to be granted.
type BadgeCriteria struct {
	Name              string
	MinRating         float64
	ExactRating       float64
	MinReviews        int
	MaxReviews        int // exclusive upper bound
	MaxDaysRegistered int
	MinResponseRate   float64
	MaxResponseHours  float64
	MinInquiries      int
	MinSuccessRate    float64
	MinCases          int
	Percentile        float64 // top-N percent, needs a PercentileRanker
	PercentileMetric  string
}

// Config holds all tunable tables of the reward engine
type Config struct {
	Weights           Weights
	ActivityBonusMax  float64 // max activity multiplier bonus
	ActivityBonusDays int     // days of activity to reach the max bonus
	Tiers             []TierRequirement // highest tier first
	Badges            []BadgeCriteria
	TierBoosts        map[Tier]float64
	BadgeBoost        float64 // boost per earned badge
	BadgeBoostCap     float64
	PremiumBoost      float64 // extra boost per premium badge
	PremiumBadges     []string
}

// DefaultConfig returns the production threshold and weight tables
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Rating:         100,
			Review:         10,
			Consultation:   5,
			ResponseTime:   50,
			SuccessRate:    100,
			ProfileQuality: 50,
		},
		ActivityBonusMax:  0.2,
		ActivityBonusDays: 730,
		Tiers: []TierRequirement{
			{Tier: TierPlatinum, MinPoints: 500, MinRating: 4.5, MinReviews: 30},
			{Tier: TierGold, MinPoints: 300, MinRating: 4.0, MinReviews: 20},
			{Tier: TierSilver, MinPoints: 150, MinRating: 3.5, MinReviews: 10},
			{Tier: TierStandard},
		},
		Badges: []BadgeCriteria{
			{Name: BadgeTopRated, MinRating: 4.8, MinReviews: 10},
			{Name: BadgeClientFavorite, MinRating: 4.5, MinReviews: 20},
			{Name: BadgeRisingStar, MinRating: 4.0, MinReviews: 5, MaxReviews: 15, MaxDaysRegistered: 180},
			{Name: BadgeExperiencedPro, MinReviews: 30},
			{Name: BadgePerfectScore, ExactRating: 5.0, MinReviews: 3},
			{Name: BadgeQuickResponder, MinResponseRate: 0.9, MaxResponseHours: 4, MinInquiries: 15},
			{Name: BadgeCaseWinner, MinSuccessRate: 0.75, MinCases: 10},
			{Name: BadgeTopTenPercent, Percentile: 10, PercentileMetric: "rating", MinReviews: 15},
		},
		TierBoosts: map[Tier]float64{
			TierStandard: 1.0,
			TierSilver:   1.2,
			TierGold:     1.5,
			TierPlatinum: 2.0,
		},
		BadgeBoost:    0.1,
		BadgeBoostCap: 0.5,
		PremiumBoost:  0.1,
		PremiumBadges: []string{BadgeTopRated, BadgeClientFavorite, BadgePerfectScore},
	}
}

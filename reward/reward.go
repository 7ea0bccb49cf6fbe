package reward

import (
	"errors"
	"fmt"
)

// Tier is a lawyer's reward tier
type Tier string

const (
	TierStandard Tier = "standard"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Event types emitted by ProcessRewards
const (
	EventTierChange  = "tier_change"
	EventBadgeEarned = "badge_earned"
)

// Snapshot holds the aggregated performance metrics for one lawyer at the
// time of a scoring run. Pointer fields are optional metrics where absence
// and zero mean different things (a zero-minute response time scores full
// responsiveness points, a missing one scores none).
type Snapshot struct {
	Rating                 float64
	ReviewCount            int
	ConsultationsCompleted int
	AvgResponseTimeMinutes *float64
	SuccessRate            *float64
	ProfileCompletion      *float64
	DaysActive             int
	ResponseRate           *float64
	TotalInquiries         int
	CasesCompleted         int
	RecencyFactor          float64
	CurrentTier            Tier
	CurrentBadges          []string
}

// Result is the outcome of a scoring run
type Result struct {
	Points      int      `bson:"rewardPoints" json:"rewardPoints"`
	Tier        Tier     `bson:"rewardTier" json:"rewardTier"`
	Badges      []string `bson:"badges" json:"badges"`
	SearchBoost float64  `bson:"searchBoost" json:"searchBoost"`
}

// Event describes a tier change or a newly earned badge, produced by
// diffing a run's outcome against the snapshot's current state
type Event struct {
	Type    string `json:"type"`
	OldTier Tier   `json:"oldTier,omitempty"`
	NewTier Tier   `json:"newTier,omitempty"`
	Badge   string `json:"badge,omitempty"`
	Points  int    `json:"points,omitempty"`
}

// MetricsProvider supplies a metrics snapshot for a lawyer, aggregating
// reviews, messages and case records
type MetricsProvider interface {
	Snapshot(lawyerID string) (*Snapshot, error)
}

// HistoryRecorder persists reward events for audit history
type HistoryRecorder interface {
	Record(lawyerID string, event Event) error
}

// PercentileRanker reports how a metric value ranks across the whole lawyer
// population. The returned rank is a top-N percentile (10 means top 10%).
// ok is false when the ranking is unavailable, which makes any
// percentile-gated badge indeterminate and therefore not granted.
type PercentileRanker interface {
	PercentileRank(metric string, value float64) (rank float64, ok bool)
}

// Validate rejects out-of-range snapshot values. The engine operates only
// on validated snapshots so upstream aggregation bugs fail fast instead of
// being clamped away.
func (s *Snapshot) Validate() error {
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("rating %v outside [0,5]", s.Rating)
	}
	if s.ReviewCount < 0 || s.ConsultationsCompleted < 0 || s.DaysActive < 0 ||
		s.TotalInquiries < 0 || s.CasesCompleted < 0 {
		return errors.New("metric counts must be non-negative")
	}
	if s.AvgResponseTimeMinutes != nil && *s.AvgResponseTimeMinutes < 0 {
		return errors.New("avg response time must be non-negative")
	}
	if err := validateRate("success rate", s.SuccessRate); err != nil {
		return err
	}
	if err := validateRate("profile completion", s.ProfileCompletion); err != nil {
		return err
	}
	if err := validateRate("response rate", s.ResponseRate); err != nil {
		return err
	}
	if s.RecencyFactor < 0 {
		return errors.New("recency factor must be non-negative")
	}
	return nil
}

func validateRate(name string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%s %v outside [0,1]", name, *v)
	}
	return nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lawyerhub/reward"
)

// RewardHistory records a tier change or badge award for audit history
type RewardHistory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LawyerID     primitive.ObjectID `bson:"lawyerId" json:"lawyerId"`
	EventType    string             `bson:"eventType" json:"eventType"`
	Description  string             `bson:"description" json:"description"`
	PreviousTier reward.Tier        `bson:"previousTier,omitempty" json:"previousTier,omitempty"`
	NewTier      reward.Tier        `bson:"newTier,omitempty" json:"newTier,omitempty"`
	BadgeEarned  string             `bson:"badgeEarned,omitempty" json:"badgeEarned,omitempty"`
	Points       int                `bson:"points,omitempty" json:"points,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// RewardEvent is broadcast over the websocket hub when a lawyer's tier or
// badge set changes
type RewardEvent struct {
	Type      string      `json:"type"` // "tier_change", "badge_earned"
	LawyerID  string      `json:"lawyerId"`
	OldTier   reward.Tier `json:"oldTier,omitempty"`
	NewTier   reward.Tier `json:"newTier,omitempty"`
	Badge     string      `json:"badge,omitempty"`
	Points    int         `json:"points,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

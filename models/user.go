package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lawyerhub/reward"
)

// Roles
const (
	RoleClient = "client"
	RoleLawyer = "lawyer"
	RoleAdmin  = "admin"
)

// Location is a lawyer's practice location
type Location struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// User defines a user entity. Lawyer accounts carry the profile and reward
// fields; client accounts leave them at their zero values.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Lawyer profile
	Specialty       []string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Location        Location `bson:"location,omitempty" json:"location,omitempty"`
	Bio             string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Education       []string `bson:"education,omitempty" json:"education,omitempty"`
	Experience      []string `bson:"experience,omitempty" json:"experience,omitempty"`
	LicenseInfo     string   `bson:"licenseInfo,omitempty" json:"licenseInfo,omitempty"`
	ProfileImage    string   `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ContactInfo     string   `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	ProfileComplete bool     `bson:"profileComplete" json:"profileComplete"`
	IsVerified      bool     `bson:"isVerified" json:"isVerified"`

	// Performance metrics maintained by the review and consultation flows
	Rating                 float64   `bson:"rating" json:"rating"`
	ReviewCount            int       `bson:"reviewCount" json:"reviewCount"`
	ConsultationsCompleted int       `bson:"consultationsCompleted" json:"consultationsCompleted"`
	LastActivityAt         time.Time `bson:"lastActivityAt,omitempty" json:"lastActivityAt,omitempty"`

	// Reward state written back by the reward service
	RewardPoints     int         `bson:"rewardPoints" json:"rewardPoints"`
	RewardTier       reward.Tier `bson:"rewardTier" json:"rewardTier"`
	Badges           []string    `bson:"badges" json:"badges"`
	SearchBoost      float64     `bson:"searchBoost" json:"searchBoost"`
	RewardsUpdatedAt time.Time   `bson:"rewardsUpdatedAt,omitempty" json:"rewardsUpdatedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Case outcomes
const (
	CaseOutcomeWon  = "won"
	CaseOutcomeLost = "lost"
	CaseOutcomeOpen = "open"
)

// Case is a legal matter handled by a lawyer
type Case struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LawyerID primitive.ObjectID `bson:"lawyerId" json:"lawyerId"`
	Title    string             `bson:"title" json:"title"`
	Outcome  string             `bson:"outcome" json:"outcome"`
	OpenedAt time.Time          `bson:"openedAt" json:"openedAt"`
	ClosedAt *time.Time         `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a client inquiry to a lawyer. FirstReplyAt is unset until the
// lawyer answers; the metrics service derives response times and the 24h
// response rate from it.
type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LawyerID     primitive.ObjectID `bson:"lawyerId" json:"lawyerId"`
	ClientID     primitive.ObjectID `bson:"clientId" json:"clientId"`
	Body         string             `bson:"body" json:"body"`
	SentAt       time.Time          `bson:"sentAt" json:"sentAt"`
	FirstReplyAt *time.Time         `bson:"firstReplyAt,omitempty" json:"firstReplyAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a client's rating of a lawyer. One review per client per lawyer.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	LawyerID     primitive.ObjectID `bson:"lawyerId" json:"lawyerId"`
	Rating       float64            `bson:"rating" json:"rating"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
	ReviewerName string             `bson:"-" json:"reviewerName,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

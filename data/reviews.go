package data

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review defines a review left on a book. Reviews are soft deleted like
// books. There is no reviewer identity beyond the free-text ReviewedBy
// field; review endpoints perform no ownership checks.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookID     primitive.ObjectID `bson:"bookId" json:"bookId"`
	ReviewedBy string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	Rating     int                `bson:"rating" json:"rating"`
	Review     string             `bson:"review,omitempty" json:"review,omitempty"`
	IsDeleted  bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/emzola/bookhaven/data"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviews interface {
	CreateReview(review *data.Review) error
	GetReviewForBook(reviewID, bookID primitive.ObjectID) (*data.Review, error)
	GetAllReviewsForBook(bookID primitive.ObjectID, includeDeleted bool) ([]*data.Review, error)
	UpdateReview(review *data.Review) error
}

// CreateReview inserts a new review record and fills in its generated ID
// and timestamps.
func (r *repository) CreateReview(review *data.Review) error {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	res, err := r.db.Collection("reviews").InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetReviewForBook retrieves a non-deleted review by its ID, scoped to the
// given book so a review ID from another book 404s.
func (r *repository) GetReviewForBook(reviewID, bookID primitive.ObjectID) (*data.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	var review data.Review
	filter := bson.M{"_id": reviewID, "bookId": bookID, "isDeleted": false}
	err := r.db.Collection("reviews").FindOne(ctx, filter).Decode(&review)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// GetAllReviewsForBook retrieves the reviews attached to a book. When
// includeDeleted is true, soft-deleted reviews are returned too; the review
// creation response has always included them.
func (r *repository) GetAllReviewsForBook(bookID primitive.ObjectID, includeDeleted bool) ([]*data.Review, error) {
	query := bson.M{"bookId": bookID}
	if !includeDeleted {
		query["isDeleted"] = false
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	cursor, err := r.db.Collection("reviews").Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	reviews := []*data.Review{}
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview writes the mutable fields of a review record back to the
// store.
func (r *repository) UpdateReview(review *data.Review) error {
	review.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"reviewedBy": review.ReviewedBy,
		"rating":     review.Rating,
		"review":     review.Review,
		"isDeleted":  review.IsDeleted,
		"updatedAt":  review.UpdatedAt,
	}}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	res, err := r.db.Collection("reviews").UpdateByID(ctx, review.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

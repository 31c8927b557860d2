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

type users interface {
	CreateUser(user *data.User) error
	GetUserByID(id primitive.ObjectID) (*data.User, error)
	GetUserByEmail(email string) (*data.User, error)
	UserExistsWithPhone(phone string) (bool, error)
	UserExistsWithEmail(email string) (bool, error)
}

// CreateUser inserts a new user record and fills in its generated ID and
// timestamps.
func (r *repository) CreateUser(user *data.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	res, err := r.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetUserByID retrieves a user record by its ID.
func (r *repository) GetUserByID(id primitive.ObjectID) (*data.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	var user data.User
	err := r.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &user, nil
}

// GetUserByEmail retrieves a user record by its email address.
func (r *repository) GetUserByEmail(email string) (*data.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	var user data.User
	err := r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &user, nil
}

// UserExistsWithPhone reports whether any user record carries the phone
// number.
func (r *repository) UserExistsWithPhone(phone string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	count, err := r.db.Collection("users").CountDocuments(ctx, bson.M{"phone": phone})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserExistsWithEmail reports whether any user record carries the email
// address.
func (r *repository) UserExistsWithEmail(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	count, err := r.db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines the app's data-access layer.
type Repository interface {
	books
	reviews
	users
}

type repository struct {
	db      *mongo.Database
	timeout time.Duration
}

// New creates a new instance of Repository backed by a MongoDB database.
// Every operation runs under its own context with the given timeout.
func New(db *mongo.Database, timeout time.Duration) *repository {
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &repository{db: db, timeout: timeout}
}

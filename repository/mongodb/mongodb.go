// Package mongodb bootstraps the MongoDB client used by the repository.
package mongodb

import (
	"context"
	"time"

	"github.com/emzola/bookhaven/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// OpenDBConn connects to the MongoDB deployment named in the config and
// verifies the connection with a ping before returning the client.
func OpenDBConn(cfg config.Config) (*mongo.Client, error) {
	timeout, err := time.ParseDuration(cfg.Database.Timeout)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.Database.URI).
		SetTimeout(timeout))
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, err
	}
	return client, nil
}

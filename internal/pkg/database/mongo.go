package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/montirku/montirku/internal/pkg/models"
)

// MongoClient wraps the document store connection
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{
		client:   client,
		database: client.Database(config.Database),
	}, nil
}

// Collection returns a handle to the named collection
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping verifies the connection is still healthy
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

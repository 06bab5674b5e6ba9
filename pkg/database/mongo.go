package database

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoDB wraps the client so callers get the same open/close lifecycle
// as the Postgres pool.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Database returns the configured database handle.
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close disconnects the client.
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = m.client.Disconnect(ctx)
}

// InitMongo connects the client and verifies the connection
func InitMongo(config utils.MongoConfig) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &MongoDB{
		client:   client,
		database: client.Database(config.Database),
	}, nil
}

package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// MongoDBClient wraps the process-wide MongoDB connection, opened once at
// startup and shared by every request.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to MongoDB and verifies the connection.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return &MongoDBClient{Client: client}, nil
}

// Ping checks store connectivity, used by the health endpoint.
func (c *MongoDBClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the connection.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
}

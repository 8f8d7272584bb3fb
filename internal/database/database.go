// Package database manages the MongoDB client lifecycle.
// The client is opened exactly once at process start and shared by every
// request — MongoDB drivers pool connections internally, so one client is
// both correct and cheaper than reconnecting per request.
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB client for the given connection string and
// verifies the server is actually reachable with a ping. Verifying up front
// matters: mongo.Connect alone does not dial, so without the ping a bad URI
// would only surface on the first real request. If the ping fails the
// half-open client is disconnected before the error is returned, so the
// caller never starts accepting traffic against a dead store.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Best-effort cleanup of the failed client; the ping error is the
		// one worth reporting.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// Disconnect closes the client and its connection pool. Called on shutdown.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	return nil
}

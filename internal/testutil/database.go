package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTestMongoURI = "mongodb://localhost:27017"

// SetupTestMongo returns a fresh orders collection on a live MongoDB.
// It honours TEST_MONGO_URI and skips the test when no server answers.
func SetupTestMongo(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		uri = defaultTestMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(time.Second))
	if err != nil {
		t.Fatalf("failed to create mongo client: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("test database not available: %v", err)
	}

	coll := client.Database("orderhub_test").Collection("orders")
	if _, err := coll.DeleteMany(ctx, map[string]interface{}{}); err != nil {
		t.Fatalf("failed to clean orders collection: %v", err)
	}

	return coll
}

// CleanupTestMongo empties the collection and disconnects its client.
func CleanupTestMongo(t *testing.T, coll *mongo.Collection) {
	t.Helper()

	if coll == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := coll.DeleteMany(ctx, map[string]interface{}{}); err != nil {
		t.Logf("failed to clean orders collection: %v", err)
	}

	if err := coll.Database().Client().Disconnect(ctx); err != nil {
		t.Logf("failed to disconnect mongo client: %v", err)
	}
}

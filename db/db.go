package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConfigured is returned when an operation needs the database
// but no connection was established at startup.
var ErrNotConfigured = errors.New("database not configured")

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// Available reports whether a database connection was established
func Available() bool {
	return MongoDatabase != nil
}

// extractDBName parses the database name from the URI, defaulting to "joybait"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "joybait"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "joybait"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided
// URI. dbName overrides the name embedded in the URI when non-empty.
func ConnectMongoDB(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	if dbName == "" {
		dbName = extractDBName(uri)
	}
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return nil
}

// ListCollectionNames returns the names of all collections, used by the
// connectivity diagnostic endpoint only.
func ListCollectionNames(ctx context.Context) ([]string, error) {
	if MongoDatabase == nil {
		return nil, ErrNotConfigured
	}
	return MongoDatabase.ListCollectionNames(ctx, bson.D{})
}

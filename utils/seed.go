package utils

import (
	"context"
	"log"
	"time"

	"joybait/db"
	"joybait/services"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedChallenges mirrors the static catalog into the challenge
// collection when it is empty. Reads still come from the in-memory
// catalog; the collection exists for future dynamic packs.
func SeedChallenges() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection("challenge")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Failed to count challenges: %v", err)
		return
	}
	if count > 0 {
		return
	}

	var documents []interface{}
	for _, challenge := range services.GetCatalog().All() {
		documents = append(documents, challenge)
	}

	if _, err := collection.InsertMany(ctx, documents); err != nil {
		log.Printf("Failed to seed challenges: %v", err)
		return
	}
	log.Printf("Seeded %d challenges", len(documents))
}

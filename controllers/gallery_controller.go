package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"joybait/db"
	"joybait/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	galleryDefaultLimit = 20
	galleryMaxLimit     = 50
)

// galleryLimit parses the limit query value, falling back to the
// default and capping at the maximum
func galleryLimit(raw string) int {
	limit := galleryDefaultLimit
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > galleryMaxLimit {
		limit = galleryMaxLimit
	}
	return limit
}

// Gallery returns the public reflection feed, newest first
func Gallery(ctx *gin.Context) {
	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	limit := galleryLimit(ctx.Query("limit"))

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("reflection").Find(
		dbCtx,
		bson.M{"is_public": true},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(int64(limit)),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching gallery"})
		return
	}
	defer cursor.Close(dbCtx)

	entries := []gin.H{}
	for cursor.Next(dbCtx) {
		var r models.Reflection
		if err := cursor.Decode(&r); err != nil {
			continue
		}
		entries = append(entries, gin.H{
			"id":           r.ID,
			"challenge_id": r.ChallengeID,
			"note":         r.Note,
			"mood_after":   r.MoodAfter,
			"created_at":   r.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, entries)
}

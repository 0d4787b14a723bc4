package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"joybait/db"
	"joybait/models"
	"joybait/services"
	"joybait/structs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmitReflection persists the reflection, then runs accrual on the
// user's progression state. A missing user is not a failure: the
// reflection is kept and accrual is skipped, an accepted MVP gap.
func SubmitReflection(ctx *gin.Context) {
	var request structs.ReflectionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	now := time.Now().UTC()
	reflection := models.Reflection{
		ID:          uuid.NewString(),
		UserID:      request.UserID,
		ChallengeID: request.ChallengeID,
		MoodBefore:  request.MoodBefore,
		MoodAfter:   request.MoodAfter,
		Note:        request.Note,
		IsPublic:    request.IsPublic,
		CreatedAt:   now,
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetCollection("reflection").InsertOne(dbCtx, reflection); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reflection", "message": err.Error()})
		return
	}

	if err := accrueForUser(dbCtx, request.UserID, now); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progression", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reflection_id": reflection.ID})
}

// accrueForUser loads the user, advances XP/streak and persists the
// result. The per-user lock serializes the read-modify-write so two
// concurrent reflections cannot accrue from the same stale snapshot.
func accrueForUser(ctx context.Context, userID string, now time.Time) error {
	unlock := services.LockUser(userID)
	defer unlock()

	users := db.GetCollection("user")

	var user models.User
	err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		log.Printf("reflection saved for unknown user %s, skipping accrual", userID)
		return nil
	}
	if err != nil {
		return err
	}

	newState, xpGained := services.Advance(services.StateFromUser(user), now)

	_, err = users.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$set": bson.M{
				"last_completed_at": newState.LastCompletedAt,
				"streak":            newState.Streak,
			},
			"$inc": bson.M{"xp": xpGained},
		},
	)
	return err
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"joybait/db"
	"joybait/models"
	"joybait/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recentReflectionLimit is how many reflections a profile view carries
const recentReflectionLimit = 5

// GetProfile returns the user's progression, earned badges and the
// most recent reflections
func GetProfile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection("user").FindOne(dbCtx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	cursor, err := db.GetCollection("reflection").Find(
		dbCtx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(recentReflectionLimit),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reflections"})
		return
	}
	defer cursor.Close(dbCtx)

	var recent []models.Reflection
	if err := cursor.All(dbCtx, &recent); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading reflections"})
		return
	}

	ctx.JSON(http.StatusOK, services.BuildProfile(user, recent))
}

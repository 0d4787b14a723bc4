package controllers

import (
	"context"
	"net/http"
	"time"

	"joybait/db"
	"joybait/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// SetMode updates a user's play mode. Matching zero documents is not
// an error; only unavailable storage fails.
func SetMode(ctx *gin.Context) {
	userID := ctx.Param("userId")

	var request structs.ModeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.GetCollection("user").UpdateOne(
		dbCtx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"mode": request.Mode}},
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mode", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "mode": request.Mode})
}

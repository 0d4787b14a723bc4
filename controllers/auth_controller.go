package controllers

import (
	"context"
	"net/http"
	"time"

	"joybait/db"
	"joybait/models"
	"joybait/structs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Signup creates an anonymous-ish user document and returns its id.
// No email uniqueness check for the MVP.
func Signup(ctx *gin.Context) {
	var request structs.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	user := models.User{
		ID:          uuid.NewString(),
		Name:        request.Name,
		Email:       request.Email,
		Mode:        request.Mode,
		XP:          0,
		Streak:      0,
		Preferences: map[string]string{},
		CreatedAt:   time.Now().UTC(),
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.GetCollection("user").InsertOne(dbCtx, user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user_id": user.ID})
}

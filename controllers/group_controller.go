package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
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

// newGroupCode derives a short invite code from a fresh uuid
func newGroupCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// CreateGroup creates a group owned by the given user, with the owner
// as first member, and returns the generated invite code
func CreateGroup(ctx *gin.Context) {
	var request structs.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	group := models.Group{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Code:      newGroupCode(),
		OwnerID:   request.OwnerID,
		MemberIDs: []string{request.OwnerID},
		CreatedAt: time.Now().UTC(),
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.GetCollection("group").InsertOne(dbCtx, group); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"group_id": group.ID, "code": group.Code})
}

// JoinGroup adds a user to the group matching the invite code.
// Joining a group twice is a no-op.
func JoinGroup(ctx *gin.Context) {
	var request structs.JoinGroupRequest
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

	var group models.Group
	err := db.GetCollection("group").FindOneAndUpdate(
		dbCtx,
		bson.M{"code": strings.ToUpper(request.Code)},
		bson.M{"$addToSet": bson.M{"member_ids": request.UserID}},
	).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group", "message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "group_id": group.ID})
}

// GetGroup returns a group document by id
func GetGroup(ctx *gin.Context) {
	groupID := ctx.Param("groupId")

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var group models.Group
	err := db.GetCollection("group").FindOne(dbCtx, bson.M{"_id": groupID}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// SetGroupChallenge picks today's challenge from the filtered catalog
// and stores it as the group's current challenge
func SetGroupChallenge(ctx *gin.Context) {
	groupID := ctx.Param("groupId")

	var filter structs.ChallengeFilter
	if err := ctx.ShouldBindJSON(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if !db.Available() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": db.ErrNotConfigured.Error()})
		return
	}

	candidates := services.GetCatalog().Filter(filter)
	challenge, err := services.SelectForDay(time.Now().UTC(), candidates)
	if err != nil {
		if errors.Is(err, services.ErrNoMatch) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No challenges match those filters yet"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection("group").UpdateOne(
		dbCtx,
		bson.M{"_id": groupID},
		bson.M{"$set": bson.M{"current_challenge_id": challenge.ID}},
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	ctx.JSON(http.StatusOK, challenge)
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"joybait/services"
	"joybait/structs"

	"github.com/gin-gonic/gin"
)

// NextChallenge filters the catalog and returns today's pick from the
// daily rotation
func NextChallenge(ctx *gin.Context) {
	var filter structs.ChallengeFilter
	if err := ctx.ShouldBindJSON(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
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

	ctx.JSON(http.StatusOK, challenge)
}

// ListChallenges returns the full static catalog
func ListChallenges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.GetCatalog().All())
}

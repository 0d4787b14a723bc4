package routes

import (
	"joybait/controllers"

	"github.com/gin-gonic/gin"
)

func NextChallengeRouteHandler(ctx *gin.Context) {
	controllers.NextChallenge(ctx)
}

func ListChallengesRouteHandler(ctx *gin.Context) {
	controllers.ListChallenges(ctx)
}

package routes

import (
	"joybait/controllers"

	"github.com/gin-gonic/gin"
)

func CreateGroupRouteHandler(ctx *gin.Context) {
	controllers.CreateGroup(ctx)
}

func JoinGroupRouteHandler(ctx *gin.Context) {
	controllers.JoinGroup(ctx)
}

func GetGroupRouteHandler(ctx *gin.Context) {
	controllers.GetGroup(ctx)
}

func SetGroupChallengeRouteHandler(ctx *gin.Context) {
	controllers.SetGroupChallenge(ctx)
}

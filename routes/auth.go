package routes

import (
	"joybait/controllers"

	"github.com/gin-gonic/gin"
)

func SignupRouteHandler(ctx *gin.Context) {
	controllers.Signup(ctx)
}

func SetModeRouteHandler(ctx *gin.Context) {
	controllers.SetMode(ctx)
}

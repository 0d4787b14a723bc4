package routes

import (
	"joybait/controllers"

	"github.com/gin-gonic/gin"
)

func RootRouteHandler(ctx *gin.Context) {
	controllers.Root(ctx)
}

func TestDatabaseRouteHandler(ctx *gin.Context) {
	controllers.TestDatabase(ctx)
}

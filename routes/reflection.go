package routes

import (
	"joybait/controllers"

	"github.com/gin-gonic/gin"
)

func SubmitReflectionRouteHandler(ctx *gin.Context) {
	controllers.SubmitReflection(ctx)
}

func GalleryRouteHandler(ctx *gin.Context) {
	controllers.Gallery(ctx)
}

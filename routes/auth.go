package routes

import (
	"lawyerhub/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRouteHandler(ctx *gin.Context) {
	controllers.Register(ctx)
}

func LoginRouteHandler(ctx *gin.Context) {
	controllers.Login(ctx)
}

func VerifyTokenRouteHandler(ctx *gin.Context) {
	controllers.VerifyToken(ctx)
}

package routes

import (
	"lawyerhub/controllers"

	"github.com/gin-gonic/gin"
)

func ListLawyersRouteHandler(ctx *gin.Context) {
	controllers.ListLawyers(ctx)
}

func GetFeaturedLawyersRouteHandler(ctx *gin.Context) {
	controllers.GetFeaturedLawyers(ctx)
}

func GetLawyerRouteHandler(ctx *gin.Context) {
	controllers.GetLawyer(ctx)
}

func UpdateLawyerProfileRouteHandler(ctx *gin.Context) {
	controllers.UpdateLawyerProfile(ctx)
}

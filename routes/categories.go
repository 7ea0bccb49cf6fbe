package routes

import (
	"lawyerhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetCategoriesRouteHandler(ctx *gin.Context) {
	controllers.GetCategories(ctx)
}

func SeedCategoriesRouteHandler(ctx *gin.Context) {
	controllers.SeedCategories(ctx)
}

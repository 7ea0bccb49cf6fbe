package routes

import (
	"lawyerhub/controllers"

	"github.com/gin-gonic/gin"
)

func PostReviewRouteHandler(ctx *gin.Context) {
	controllers.PostReview(ctx)
}

func ListReviewsRouteHandler(ctx *gin.Context) {
	controllers.ListReviews(ctx)
}

package routes

import (
	"lawyerhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetRewardStatusRouteHandler(ctx *gin.Context) {
	controllers.GetRewardStatus(ctx)
}

func GetRewardHistoryRouteHandler(ctx *gin.Context) {
	controllers.GetRewardHistory(ctx)
}

func RecomputeRewardsRouteHandler(ctx *gin.Context) {
	controllers.RecomputeRewards(ctx)
}

func RunSweepRouteHandler(ctx *gin.Context) {
	controllers.RunSweep(ctx)
}

package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"
	"lawyerhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sweepConcurrency = 8

// SetSweepConcurrency overrides the batch recompute fan-out limit
func SetSweepConcurrency(n int) {
	if n > 0 {
		sweepConcurrency = n
	}
}

// GetRewardStatus returns a lawyer's stored reward state
func GetRewardStatus(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var lawyer models.User
	err = db.GetCollection(db.UsersCollection).FindOne(
		dbCtx, bson.M{"_id": lawyerID, "role": models.RoleLawyer}).Decode(&lawyer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	badges := lawyer.Badges
	if badges == nil {
		badges = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"lawyerId":         lawyer.ID.Hex(),
		"points":           lawyer.RewardPoints,
		"tier":             lawyer.RewardTier,
		"badges":           badges,
		"searchBoost":      lawyer.SearchBoost,
		"rewardsUpdatedAt": lawyer.RewardsUpdatedAt,
	})
}

// GetRewardHistory returns a lawyer's tier and badge events newest first
func GetRewardHistory(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("perPage", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	history := db.GetCollection(db.RewardHistoryCollection)
	filter := bson.M{"lawyerId": lawyerID}

	total, err := history.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reward history"})
		return
	}

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	cursor, err := history.Find(dbCtx, filter, findOptions)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reward history"})
		return
	}
	defer cursor.Close(dbCtx)

	var entries []models.RewardHistory
	if err := cursor.All(dbCtx, &entries); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reward history"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total":   total,
		"page":    page,
		"perPage": perPage,
		"history": entries,
	})
}

// RecomputeRewards reruns the engine for one lawyer. Lawyers can trigger
// their own recompute, admins anyone's.
func RecomputeRewards(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	if ctx.GetString("userID") != lawyerID.Hex() && ctx.GetString("role") != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := services.ProcessLawyerRewards(dbCtx, lawyerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute rewards"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Rewards recomputed",
		"points":      result.Points,
		"tier":        result.Tier,
		"badges":      result.Badges,
		"searchBoost": result.SearchBoost,
	})
}

// RunSweep recomputes rewards for every listed lawyer. Admin only.
func RunSweep(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := services.RunRewardSweep(dbCtx, sweepConcurrency)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Sweep completed",
		"processed": result.Processed,
		"failed":    result.Failed,
		"duration":  result.Duration.String(),
	})
}

package controllers

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"
	"lawyerhub/services"
	"lawyerhub/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostReview stores a client's review, refreshes the lawyer's rating and
// runs the reward engine over the updated metrics
func PostReview(ctx *gin.Context) {
	if ctx.GetString("role") != models.RoleClient {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only clients can post reviews"})
		return
	}

	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(ctx.GetString("userID"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request structs.PostReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	reviews := db.GetCollection(db.ReviewsCollection)

	var lawyer models.User
	if err := users.FindOne(dbCtx, bson.M{"_id": lawyerID, "role": models.RoleLawyer}).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	existing, err := reviews.CountDocuments(dbCtx, bson.M{"userId": userID, "lawyerId": lawyerID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing > 0 {
		ctx.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this lawyer"})
		return
	}

	review := models.Review{
		UserID:    userID,
		LawyerID:  lawyerID,
		Rating:    request.Rating,
		Comment:   request.Comment,
		CreatedAt: time.Now(),
	}
	inserted, err := reviews.InsertOne(dbCtx, review)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post review"})
		return
	}

	if err := refreshLawyerRating(dbCtx, lawyerID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	// One engine for every scoring path
	if _, err := services.ProcessLawyerRewards(dbCtx, lawyerID); err != nil {
		log.Printf("Reward update after review failed for %s: %v", lawyerID.Hex(), err)
	}

	reviewID, _ := inserted.InsertedID.(primitive.ObjectID)
	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Review posted successfully",
		"reviewId": reviewID.Hex(),
	})
}

// refreshLawyerRating recomputes the average rating and review count from
// the reviews collection and stores them on the lawyer document
func refreshLawyerRating(ctx context.Context, lawyerID primitive.ObjectID) error {
	reviews := db.GetCollection(db.ReviewsCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"lawyerId": lawyerID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"avg":    bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}}},
	}
	cursor, err := reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var stats struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return err
		}
	}

	rating := math.Round(stats.Avg*10) / 10
	_, err = db.GetCollection(db.UsersCollection).UpdateOne(ctx, bson.M{"_id": lawyerID}, bson.M{
		"$set": bson.M{"rating": rating, "reviewCount": stats.Count},
	})
	return err
}

// ListReviews returns a lawyer's reviews with pagination
func ListReviews(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("perPage", "10"))
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := db.GetCollection(db.ReviewsCollection).CountDocuments(dbCtx, bson.M{"lawyerId": lawyerID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	reviewList, err := fetchReviews(dbCtx, lawyerID, (page-1)*perPage, perPage)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total":   total,
		"page":    page,
		"perPage": perPage,
		"reviews": reviewList,
	})
}

// fetchReviews loads a page of reviews newest first and resolves reviewer names
func fetchReviews(ctx context.Context, lawyerID primitive.ObjectID, skip, limit int) ([]models.Review, error) {
	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := db.GetCollection(db.ReviewsCollection).Find(ctx, bson.M{"lawyerId": lawyerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviewList []models.Review
	if err := cursor.All(ctx, &reviewList); err != nil {
		return nil, err
	}

	users := db.GetCollection(db.UsersCollection)
	for i := range reviewList {
		var reviewer models.User
		err := users.FindOne(ctx, bson.M{"_id": reviewList[i].UserID},
			options.FindOne().SetProjection(bson.M{"name": 1})).Decode(&reviewer)
		if err == nil {
			reviewList[i].ReviewerName = reviewer.Name
		}
	}
	return reviewList, nil
}

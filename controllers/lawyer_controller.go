package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lawyerhub/db"
	"lawyerhub/internal/directory"
	"lawyerhub/models"
	"lawyerhub/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sortableFields = map[string]bool{
	"rating":       true,
	"reviewCount":  true,
	"rewardPoints": true,
	"searchBoost":  true,
	"createdAt":    true,
}

var featuredTTL = 5 * time.Minute

// SetFeaturedTTL overrides the featured-list cache TTL
func SetFeaturedTTL(seconds int) {
	if seconds > 0 {
		featuredTTL = time.Duration(seconds) * time.Second
	}
}

// ListLawyers returns verified lawyers with filters, sorting and pagination
func ListLawyers(ctx *gin.Context) {
	query := bson.M{"role": models.RoleLawyer, "profileComplete": true, "isVerified": true}

	if specialty := ctx.Query("specialty"); specialty != "" {
		query["specialty"] = bson.M{"$in": []string{specialty}}
	}
	if city := ctx.Query("city"); city != "" {
		query["location.city"] = city
	}
	if minRating, err := strconv.ParseFloat(ctx.DefaultQuery("minRating", "0"), 64); err == nil && minRating > 0 {
		query["rating"] = bson.M{"$gte": minRating}
	}
	if tier := ctx.Query("rewardTier"); tier != "" {
		query["rewardTier"] = tier
	}

	sortBy := ctx.DefaultQuery("sortBy", "rating")
	if !sortableFields[sortBy] {
		sortBy = "rating"
	}
	sortOrder := -1
	if ctx.Query("sortOrder") == "asc" {
		sortOrder = 1
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

	users := db.GetCollection(db.UsersCollection)

	total, err := users.CountDocuments(dbCtx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lawyers"})
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage)).
		SetProjection(bson.M{"password": 0})

	cursor, err := users.Find(dbCtx, query, findOptions)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lawyers"})
		return
	}
	defer cursor.Close(dbCtx)

	var lawyers []models.User
	if err := cursor.All(dbCtx, &lawyers); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode lawyers"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total":   total,
		"page":    page,
		"perPage": perPage,
		"lawyers": lawyers,
	})
}

// GetFeaturedLawyers returns the boost-ranked top of the directory, served
// from the Redis cache when available
func GetFeaturedLawyers(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if payload, ok := directory.GetFeatured(dbCtx); ok {
		ctx.Data(http.StatusOK, "application/json", payload)
		return
	}

	query := bson.M{"role": models.RoleLawyer, "profileComplete": true, "isVerified": true}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "searchBoost", Value: -1}, {Key: "rating", Value: -1}}).
		SetLimit(10).
		SetProjection(bson.M{"password": 0})

	cursor, err := db.GetCollection(db.UsersCollection).Find(dbCtx, query, findOptions)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured lawyers"})
		return
	}
	defer cursor.Close(dbCtx)

	var lawyers []models.User
	if err := cursor.All(dbCtx, &lawyers); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode featured lawyers"})
		return
	}

	response := gin.H{"lawyers": lawyers}
	if payload, err := json.Marshal(response); err == nil {
		directory.SetFeatured(dbCtx, payload, featuredTTL)
	}

	ctx.JSON(http.StatusOK, response)
}

// GetLawyer returns one lawyer's profile with their most recent reviews
func GetLawyer(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lawyer models.User
	err = db.GetCollection(db.UsersCollection).FindOne(
		dbCtx,
		bson.M{"_id": lawyerID, "role": models.RoleLawyer},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&lawyer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	recentReviews, err := fetchReviews(dbCtx, lawyerID, 0, 5)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"lawyer":        lawyer,
		"recentReviews": recentReviews,
	})
}

// UpdateLawyerProfile applies profile edits and re-evaluates completeness
func UpdateLawyerProfile(ctx *gin.Context) {
	lawyerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lawyer id"})
		return
	}

	// Lawyers edit their own profile, admins edit anyone's
	if ctx.GetString("userID") != lawyerID.Hex() && ctx.GetString("role") != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now(), "lastActivityAt": time.Now()}
	if request.Name != "" {
		update["name"] = request.Name
	}
	if len(request.Specialty) > 0 {
		update["specialty"] = request.Specialty
	}
	if request.Location.City != "" || request.Location.State != "" || request.Location.Country != "" {
		update["location"] = request.Location
	}
	if request.Bio != "" {
		update["bio"] = request.Bio
	}
	if len(request.Education) > 0 {
		update["education"] = request.Education
	}
	if len(request.Experience) > 0 {
		update["experience"] = request.Experience
	}
	if request.LicenseInfo != "" {
		update["licenseInfo"] = request.LicenseInfo
	}
	if request.ProfileImage != "" {
		update["profileImage"] = request.ProfileImage
	}
	if request.ContactInfo != "" {
		update["contactInfo"] = request.ContactInfo
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)

	var lawyer models.User
	if err := users.FindOne(dbCtx, bson.M{"_id": lawyerID, "role": models.RoleLawyer}).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !lawyer.ProfileComplete && profileCompleteAfter(&lawyer, &request) {
		update["profileComplete"] = true
	}

	result, err := users.UpdateOne(dbCtx, bson.M{"_id": lawyerID}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.ModifiedCount == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No changes made to profile"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// profileCompleteAfter checks whether the required profile fields are all
// populated once the pending update is applied
func profileCompleteAfter(lawyer *models.User, request *structs.UpdateProfileRequest) bool {
	name := lawyer.Name
	if request.Name != "" {
		name = request.Name
	}
	specialty := lawyer.Specialty
	if len(request.Specialty) > 0 {
		specialty = request.Specialty
	}
	city := lawyer.Location.City
	if request.Location.City != "" {
		city = request.Location.City
	}
	bio := lawyer.Bio
	if request.Bio != "" {
		bio = request.Bio
	}
	license := lawyer.LicenseInfo
	if request.LicenseInfo != "" {
		license = request.LicenseInfo
	}
	return name != "" && len(specialty) > 0 && city != "" && bio != "" && license != ""
}

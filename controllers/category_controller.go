package controllers

import (
	"context"
	"net/http"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"
	"lawyerhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCategories lists the practice areas with the number of listed lawyers
// in each
func GetCategories(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.CategoriesCollection).Find(
		dbCtx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	defer cursor.Close(dbCtx)

	var categories []models.Category
	if err := cursor.All(dbCtx, &categories); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode categories"})
		return
	}

	users := db.GetCollection(db.UsersCollection)
	type categoryWithCount struct {
		models.Category
		LawyerCount int64 `json:"lawyerCount"`
	}
	response := make([]categoryWithCount, 0, len(categories))
	for _, category := range categories {
		count, err := users.CountDocuments(dbCtx, bson.M{
			"role":            models.RoleLawyer,
			"profileComplete": true,
			"isVerified":      true,
			"specialty":       category.Name,
		})
		if err != nil {
			count = 0
		}
		response = append(response, categoryWithCount{Category: category, LawyerCount: count})
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": response})
}

// SeedCategories loads the default practice areas. No-op when the
// collection already has data.
func SeedCategories(ctx *gin.Context) {
	utils.SeedCategories()
	ctx.JSON(http.StatusOK, gin.H{"message": "Categories seeded"})
}

package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"
	"lawyerhub/reward"
	"lawyerhub/structs"
	"lawyerhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Register creates a new client or lawyer account
func Register(ctx *gin.Context) {
	var request structs.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)

	count, err := users.CountDocuments(dbCtx, bson.M{"email": request.Email})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	role := request.Role
	if role == "" {
		role = models.RoleClient
	}

	now := time.Now()
	user := models.User{
		Email:     request.Email,
		Password:  hashed,
		Name:      request.Name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Lawyer accounts start in the standard tier with empty reward state
	if role == models.RoleLawyer {
		user.Specialty = request.Specialty
		user.Bio = request.Bio
		user.LicenseInfo = request.LicenseInfo
		user.RewardTier = reward.TierStandard
		user.Badges = []string{}
		user.SearchBoost = 1.0
		user.LastActivityAt = now
	}

	result, err := users.InsertOne(dbCtx, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  insertedID.Hex(),
	})
}

// Login checks credentials and issues a JWT
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(dbCtx, bson.M{"email": request.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"accessToken": token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// VerifyToken reports whether the presented JWT is still valid
func VerifyToken(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token format"})
		return
	}

	if _, err := utils.ParseJWTToken(parts[1]); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token is valid"})
}

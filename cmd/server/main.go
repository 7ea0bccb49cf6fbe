package main

import (
	"flag"
	"log"
	"strconv"

	"lawyerhub/config"
	"lawyerhub/controllers"
	"lawyerhub/db"
	"lawyerhub/internal/directory"
	"lawyerhub/middlewares"
	"lawyerhub/models"
	"lawyerhub/routes"
	"lawyerhub/services"
	"lawyerhub/utils"
	"lawyerhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./config/config.prod.yml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.ExpiryHours)
	services.InitRewardService(cfg)
	controllers.SetFeaturedTTL(cfg.Redis.FeaturedTTLSecs)
	controllers.SetSweepConcurrency(cfg.SweepConcurrency())

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis is optional, the featured list falls back to Mongo without it
	if err := directory.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Redis unavailable, featured cache disabled: %v", err)
	}

	utils.SeedCategories()

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes
	router.POST("/register", routes.RegisterRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)

	router.GET("/lawyers", routes.ListLawyersRouteHandler)
	router.GET("/lawyers/featured", routes.GetFeaturedLawyersRouteHandler)
	router.GET("/lawyers/:id", routes.GetLawyerRouteHandler)
	router.GET("/lawyers/:id/reviews", routes.ListReviewsRouteHandler)
	router.GET("/lawyers/:id/rewards", routes.GetRewardStatusRouteHandler)
	router.GET("/lawyers/:id/rewards/history", routes.GetRewardHistoryRouteHandler)
	router.GET("/categories", routes.GetCategoriesRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.PUT("/lawyers/:id", routes.UpdateLawyerProfileRouteHandler)
		auth.POST("/lawyers/:id/reviews", routes.PostReviewRouteHandler)
		auth.POST("/lawyers/:id/rewards/recompute", routes.RecomputeRewardsRouteHandler)

		// WebSocket endpoint for live tier and badge events
		auth.GET("/ws/rewards", websocket.RewardsWebSocketHandler)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/rewards/sweep", routes.RunSweepRouteHandler)
		admin.POST("/categories/seed", routes.SeedCategoriesRouteHandler)
	}

	return router
}

package main

import (
	"log"
	"strconv"

	"joybait/config"
	"joybait/db"
	"joybait/routes"
	"joybait/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then the yaml config with env overrides
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The server still starts without storage; storage-backed
	// endpoints report the failure per request.
	if cfg.Database.URI == "" {
		log.Println("DATABASE_URL not set, running without storage")
	} else if err := db.ConnectMongoDB(cfg.Database.URI, cfg.Database.Name); err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
	} else {
		log.Println("Connected to MongoDB")
		utils.SeedChallenges()
	}

	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	router.GET("/", routes.RootRouteHandler)
	router.GET("/test", routes.TestDatabaseRouteHandler)

	router.POST("/auth/signup", routes.SignupRouteHandler)
	router.POST("/user/:userId/mode", routes.SetModeRouteHandler)
	router.GET("/user/:userId/profile", routes.GetProfileRouteHandler)

	router.POST("/challenge/next", routes.NextChallengeRouteHandler)
	router.GET("/challenges", routes.ListChallengesRouteHandler)

	router.POST("/reflect", routes.SubmitReflectionRouteHandler)
	router.GET("/gallery", routes.GalleryRouteHandler)

	router.POST("/group", routes.CreateGroupRouteHandler)
	router.POST("/group/join", routes.JoinGroupRouteHandler)
	router.GET("/group/:groupId", routes.GetGroupRouteHandler)
	router.POST("/group/:groupId/challenge", routes.SetGroupChallengeRouteHandler)

	return router
}

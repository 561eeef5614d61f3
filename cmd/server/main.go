package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"localstore_backend/internal/database"
	"localstore_backend/internal/router"
	"localstore_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load .env when present; real deployments set variables directly.
	if err := godotenv.Load(); err == nil {
		utils.LogInfo("Loaded configuration from .env file")
	}

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "localstore_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "localstore_password")
	dbName := utils.Getenv("DB_NAME", "localstore_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	// Initialize Database
	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration. The menu is consumed by public storefront pages,
	// so origins default to wide open unless restricted via env.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	config := cors.DefaultConfig()
	if corsAllowedOriginsEnv != "" {
		config.AllowOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	dbConn := database.GetDB()
	router.Setup(engine, dbConn)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

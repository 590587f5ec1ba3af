package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"projecthub-backend/internal/api/routes"
	"projecthub-backend/internal/config"
	"projecthub-backend/internal/logger"
	"projecthub-backend/internal/store"

	_ "projecthub-backend/docs" // This is needed for swag
)

//	@title			ProjectHub Backend API
//	@version		1.0
//	@description	Mock data and query backend for the ProjectHub dashboard, providing endpoints for managing users, projects, tasks, notifications and the activity feed.

//	@contact.name	API Support
//	@contact.email	support@projecthub.dev

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, cfg.Environment)

	// Seed the in-memory store
	s, err := store.Seed()
	if err != nil {
		logrus.Fatal("Failed to seed store:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(s, cfg)

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"clinic-care-server/internal/config"
	"clinic-care-server/internal/logger"
	"clinic-care-server/internal/metrics"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		zapLogger.Fatal("Error connecting to database", zap.Error(err))
	}

	if cfg.AdminPassword != "" {
		if err := models.EnsureAdminUser(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			zapLogger.Fatal("Error seeding admin user", zap.Error(err))
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	collector := metrics.NewCollector("cliniccare")

	// Set up routes
	routes.SetupRoutes(router, db, cfg, zapLogger, collector)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(serverAddr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"healthmate-server/internal/ai"
	"healthmate-server/internal/config"
	"healthmate-server/internal/logger"
	"healthmate-server/internal/routes"
)

func main() {
	// Load environment variables; a missing .env file is fine in production.
	_ = godotenv.Load()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Error loading config: %v", err))
	}

	log := logger.New(cfg.LogFilePath, cfg.IsProduction())
	defer log.Sync()

	// Model clients are constructed once here and injected everywhere.
	reportModel := ai.NewOpenAIModel(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	chatModel, err := ai.NewGeminiModel(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal("Error creating Gemini client", zap.Error(err))
	}
	defer chatModel.Close()

	aiService := ai.NewService(reportModel, chatModel, log)

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, aiService, cfg, log)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("Server running", zap.String("port", cfg.Port))
	if err := router.Run(serverAddr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

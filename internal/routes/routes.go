package routes

import (
	"healthmate-server/internal/ai"
	"healthmate-server/internal/chat"
	"healthmate-server/internal/config"
	"healthmate-server/internal/handlers"
	"healthmate-server/internal/middleware"
	"healthmate-server/internal/workflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, aiService *ai.Service, cfg *config.Config, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Session stores are in-memory only; nothing survives a restart.
	workflowSessions := workflow.NewManager(cfg.SessionTTL)
	chatSessions := chat.NewStore(cfg.SessionTTL)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(aiService, cfg.AIRequestTimeout, logger)
	toolsHandler := handlers.NewToolsHandler()
	chatbotHandler := handlers.NewChatbotHandler(aiService, chatSessions, chat.NoopSpeaker{}, cfg.AIRequestTimeout, logger)
	workflowHandler := handlers.NewWorkflowHandler(workflowSessions, aiService, cfg.AIRequestTimeout, logger)

	api := router.Group("/api/v1")
	{
		// Stateless endpoints mirroring the original surface
		api.POST("/analyze-report", analysisHandler.AnalyzeReport)
		api.POST("/generate-report", analysisHandler.GenerateReport)
		api.POST("/summary", toolsHandler.Summarize)
		api.POST("/verify", toolsHandler.Verify)
		api.POST("/chatbot", chatbotHandler.Ask)

		// Workflow sessions: upload -> questions -> report-type -> final-report
		workflowRoutes := api.Group("/workflow/sessions")
		{
			workflowRoutes.POST("", workflowHandler.CreateSession)
			workflowRoutes.GET("/:id", workflowHandler.GetSession)
			workflowRoutes.POST("/:id/start", workflowHandler.Start)
			workflowRoutes.POST("/:id/consent", workflowHandler.GiveConsent)
			workflowRoutes.POST("/:id/analyze", workflowHandler.Analyze)
			workflowRoutes.POST("/:id/answers", workflowHandler.SubmitAnswer)
			workflowRoutes.POST("/:id/report", workflowHandler.GenerateReport)
			workflowRoutes.POST("/:id/reset", workflowHandler.Reset)
		}

		// Chat sessions backing the assistant widget
		chatRoutes := api.Group("/chat/sessions")
		{
			chatRoutes.POST("", chatbotHandler.CreateSession)
			chatRoutes.GET("/:id", chatbotHandler.GetSession)
			chatRoutes.POST("/:id/messages", chatbotHandler.SendMessage)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

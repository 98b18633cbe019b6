package routes

import (
	"frc-scout-backend/internal/api/handlers"
	"frc-scout-backend/internal/api/middleware"
	"frc-scout-backend/internal/config"
	"frc-scout-backend/internal/repository"
	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	pitRepo := repository.NewPitScoutingRepository(db)
	matchRepo := repository.NewMatchScoreRepository(db)
	scheduleRepo := repository.NewMatchScheduleRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo)
	pitService := service.NewPitService(pitRepo, validator, cfg.MaxPhotoBytes)
	matchService := service.NewMatchService(matchRepo, validator)
	scheduleService := service.NewScheduleService(scheduleRepo, validator)
	analysisService := service.NewAnalysisService(pitRepo, matchRepo)
	exportService := service.NewExportService(pitRepo, matchRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	pitHandler := handlers.NewPitHandler(pitService)
	matchHandler := handlers.NewMatchHandler(matchService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("/join", sessionHandler.Join)
			sessions.GET("/:sessionID", sessionHandler.Get)

			// Pit scouting routes
			sessions.POST("/:sessionID/pit", pitHandler.Upsert)
			sessions.GET("/:sessionID/pit", pitHandler.List)
			sessions.GET("/:sessionID/pit/:team/photo", pitHandler.GetPhoto)

			// Match scoring routes
			sessions.POST("/:sessionID/matches", matchHandler.Record)
			sessions.GET("/:sessionID/matches", matchHandler.List)

			// Match schedule routes
			sessions.POST("/:sessionID/schedule", scheduleHandler.Add)
			sessions.GET("/:sessionID/schedule", scheduleHandler.List)
			sessions.POST("/:sessionID/schedule/:matchID/complete", scheduleHandler.MarkCompleted)

			// Dashboard, search and comparison routes
			sessions.GET("/:sessionID/dashboard", analysisHandler.Dashboard)
			sessions.GET("/:sessionID/search", analysisHandler.Search)
			sessions.GET("/:sessionID/search/capability", analysisHandler.FilterByCapability)
			sessions.GET("/:sessionID/compare", analysisHandler.Compare)

			// Export routes
			sessions.GET("/:sessionID/export/pit.csv", exportHandler.PitCSV)
			sessions.GET("/:sessionID/export/matches.csv", exportHandler.MatchCSV)
			sessions.GET("/:sessionID/export/report.xlsx", exportHandler.ReportXLSX)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

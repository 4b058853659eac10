package routes

import (
	"heptabet_backend/internal/config"
	"heptabet_backend/internal/handlers"
	"heptabet_backend/internal/middleware"
	"heptabet_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	cfg *config.Config,
	userRepo repositories.UserRepository,
) {
	guards := &handlers.Guards{
		Auth:         middleware.AuthMiddleware(cfg.JWT.Secret),
		OptionalAuth: middleware.OptionalAuthMiddleware(cfg.JWT.Secret),
		CSRF:         middleware.CSRFMiddleware(userRepo),
		Admin:        middleware.AdminMiddleware(),
	}

	api := router.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		appHandlers.AuthHandler.RegisterRoutes(api, guards)
		appHandlers.PredictionHandler.RegisterRoutes(api, guards)
		appHandlers.BlogHandler.RegisterRoutes(api, guards)
		appHandlers.TransactionHandler.RegisterRoutes(api, guards)
		appHandlers.UserHandler.RegisterRoutes(api, guards)
		appHandlers.AnalysisHandler.RegisterRoutes(api, guards)
	}
}

package handlers

import (
	"heptabet_backend/internal/services"
	"heptabet_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// Guards bundles the route middleware handlers attach to their own groups.
type Guards struct {
	// Auth rejects requests without a valid session.
	Auth gin.HandlerFunc
	// OptionalAuth resolves a session when present, passes anonymous
	// requests through.
	OptionalAuth gin.HandlerFunc
	// CSRF validates the anti-forgery header on unsafe methods.
	CSRF gin.HandlerFunc
	// Admin requires the admin role; runs after Auth.
	Admin gin.HandlerFunc
}

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	PredictionHandler  *PredictionHandler
	BlogHandler        *BlogHandler
	TransactionHandler *TransactionHandler
	UserHandler        *UserHandler
	AnalysisHandler    *AnalysisHandler
}

func NewAppHandlers(sc *services.ServiceContainer, env string) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService, env),
		PredictionHandler:  NewPredictionHandler(base, sc.PredictionService),
		BlogHandler:        NewBlogHandler(base, sc.BlogService),
		TransactionHandler: NewTransactionHandler(base, sc.TransactionService),
		UserHandler:        NewUserHandler(base, sc.UserService),
		AnalysisHandler:    NewAnalysisHandler(base, sc.AnalysisService),
	}
}

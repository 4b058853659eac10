package services

import (
	"time"

	"heptabet_backend/internal/config"
	"heptabet_backend/internal/pkg/email"
	"heptabet_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	PredictionService  PredictionService
	BlogService        BlogService
	TransactionService TransactionService
	UserService        UserService
	AnalysisService    AnalysisService

	// UserRepo is exposed for the request-forgery middleware, which needs
	// direct access to per-account secrets.
	UserRepo repositories.UserRepository
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	predictionRepo := repositories.NewPredictionRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	return &ServiceContainer{
		AuthService: NewAuthService(
			userRepo,
			emailProvider,
			cfg.JWT.Secret,
			time.Duration(cfg.JWT.TTLHours)*time.Hour,
			cfg.Admin.BootstrapEmail,
		),
		PredictionService:  NewPredictionService(predictionRepo, userRepo),
		BlogService:        NewBlogService(blogRepo, userRepo),
		TransactionService: NewTransactionService(transactionRepo, userRepo),
		UserService:        NewUserService(userRepo),
		AnalysisService:    NewAnalysisService(predictionRepo, userRepo, cfg.AI.APIKey, cfg.AI.Model),
		UserRepo:           userRepo,
	}
}

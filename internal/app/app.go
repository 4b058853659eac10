package app

import (
	"fmt"

	"heptabet_backend/internal/config"
	"heptabet_backend/internal/database"
	"heptabet_backend/internal/handlers"
	"heptabet_backend/internal/logger"
	"heptabet_backend/internal/middleware"
	"heptabet_backend/internal/pkg/email"
	"heptabet_backend/internal/routes"
	"heptabet_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// The unique-email check in the user repository depends on
		// driver errors being translated to gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Split from Run so tests can
// drive the router without binding a port.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := initializeEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, cfg, emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, cfg.Server.Env)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg, serviceContainer.UserRepo)

	return ginRouter
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured; reset codes will be logged instead of sent")
		return &LogEmailProvider{}
	}

	provider, err := email.NewSMTPSender(email.Config{
		SMTPHost:    cfg.Email.SMTPHost,
		SMTPPort:    cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUsername,
		Password:    cfg.Email.SMTPPassword,
		FromEmail:   cfg.Email.FromEmail,
		FromName:    cfg.Email.FromName,
		TimeoutSecs: cfg.Email.TimeoutSecs,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}
	return provider
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigin))
	return router
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/imovelhub/imovelhub-backend/internal/handlers/http"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/middleware"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/auth"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/config"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/i18n"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/logging"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/persistence/postgres"
	"github.com/imovelhub/imovelhub-backend/internal/services"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting imovelhub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Env != "production", logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	settingRepo := postgres.NewSettingRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar token manager
	tokens := auth.NewTokenManager(&cfg.JWT)

	// Inicializar services
	userService := services.NewUserService(userRepo, uow, logger)
	authService := services.NewAuthService(userRepo, tokens, logger)
	tenantService := services.NewTenantService(userRepo, logger)
	settingsService := services.NewSettingsService(settingRepo, logger)
	templateService := services.NewContractTemplateService()

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService, tenantService)
	authHandler := httphandlers.NewAuthHandler(authService, cfg.Env == "production")
	settingsHandler := httphandlers.NewSettingsHandler(settingsService)
	templateHandler := httphandlers.NewContractTemplateHandler(templateService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware de correlação de requisições
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS (credenciais habilitadas por causa do cookie)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, authService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authMiddleware.Authenticate(), authHandler.Me)
		}

		// Users
		users := v1.Group("/users", authMiddleware.Authenticate())
		{
			users.GET("/tenants", userHandler.ListTenants)
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.PATCH("/:id/status", userHandler.UpdateStatus)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/change-password", userHandler.ChangePassword)
		}

		// Settings (escrita restrita à administração da plataforma)
		settings := v1.Group("/settings", authMiddleware.Authenticate())
		{
			settings.GET("", settingsHandler.GetAll)
			settings.GET("/payment-config", settingsHandler.GetPaymentConfig)
			settings.PUT("/payment-config",
				middleware.RequireRoles(entities.RoleCEO, entities.RoleAdmin),
				settingsHandler.UpdatePaymentConfig)
			settings.GET("/:key", settingsHandler.Get)
			settings.PUT("/:key",
				middleware.RequireRoles(entities.RoleCEO, entities.RoleAdmin),
				settingsHandler.Set)
		}

		// Contract templates
		templates := v1.Group("/contract-templates", authMiddleware.Authenticate())
		{
			templates.GET("", templateHandler.List)
			templates.GET("/type/:type", templateHandler.ListByType)
			templates.GET("/:id", templateHandler.GetByID)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

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
	"github.com/joho/godotenv"

	httphandlers "github.com/statusmarket/statusmarket-backend/internal/handlers/http"
	"github.com/statusmarket/statusmarket-backend/internal/handlers/middleware"
	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/config"
	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/i18n"
	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/logging"
	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/persistence/postgres"
	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/storage"
	"github.com/statusmarket/statusmarket-backend/internal/services"
)

func main() {
	// .env é opcional em produção
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting statusmarket backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Adaptador do serviço de hospedagem de imagens
	imageStorage, err := storage.NewCloudinaryStorage(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize image storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	pagination := postgres.NewPagination(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	accountRepo := postgres.NewAccountRepository(db, pagination)
	listingRepo := postgres.NewListingRepository(db, pagination)

	// Inicializar services
	credentialService := services.NewCredentialService(cfg.JWT.Secret, cfg.JWT.Expiry)
	accountService := services.NewAccountService(accountRepo, listingRepo, credentialService, cfg.Admin.Email, logger)
	listingService := services.NewListingService(listingRepo, imageStorage, cfg.Cloudinary.Folder, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(accountService)
	listingHandler := httphandlers.NewListingHandler(listingService)
	userHandler := httphandlers.NewUserHandler(accountService)
	adminHandler := httphandlers.NewAdminHandler(accountService, listingService)

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(credentialService, accountRepo)

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

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authMiddleware.Authenticate(), authHandler.Me)
		}

		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.List)
			listings.GET("/mine", authMiddleware.Authenticate(), listingHandler.Mine)
			listings.GET("/:id", listingHandler.Get)
			listings.POST("", authMiddleware.Authenticate(), listingHandler.Create)
			listings.PUT("/:id", authMiddleware.Authenticate(), listingHandler.Update)
			listings.DELETE("/:id", authMiddleware.Authenticate(), listingHandler.Retire)
		}

		users := api.Group("/users")
		{
			users.GET("/me", authMiddleware.Authenticate(), userHandler.Me)
			users.PUT("/me", authMiddleware.Authenticate(), userHandler.UpdateMe)
			users.GET("/:id", userHandler.SellerProfile)
		}

		admin := api.Group("/admin", authMiddleware.Authenticate(), authMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/listings", adminHandler.ListListings)
			admin.DELETE("/listings/:id", adminHandler.PurgeListing)
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

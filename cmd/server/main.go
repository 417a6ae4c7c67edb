package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/matjip-backend/config"
	"github.com/ikkim/matjip-backend/internal/app/controller"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/app/service"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/ikkim/matjip-backend/internal/middleware"
	"github.com/ikkim/matjip-backend/internal/router"
	"github.com/ikkim/matjip-backend/internal/storage"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"github.com/ikkim/matjip-backend/pkg/oauth"
	pkgredis "github.com/ikkim/matjip-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MATJIP Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed subscription plan catalog (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis is optional: without it premium analytics are computed every time
	var analyticsCache *pkgredis.AnalyticsCache
	if err := pkgredis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, analytics caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
		analyticsCache = pkgredis.NewAnalyticsCache(nil, cfg.Redis.AnalyticsCacheTTL)
	} else {
		defer func() {
			if err := pkgredis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		analyticsCache = pkgredis.NewAnalyticsCache(pkgredis.GetClient(), cfg.Redis.AnalyticsCacheTTL)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	feedbackRepo := repository.NewFeedbackRepository(db.GetDB())
	menuItemRepo := repository.NewMenuItemRepository(db.GetDB())
	savedPlaceRepo := repository.NewSavedPlaceRepository(db.GetDB())
	subscriptionRepo := repository.NewSubscriptionRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())

	// OAuth verifiers for social login
	verifiers := map[string]oauth.Verifier{
		"google":   oauth.NewGoogleVerifier(cfg.OAuth.GoogleClientID),
		"facebook": oauth.NewFacebookVerifier(),
	}

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		verifiers,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	feedbackService := service.NewFeedbackService(db.GetDB(), feedbackRepo, restaurantRepo)
	menuService := service.NewMenuService(menuItemRepo, restaurantRepo)
	savedPlaceService := service.NewSavedPlaceService(savedPlaceRepo, restaurantRepo)
	analyticsService := service.NewAnalyticsService(feedbackRepo, restaurantRepo, analyticsCache)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// S3 storage for feedback media and restaurant images
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	restaurantController := controller.NewRestaurantController(restaurantService, analyticsService)
	feedbackController := controller.NewFeedbackController(feedbackService)
	menuController := controller.NewMenuController(menuService)
	savedPlaceController := controller.NewSavedPlaceController(savedPlaceService)
	analyticsController := controller.NewAnalyticsController(analyticsService)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	notificationController := controller.NewNotificationController(notificationService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		restaurantController,
		feedbackController,
		menuController,
		savedPlaceController,
		analyticsController,
		subscriptionController,
		notificationController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

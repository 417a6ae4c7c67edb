package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/config"
	"github.com/ikkim/matjip-backend/internal/app/controller"
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	restaurantController   *controller.RestaurantController
	feedbackController     *controller.FeedbackController
	menuController         *controller.MenuController
	savedPlaceController   *controller.SavedPlaceController
	analyticsController    *controller.AnalyticsController
	subscriptionController *controller.SubscriptionController
	notificationController *controller.NotificationController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	restaurantController *controller.RestaurantController,
	feedbackController *controller.FeedbackController,
	menuController *controller.MenuController,
	savedPlaceController *controller.SavedPlaceController,
	analyticsController *controller.AnalyticsController,
	subscriptionController *controller.SubscriptionController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		restaurantController:   restaurantController,
		feedbackController:     feedbackController,
		menuController:         menuController,
		savedPlaceController:   savedPlaceController,
		analyticsController:    analyticsController,
		subscriptionController: subscriptionController,
		notificationController: notificationController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "MATJIP API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/oauth/:provider", r.authController.OAuthLogin)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		users := v1.Group("/users",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleAdmin),
		)
		{
			users.GET("", r.authController.ListUsers)
			users.GET("/:id", r.authController.GetUser)
			users.PUT("/:id", r.authController.UpdateUser)
			users.DELETE("/:id", r.authController.DeleteUser)
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", r.restaurantController.List)
			restaurants.GET("/search", r.restaurantController.Search)
			restaurants.GET("/mine", r.authMiddleware.Authenticate(), r.restaurantController.ListMine)
			restaurants.GET("/:id", r.restaurantController.Get)
			restaurants.POST("", r.authMiddleware.Authenticate(), r.restaurantController.Create)
			restaurants.PUT("/:id", r.authMiddleware.Authenticate(), r.restaurantController.Update)
			restaurants.DELETE("/:id", r.authMiddleware.Authenticate(), r.restaurantController.Delete)
			restaurants.POST("/:id/claim", r.authMiddleware.Authenticate(), r.restaurantController.Claim)

			restaurants.GET("/:id/feedback", r.feedbackController.ListByRestaurant)
			restaurants.POST("/:id/feedback", r.authMiddleware.Authenticate(), r.feedbackController.Create)

			restaurants.GET("/:id/menu", r.menuController.List)
			restaurants.POST("/:id/menu", r.authMiddleware.Authenticate(), r.menuController.Add)

			restaurants.POST("/:id/save", r.authMiddleware.Authenticate(), r.savedPlaceController.Save)
			restaurants.DELETE("/:id/save", r.authMiddleware.Authenticate(), r.savedPlaceController.Unsave)

			restaurants.GET("/:id/analytics", r.authMiddleware.Authenticate(), r.analyticsController.PremiumAnalytics)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.GET("/received", r.authMiddleware.Authenticate(), r.feedbackController.ListForOwner)
			feedback.PUT("/:id", r.authMiddleware.Authenticate(), r.feedbackController.Update)
			feedback.DELETE("/:id", r.authMiddleware.Authenticate(), r.feedbackController.Delete)
			feedback.POST("/:id/like", r.feedbackController.Like)
			feedback.POST("/:id/reply", r.authMiddleware.Authenticate(), r.feedbackController.Reply)
		}

		menu := v1.Group("/menu", r.authMiddleware.Authenticate())
		{
			menu.PUT("/:id", r.menuController.Update)
			menu.DELETE("/:id", r.menuController.Delete)
		}

		savedPlaces := v1.Group("/saved-places", r.authMiddleware.Authenticate())
		{
			savedPlaces.GET("", r.savedPlaceController.List)
		}

		analytics := v1.Group("/analytics", r.authMiddleware.Authenticate())
		{
			analytics.GET("/monthly", r.analyticsController.MonthlyStats)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", r.subscriptionController.ListPlans)
			subscriptions.POST("/:id/upgrade", r.authMiddleware.Authenticate(), r.subscriptionController.Upgrade)
		}

		notifications := v1.Group("/notifications", r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.List)
			notifications.PUT("/:id/read", r.notificationController.MarkRead)
		}

		upload := v1.Group("/upload", r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

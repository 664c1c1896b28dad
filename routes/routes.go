package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
	"github.com/purelyKai/Mosaic/feed"
	"github.com/purelyKai/Mosaic/middleware"
	"github.com/purelyKai/Mosaic/preferences"
	"github.com/purelyKai/Mosaic/search"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, searchClient *search.Client, logger *zap.Logger) {
	// Shared engine state
	sessions := feed.NewManager(&feed.GormTripResolver{DB: db}, searchClient, &feed.GormLikeLoader{DB: db}, logger)
	taxonomy := preferences.Default()
	pipeline := preferences.NewPipeline(searchClient, &preferences.GormProfileStore{DB: db}, taxonomy, logger)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	tripController := controllers.NewTripController(db)
	feedController := controllers.NewFeedController(db, sessions, searchClient)
	likeController := controllers.NewLikeController(db, sessions, searchClient, logger)
	memberController := controllers.NewMemberController(db)
	preferenceController := controllers.NewPreferenceController(pipeline, taxonomy)
	uploadController := controllers.NewUploadController(db)
	validationController := controllers.NewValidationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleSignIn)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupTripRoutes(protected, tripController, memberController)
		SetupFeedRoutes(protected, feedController)
		SetupLikeRoutes(protected, likeController)
		SetupPreferenceRoutes(protected, preferenceController)
		SetupUploadRoutes(protected, uploadController)
		SetupValidationRoutes(protected, validationController)
	}
}

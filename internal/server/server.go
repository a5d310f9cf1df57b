package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/config"
	"github.com/abagency/backend/internal/handlers"
	"github.com/abagency/backend/internal/mailer"
	"github.com/abagency/backend/internal/middleware"
)

func Start() error {
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	SetupRoutes(r, db, cfg, cfg.Notifier())

	return r.Run(":" + cfg.Port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier mailer.Notifier) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.ConfigMiddleware(cfg))
	r.Use(middleware.NotifierMiddleware(notifier))
	r.Use(middleware.SessionMiddleware(cfg.SecretKey))

	r.GET("/", handlers.Index)
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.POST("/register", handlers.Register)

	r.GET("/assets", handlers.ListAssets)
	r.GET("/assets/:filename", handlers.AssetFile)
	r.GET("/milestones", handlers.Milestones)
	r.POST("/inquiry", handlers.SubmitInquiry)
	r.GET("/booking/availability", handlers.BookingAvailability)
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/workspace", middleware.RequireUserPage(), handlers.Workspace)

	api := r.Group("/api")
	api.Use(middleware.RequireUser())
	{
		api.GET("/me", handlers.Me)
		api.POST("/profile", handlers.UpsertProfile)
		api.POST("/events", handlers.CreateEvent)
		api.POST("/performances", handlers.CreatePerformance)
		api.POST("/media/upload", handlers.UploadMedia)
		api.POST("/media/url", handlers.AddMediaURL)
		api.POST("/messages", handlers.SendMessage)
	}
}

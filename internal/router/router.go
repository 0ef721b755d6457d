package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/launchscore-dev/launchscore/internal/handlers"
	"github.com/launchscore-dev/launchscore/internal/middleware"
	"github.com/launchscore-dev/launchscore/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		websites := api.Group("/websites", middleware.AuthMiddleware())
		{
			websites.POST("", handlers.AddWebsite)
			websites.GET("", handlers.ListWebsites)
			websites.DELETE("/:id", handlers.RemoveWebsite)
		}

		scans := api.Group("/scans", middleware.AuthMiddleware())
		{
			scans.POST("/run", handlers.RunScan)
			scans.GET("/dashboard", handlers.FetchDashboard)
			scans.GET("/archive", handlers.FetchArchive)
			scans.DELETE("/:id", handlers.RemoveScan)
			scans.GET("/single/:id", handlers.FetchSingleScan)
		}
	}

	return r
}

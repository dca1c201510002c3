package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusconnect-dev/campusconnect/internal/handlers"
	"github.com/campusconnect-dev/campusconnect/internal/middleware"
	"github.com/campusconnect-dev/campusconnect/internal/types"
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

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/events/:event_id", handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", handlers.Signup)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateProfile)
		}

		events := api.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.GET("/:event_id", handlers.GetEvent)
			events.GET("/:event_id/registrations", handlers.GetEventRegistrations)

			events.POST("", middleware.AuthMiddleware(), middleware.RequireAdmin(), handlers.CreateEvent)
			events.PUT("/:event_id", middleware.AuthMiddleware(), middleware.RequireAdmin(), handlers.UpdateEvent)
			events.DELETE("/:event_id", middleware.AuthMiddleware(), middleware.RequireAdmin(), handlers.DeleteEvent)

			events.POST("/:event_id/registrations", middleware.AuthMiddleware(), handlers.RegisterForEvent)
			events.DELETE("/:event_id/registrations", middleware.AuthMiddleware(), handlers.CancelRegistration)
		}

		me := api.Group("/me", middleware.AuthMiddleware())
		{
			me.GET("/registrations", handlers.MyRegistrations)
		}
	}

	return r
}

package routes

import (
	"spalounge-backend/config"
	"spalounge-backend/controllers"
	"spalounge-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(broadcast *controllers.BroadcastController) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("", controllers.GetNotifications)
			notifications.GET("/unread-count", controllers.GetUnreadCount)
			notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			notifications.POST("/broadcast", utils.StaffOnly(), broadcast.SendBroadcast)
		}

		// Template routes
		templates := api.Group("/templates", utils.StaffOnly())
		{
			templates.POST("", controllers.CreateNotificationTemplate)
			templates.GET("", controllers.GetNotificationTemplates)
			templates.PUT("/:id", controllers.UpdateNotificationTemplate)
			templates.DELETE("/:id", controllers.DeleteNotificationTemplate)
		}

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.PUT("/push-token", controllers.UpdatePushToken)
			profile.PUT("/preferences", controllers.UpdatePreferences)
		}
	}

	return r
}

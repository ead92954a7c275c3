package routes

import (
	"opsdesk/controllers"
	"opsdesk/middleware"

	"github.com/gin-gonic/gin"
)

func NotificationRoutes(r *gin.RouterGroup) {
	notificationController := controllers.NewNotificationController()

	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("/", notificationController.GetNotifications)
		notifications.PUT("/:id/read", notificationController.MarkRead)
		notifications.PUT("/read-all", notificationController.MarkAllRead)
	}
}

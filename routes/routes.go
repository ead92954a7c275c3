package routes

import (
	"opsdesk/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// Global middleware
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.Recovery())

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware())
	{
		// Public routes
		AuthRoutes(v1)

		// Protected routes
		FolderRoutes(v1)
		FileRoutes(v1)
		AttendanceRoutes(v1)
		NotificationRoutes(v1)
		OrgRoutes(v1)
	}
}

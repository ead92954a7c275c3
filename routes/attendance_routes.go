package routes

import (
	"opsdesk/controllers"
	"opsdesk/middleware"

	"github.com/gin-gonic/gin"
)

func AttendanceRoutes(r *gin.RouterGroup) {
	attendanceController := controllers.NewAttendanceController()

	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/check-in", attendanceController.CheckIn)
		attendance.POST("/check-out", attendanceController.CheckOut)
		attendance.GET("/status", attendanceController.GetStatus)
		attendance.GET("/history", attendanceController.GetHistory)
	}
}

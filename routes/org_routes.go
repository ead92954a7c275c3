package routes

import (
	"opsdesk/controllers"
	"opsdesk/middleware"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
)

func OrgRoutes(r *gin.RouterGroup) {
	orgController := controllers.NewOrgController()

	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("/", orgController.GetDepartments)
		departments.GET("/:id", orgController.GetDepartment)
		departments.POST("/", middleware.RequireRoles(models.RoleAdmin), orgController.CreateDepartment)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleDirector))
	{
		users.GET("/", orgController.GetUsers)
	}
}

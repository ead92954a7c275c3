package routes

import (
	"opsdesk/controllers"
	"opsdesk/middleware"

	"github.com/gin-gonic/gin"
)

func FolderRoutes(r *gin.RouterGroup) {
	folderController := controllers.NewFolderController()

	folders := r.Group("/folders")
	folders.Use(middleware.AuthMiddleware())
	{
		// Navigation
		folders.GET("/", folderController.GetRootContents)
		folders.GET("/:id", folderController.GetFolder)
		folders.GET("/:id/contents", folderController.GetFolderContents)
		folders.GET("/:id/breadcrumb", folderController.GetBreadcrumb)

		// Mutations
		folders.POST("/", folderController.CreateFolder)
		folders.DELETE("/:id", folderController.DeleteFolder)
		folders.POST("/:id/share", folderController.ShareFolder)
	}
}

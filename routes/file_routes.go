package routes

import (
	"opsdesk/controllers"
	"opsdesk/middleware"

	"github.com/gin-gonic/gin"
)

func FileRoutes(r *gin.RouterGroup) {
	fileController := controllers.NewFileController()

	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		files.POST("/upload", fileController.UploadFile)
		files.GET("/:id", fileController.GetFile)
		files.PUT("/:id", fileController.UpdateFile)
		files.DELETE("/:id", fileController.DeleteFile)
		files.POST("/:id/move", fileController.MoveFile)
		files.POST("/:id/share", fileController.ShareFile)

		// Bulk operations
		files.POST("/bulk/delete", fileController.BulkDeleteFiles)
		files.POST("/bulk/move", fileController.BulkMoveFiles)
	}
}

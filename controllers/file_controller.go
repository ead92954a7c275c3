package controllers

import (
	"opsdesk/models"
	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileController struct {
	fileService *services.FileService
}

func NewFileController() *FileController {
	return &FileController{
		fileService: services.NewFileService(),
	}
}

// UploadFile stores a document into a folder.
func (fc *FileController) UploadFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.FileUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if req.FolderID == "" {
		utils.BadRequestResponse(c, "folder_id is required")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided")
		return
	}

	file, err := fc.fileService.Upload(user, &req, header)
	if err != nil {
		respondServiceError(c, err, "Failed to upload file")
		return
	}

	utils.CreatedResponse(c, "File uploaded successfully", file)
}

// GetFile returns a single file's metadata.
func (fc *FileController) GetFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	fileID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	file, err := fc.fileService.GetFile(user, fileID)
	if err != nil {
		respondServiceError(c, err, "Failed to get file")
		return
	}

	utils.SuccessResponse(c, "File retrieved successfully", file)
}

// UpdateFile applies a partial metadata update.
func (fc *FileController) UpdateFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	fileID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.FileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	file, err := fc.fileService.UpdateFile(user, fileID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update file")
		return
	}

	utils.SuccessResponse(c, "File updated successfully", file)
}

// DeleteFile removes a file and its stored object.
func (fc *FileController) DeleteFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	fileID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.fileService.DeleteFile(user, fileID); err != nil {
		respondServiceError(c, err, "Failed to delete file")
		return
	}

	utils.SuccessResponse(c, "File deleted successfully", nil)
}

// MoveFile relocates a file into another folder.
func (fc *FileController) MoveFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	fileID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.MoveFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if !utils.IsValidObjectID(req.TargetFolderID) {
		utils.BadRequestResponse(c, "Invalid target folder ID")
		return
	}
	targetID, _ := utils.StringToObjectID(req.TargetFolderID)

	if err := fc.fileService.MoveFile(user, fileID, targetID); err != nil {
		respondServiceError(c, err, "Failed to move file")
		return
	}

	utils.SuccessResponse(c, "File moved successfully", nil)
}

// BulkDeleteFiles deletes a batch of files and reports per-file results.
func (fc *FileController) BulkDeleteFiles(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	ids, _, ok := bindBulkRequest(c, false)
	if !ok {
		return
	}

	result := fc.fileService.BulkDelete(user, ids)
	utils.SuccessResponse(c, "Bulk delete completed", result)
}

// BulkMoveFiles moves a batch of files and reports per-file results.
func (fc *FileController) BulkMoveFiles(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	ids, targetID, ok := bindBulkRequest(c, true)
	if !ok {
		return
	}

	result := fc.fileService.BulkMove(user, ids, targetID)
	utils.SuccessResponse(c, "Bulk move completed", result)
}

// ShareFile grants departments and users access to a file.
func (fc *FileController) ShareFile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	fileID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := fc.fileService.ShareFile(user, fileID, &req); err != nil {
		respondServiceError(c, err, "Failed to share file")
		return
	}

	utils.SuccessResponse(c, "File shared successfully", nil)
}

// bindBulkRequest parses a bulk file request. Malformed ids fail the
// whole request up front rather than surfacing as per-item errors.
func bindBulkRequest(c *gin.Context, needTarget bool) ([]primitive.ObjectID, primitive.ObjectID, bool) {
	var req models.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return nil, primitive.NilObjectID, false
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return nil, primitive.NilObjectID, false
	}

	ids := make([]primitive.ObjectID, 0, len(req.FileIDs))
	for _, raw := range req.FileIDs {
		id, err := utils.StringToObjectID(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid file ID: "+raw)
			return nil, primitive.NilObjectID, false
		}
		ids = append(ids, id)
	}

	var targetID primitive.ObjectID
	if needTarget {
		if !utils.IsValidObjectID(req.TargetFolderID) {
			utils.BadRequestResponse(c, "Invalid target folder ID")
			return nil, primitive.NilObjectID, false
		}
		targetID, _ = utils.StringToObjectID(req.TargetFolderID)
	}
	return ids, targetID, true
}

package controllers

import (
	"opsdesk/explorer"
	"opsdesk/models"
	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FolderController struct {
	folderService *services.FolderService
}

func NewFolderController() *FolderController {
	return &FolderController{
		folderService: services.NewFolderService(),
	}
}

// listQuery binds the common listing parameters shared by the root and
// per-folder content endpoints.
type listQuery struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by" validate:"omitempty,sort_field"`
	Direction string `form:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int    `form:"page"`
}

func (q *listQuery) toExplorerQuery() explorer.Query {
	direction := explorer.Ascending
	if q.Direction == "desc" {
		direction = explorer.Descending
	}
	sortBy := explorer.SortByName
	switch q.SortBy {
	case "date":
		sortBy = explorer.SortByDate
	case "size":
		sortBy = explorer.SortBySize
	case "type":
		sortBy = explorer.SortByType
	}
	return explorer.Query{
		Search:    q.Search,
		SortBy:    sortBy,
		Direction: direction,
		Page:      q.Page,
	}
}

// GetRootContents lists the folders visible to the user at the top level.
func (fc *FolderController) GetRootContents(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return
	}
	if err := utils.ValidateStruct(&q); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	contents, err := fc.folderService.Contents(user, nil, q.toExplorerQuery())
	if err != nil {
		respondServiceError(c, err, "Failed to list folders")
		return
	}

	utils.SuccessResponse(c, "Contents retrieved successfully", contents)
}

// GetFolderContents lists the subfolders and files inside one folder.
func (fc *FolderController) GetFolderContents(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	folderID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return
	}
	if err := utils.ValidateStruct(&q); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	contents, err := fc.folderService.Contents(user, &folderID, q.toExplorerQuery())
	if err != nil {
		respondServiceError(c, err, "Failed to list folder contents")
		return
	}

	utils.SuccessResponse(c, "Contents retrieved successfully", contents)
}

// GetFolder returns a single folder with the caller's permission flags.
func (fc *FolderController) GetFolder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	folderID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	folder, err := fc.folderService.GetFolder(user, folderID)
	if err != nil {
		respondServiceError(c, err, "Failed to get folder")
		return
	}

	utils.SuccessResponse(c, "Folder retrieved successfully", folder)
}

// GetBreadcrumb returns the root-to-folder navigation trail.
func (fc *FolderController) GetBreadcrumb(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	folderID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	trail, err := fc.folderService.Breadcrumb(user, folderID)
	if err != nil {
		respondServiceError(c, err, "Failed to get breadcrumb")
		return
	}

	utils.SuccessResponse(c, "Breadcrumb retrieved successfully", trail)
}

// CreateFolder creates a new folder in the given parent context.
func (fc *FolderController) CreateFolder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.FolderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	folder, err := fc.folderService.CreateFolder(user, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create folder")
		return
	}

	utils.CreatedResponse(c, "Folder created successfully", folder)
}

// DeleteFolder removes a folder and everything under it.
func (fc *FolderController) DeleteFolder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	folderID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.folderService.DeleteFolder(user, folderID); err != nil {
		respondServiceError(c, err, "Failed to delete folder")
		return
	}

	utils.SuccessResponse(c, "Folder deleted successfully", nil)
}

// ShareFolder grants departments access to a folder.
func (fc *FolderController) ShareFolder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	folderID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := fc.folderService.ShareFolder(user, folderID, &req); err != nil {
		respondServiceError(c, err, "Failed to share folder")
		return
	}

	utils.SuccessResponse(c, "Folder shared successfully", nil)
}

// parseObjectIDParam pulls a path parameter and rejects malformed ids
// before any service call.
func parseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	raw := c.Param(name)
	if !utils.IsValidObjectID(raw) {
		utils.BadRequestResponse(c, "Invalid "+name)
		return primitive.NilObjectID, false
	}
	id, _ := utils.StringToObjectID(raw)
	return id, true
}

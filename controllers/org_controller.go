package controllers

import (
	"strconv"

	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgController serves the directory data the dashboard renders next to
// the document tree: departments and people.
type OrgController struct {
	departmentService *services.DepartmentService
	userService       *services.UserService
}

func NewOrgController() *OrgController {
	return &OrgController{
		departmentService: services.NewDepartmentService(),
		userService:       services.NewUserService(),
	}
}

// GetDepartments lists all departments with member counts.
func (oc *OrgController) GetDepartments(c *gin.Context) {
	departments, err := oc.departmentService.ListDepartments()
	if err != nil {
		respondServiceError(c, err, "Failed to get departments")
		return
	}

	utils.SuccessResponse(c, "Departments retrieved successfully", departments)
}

// GetDepartment returns one department.
func (oc *OrgController) GetDepartment(c *gin.Context) {
	departmentID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	department, err := oc.departmentService.GetDepartment(departmentID)
	if err != nil {
		respondServiceError(c, err, "Failed to get department")
		return
	}

	utils.SuccessResponse(c, "Department retrieved successfully", department)
}

// CreateDepartment creates a department. Restricted to admins by the
// route's role guard.
func (oc *OrgController) CreateDepartment(c *gin.Context) {
	var req struct {
		Name        string `json:"name" validate:"required,min=2,max=100"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	department, err := oc.departmentService.CreateDepartment(req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err, "Failed to create department")
		return
	}

	utils.CreatedResponse(c, "Department created successfully", department)
}

// GetUsers lists active users, optionally filtered by department or role.
func (oc *OrgController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	role := c.Query("role")

	var departmentID *primitive.ObjectID
	if raw := c.Query("department_id"); raw != "" {
		if !utils.IsValidObjectID(raw) {
			utils.BadRequestResponse(c, "Invalid department ID")
			return
		}
		id, _ := utils.StringToObjectID(raw)
		departmentID = &id
	}

	users, total, err := oc.userService.ListUsers(departmentID, role, page, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to get users")
		return
	}

	utils.PaginatedResponse(c, "Users retrieved successfully", users, page, limit, int(total))
}

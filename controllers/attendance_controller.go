package controllers

import (
	"strconv"
	"time"

	"opsdesk/models"
	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	attendanceService *services.AttendanceService
}

func NewAttendanceController() *AttendanceController {
	return &AttendanceController{
		attendanceService: services.NewAttendanceService(),
	}
}

// CheckIn opens today's attendance record for the caller.
func (ac *AttendanceController) CheckIn(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	record, err := ac.attendanceService.CheckIn(user, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to check in")
		return
	}

	utils.CreatedResponse(c, "Checked in successfully", record)
}

// CheckOut closes the caller's active attendance record.
func (ac *AttendanceController) CheckOut(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	record, err := ac.attendanceService.CheckOut(user, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to check out")
		return
	}

	utils.SuccessResponse(c, "Checked out successfully", record)
}

// GetStatus reports the caller's derived attendance state.
func (ac *AttendanceController) GetStatus(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	status, err := ac.attendanceService.Status(user)
	if err != nil {
		respondServiceError(c, err, "Failed to get attendance status")
		return
	}

	utils.SuccessResponse(c, "Attendance status retrieved successfully", status)
}

// GetHistory lists the caller's attendance records, newest first.
func (ac *AttendanceController) GetHistory(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	from := parseDateQuery(c, "from")
	to := parseDateQuery(c, "to")

	records, total, err := ac.attendanceService.History(user, from, to, page, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to get attendance history")
		return
	}

	utils.PaginatedResponse(c, "Attendance history retrieved successfully", records, page, limit, int(total))
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. Invalid
// values are ignored rather than failing the request.
func parseDateQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil
	}
	if name == "to" {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

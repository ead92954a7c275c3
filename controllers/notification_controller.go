package controllers

import (
	"strconv"

	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController() *NotificationController {
	return &NotificationController{
		notificationService: services.NewNotificationService(),
	}
}

// GetNotifications lists the caller's notifications, newest first. The
// unread count rides along for the badge.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	unreadOnly := c.Query("unread") == "true"

	notifications, total, unread, err := nc.notificationService.List(user.ID, unreadOnly, page, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to get notifications")
		return
	}

	utils.PaginatedResponse(c, "Notifications retrieved successfully", gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	}, page, limit, int(total))
}

// MarkRead marks one of the caller's notifications as read.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	notificationID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := nc.notificationService.MarkRead(user.ID, notificationID); err != nil {
		respondServiceError(c, err, "Failed to mark notification as read")
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", nil)
}

// MarkAllRead marks every unread notification of the caller as read.
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	count, err := nc.notificationService.MarkAllRead(user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark notifications as read")
		return
	}

	utils.SuccessResponse(c, "Notifications marked as read", gin.H{"updated": count})
}

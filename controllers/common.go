package controllers

import (
	"errors"

	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto the HTTP error
// envelope. Unknown errors become a 500 with a generic message so
// internals never leak to clients.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "You do not have access to this resource")
	case errors.Is(err, services.ErrDuplicateName):
		utils.ConflictResponse(c, "A resource with this name already exists")
	case errors.Is(err, services.ErrDefaultFolder):
		utils.ForbiddenResponse(c, "The default folder cannot be deleted")
	case errors.Is(err, services.ErrAlreadyCheckedIn):
		utils.ConflictResponse(c, "Already checked in")
	case errors.Is(err, services.ErrNotCheckedIn):
		utils.ConflictResponse(c, "No active check-in found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, services.ErrEmailTaken):
		utils.ConflictResponse(c, "Email is already registered")
	case errors.Is(err, services.ErrUsernameTaken):
		utils.ConflictResponse(c, "Username is already taken")
	default:
		utils.InternalServerErrorResponse(c, fallback)
	}
}

package controllers

import (
	"opsdesk/models"
	"opsdesk/services"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// Register creates a new account.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := ac.authService.Register(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	utils.CreatedResponse(c, "User registered successfully", user.Profile())
}

// Login verifies credentials and returns a token pair.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, tokens, err := ac.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", gin.H{
		"user":   user.Profile(),
		"tokens": tokens,
	})
}

// Refresh exchanges a refresh token for a new token pair.
func (ac *AuthController) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}
	if req.RefreshToken == "" {
		utils.BadRequestResponse(c, "refresh_token is required")
		return
	}

	tokens, err := ac.authService.Refresh(req.RefreshToken)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh token")
		return
	}

	utils.SuccessResponse(c, "Token refreshed successfully", tokens)
}

// Me returns the authenticated user's own profile.
func (ac *AuthController) Me(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", user.Profile())
}

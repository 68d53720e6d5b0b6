// File: handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/user"
	"tutorhive/utils"
)

// UserHandler exposes student account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// InitiateRegistrationHandler starts the registration pipeline.
func (h *UserHandler) InitiateRegistrationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var basic models.UserBasicRegistrationData
	if err := c.ShouldBindJSON(&basic); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sessionID, err := h.Service.InitiateRegistration(c.Request.Context(), basic)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to initiate registration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "message": "Verification code sent"})
}

// VerifyRegistrationOTPHandler checks the emailed code.
func (h *UserHandler) VerifyRegistrationOTPHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionID" binding:"required"`
		OTP       string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.VerifyRegistrationOTP(c.Request.Context(), req.SessionID, req.OTP); err != nil {
		if errors.Is(err, user.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Verification failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

// FinalizeRegistrationHandler creates the account and signs the user in.
func (h *UserHandler) FinalizeRegistrationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.FinalizeRegistration(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		case errors.Is(err, user.ErrOTPNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified yet"})
		default:
			logger.Error("Failed to finalize registration", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize registration"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles email/password login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.Service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.GetLogger().Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdatePasswordHandler changes the account password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}
		utils.GetLogger().Error("Failed to update password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated; please sign in again"})
}

// DeleteUserHandler removes the authenticated account.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Service.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// RevokeUserAuthTokenHandler signs the user out everywhere.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Service.RevokeAuthToken(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("Failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

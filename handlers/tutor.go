// File: handlers/tutor.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/tutor"
	"tutorhive/utils"
)

// TutorHandler exposes tutor account and application-pipeline endpoints.
type TutorHandler struct {
	Service tutor.TutorService
}

// NewTutorHandler constructs a TutorHandler.
func NewTutorHandler(svc tutor.TutorService) *TutorHandler {
	return &TutorHandler{Service: svc}
}

// ApplyHandler starts a tutor application.
func (h *TutorHandler) ApplyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var basic models.TutorApplicationData
	if err := c.ShouldBindJSON(&basic); err != nil {
		logger.Error("Invalid tutor application", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sessionID, err := h.Service.Apply(c.Request.Context(), basic)
	if err != nil {
		if errors.Is(err, tutor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to initiate tutor application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "message": "Verification code sent"})
}

// VerifyApplicationOTPHandler checks the emailed code.
func (h *TutorHandler) VerifyApplicationOTPHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionID" binding:"required"`
		OTP       string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.VerifyApplicationOTP(c.Request.Context(), req.SessionID, req.OTP); err != nil {
		if errors.Is(err, tutor.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application session not found or expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Verification failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

// SubmitCredentialsHandler attaches qualifications and queues the application
// for admin review.
func (h *TutorHandler) SubmitCredentialsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		SessionID   string              `json:"sessionID" binding:"required"`
		Credentials []models.Credential `json:"credentials" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	applicant, err := h.Service.SubmitCredentials(c.Request.Context(), req.SessionID, req.Credentials)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application session not found or expired"})
		case errors.Is(err, tutor.ErrOTPNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified yet"})
		default:
			logger.Error("Failed to submit credentials", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit credentials", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tutor": applicant, "message": "Application submitted for review"})
}

// AuthenticateTutorHandler handles tutor login.
func (h *TutorHandler) AuthenticateTutorHandler(c *gin.Context) {
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
		switch {
		case errors.Is(err, tutor.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, tutor.ErrNotActive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Application is not approved yet"})
		default:
			utils.GetLogger().Error("Failed to authenticate tutor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTutorHandler returns a tutor's public profile.
func (h *TutorHandler) GetTutorHandler(c *gin.Context) {
	tutorID := c.Param("id")

	profile, err := h.Service.GetTutorByID(c.Request.Context(), tutorID)
	if err != nil {
		if errors.Is(err, tutor.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
			return
		}
		utils.GetLogger().Error("Failed to get tutor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tutor"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateTutorHandler updates the authenticated tutor's profile.
func (h *TutorHandler) UpdateTutorHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.TutorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateTutor(c.Request.Context(), tutorID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to update tutor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTutorHandler removes the authenticated tutor account.
func (h *TutorHandler) DeleteTutorHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	if err := h.Service.DeleteTutor(c.Request.Context(), tutorID); err != nil {
		utils.GetLogger().Error("Failed to delete tutor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// ListApplicationsHandler returns the admin review queue.
func (h *TutorHandler) ListApplicationsHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.TutorStatusPendingReview)

	tutors, err := h.Service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		utils.GetLogger().Error("Failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// ApproveTutorHandler activates a pending tutor.
func (h *TutorHandler) ApproveTutorHandler(c *gin.Context) {
	tutorID := c.Param("id")

	approved, err := h.Service.Approve(c.Request.Context(), tutorID)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrTutorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		case errors.Is(err, tutor.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Tutor is not awaiting review"})
		default:
			utils.GetLogger().Error("Failed to approve tutor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve tutor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"tutor": approved, "message": "Tutor approved"})
}

// RejectTutorHandler declines a pending tutor.
func (h *TutorHandler) RejectTutorHandler(c *gin.Context) {
	tutorID := c.Param("id")

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.Reject(c.Request.Context(), tutorID, req.Reason); err != nil {
		switch {
		case errors.Is(err, tutor.ErrTutorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		case errors.Is(err, tutor.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Tutor is not awaiting review"})
		default:
			utils.GetLogger().Error("Failed to reject tutor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject tutor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tutor rejected"})
}

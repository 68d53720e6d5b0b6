// File: handlers/schedule.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/schedule"
	"tutorhive/utils"
)

// ScheduleHandler exposes the weekly availability editor over HTTP. All
// editor endpoints operate on the authenticated tutor's own week; the stored
// week is replaced wholesale after every accepted edit.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// writeScheduleError maps editor errors onto HTTP statuses. Validation
// failures are the caller's fault; a stale range is a conflict with the
// stored week; a round-trip failure is a server-side defect.
func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidTimeFormat),
		errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrUnknownDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability input", "message": err.Error()})
	case errors.Is(err, schedule.ErrStaleRange):
		c.JSON(http.StatusConflict, gin.H{"error": "Range no longer exists", "message": err.Error()})
	case errors.Is(err, schedule.ErrRoundTrip):
		utils.GetLogger().Error("Availability round-trip failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply availability change"})
	default:
		utils.GetLogger().Error("Availability operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply availability change"})
	}
}

// GetAvailabilityHandler returns the authenticated tutor's weekly availability.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	records, err := h.Service.GetAvailability(c.Request.Context(), tutorID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// GetTutorAvailabilityHandler returns any tutor's availability for students
// browsing the marketplace.
func (h *ScheduleHandler) GetTutorAvailabilityHandler(c *gin.Context) {
	tutorID := c.Param("id")

	records, err := h.Service.GetAvailability(c.Request.Context(), tutorID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// ReplaceAvailabilityHandler replaces the stored week wholesale.
func (h *ScheduleHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req struct {
		Availability []models.AvailabilityRecord `json:"availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	records, err := h.Service.ReplaceAvailability(c.Request.Context(), tutorID, req.Availability)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// AddRangeHandler adds one contiguous range to a day.
func (h *ScheduleHandler) AddRangeHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.AddRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	records, err := h.Service.AddRange(c.Request.Context(), tutorID, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// EditRangeHandler rewrites the bounds of an existing range.
func (h *ScheduleHandler) EditRangeHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.EditRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	records, err := h.Service.EditRange(c.Request.Context(), tutorID, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// DeleteRangeHandler removes a range from a day.
func (h *ScheduleHandler) DeleteRangeHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.DeleteRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	records, err := h.Service.DeleteRange(c.Request.Context(), tutorID, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// ToggleSlotHandler flips one half-hour slot (or the hour pair in hourly mode).
func (h *ScheduleHandler) ToggleSlotHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	records, err := h.Service.ToggleSlot(c.Request.Context(), tutorID, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// ToggleDayHandler bulk-toggles the slots visible under the supplied filter.
// The day comes from the path; the optional body narrows the hour window and
// sets the display mode.
func (h *ScheduleHandler) ToggleDayHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var body struct {
		StartHour *int   `json:"startHour,omitempty"`
		EndHour   *int   `json:"endHour,omitempty"`
		Mode      string `json:"mode,omitempty"`
	}
	// An empty body means the full-day window.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	req := models.ToggleDayRequest{
		Day:       c.Param("day"),
		StartHour: body.StartHour,
		EndHour:   body.EndHour,
		Mode:      body.Mode,
	}
	records, err := h.Service.ToggleDay(c.Request.Context(), tutorID, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": records})
}

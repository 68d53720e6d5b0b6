// File: handlers/course.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/course"
	"tutorhive/utils"
)

// CourseHandler exposes subject-catalogue and course endpoints.
type CourseHandler struct {
	Service course.CourseService
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(svc course.CourseService) *CourseHandler {
	return &CourseHandler{Service: svc}
}

// CreateSubjectHandler adds a subject to the catalogue (admin only).
func (h *CourseHandler) CreateSubjectHandler(c *gin.Context) {
	var subject models.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateSubject(c.Request.Context(), subject)
	if err != nil {
		utils.GetLogger().Error("Failed to create subject", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subject"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListSubjectsHandler returns the subject catalogue.
func (h *CourseHandler) ListSubjectsHandler(c *gin.Context) {
	subjects, err := h.Service.ListSubjects(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list subjects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subjects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

// CreateCourseHandler creates a course for the authenticated tutor.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateCourse(c.Request.Context(), tutorID, req)
	if err != nil {
		switch {
		case errors.Is(err, course.ErrTutorNotActive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Tutor is not active"})
		case errors.Is(err, course.ErrSubjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		default:
			utils.GetLogger().Error("Failed to create course", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCourseHandler returns one course.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	courseID := c.Param("id")

	found, err := h.Service.GetCourseByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		utils.GetLogger().Error("Failed to get course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListTutorCoursesHandler returns a tutor's courses.
func (h *CourseHandler) ListTutorCoursesHandler(c *gin.Context) {
	tutorID := c.Param("id")

	courses, err := h.Service.ListTutorCourses(c.Request.Context(), tutorID)
	if err != nil {
		utils.GetLogger().Error("Failed to list tutor courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// ListSubjectCoursesHandler returns the active courses under a subject.
func (h *CourseHandler) ListSubjectCoursesHandler(c *gin.Context) {
	subjectID := c.Param("id")

	courses, err := h.Service.ListSubjectCourses(c.Request.Context(), subjectID)
	if err != nil {
		utils.GetLogger().Error("Failed to list subject courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// UpdateCourseHandler updates one of the authenticated tutor's courses.
func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	courseID := c.Param("id")

	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateCourse(c.Request.Context(), tutorID, courseID, req)
	if err != nil {
		switch {
		case errors.Is(err, course.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, course.ErrNotCourseOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Course belongs to another tutor"})
		default:
			utils.GetLogger().Error("Failed to update course", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCourseHandler removes one of the authenticated tutor's courses.
func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	tutorID := c.GetString("tutorID")
	courseID := c.Param("id")

	if err := h.Service.DeleteCourse(c.Request.Context(), tutorID, courseID); err != nil {
		switch {
		case errors.Is(err, course.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, course.ErrNotCourseOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Course belongs to another tutor"})
		default:
			utils.GetLogger().Error("Failed to delete course", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

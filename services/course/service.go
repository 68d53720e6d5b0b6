// File: services/course/service.go
package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/utils"
)

// CreateSubject adds a subject to the catalogue.
func (s *DefaultCourseService) CreateSubject(ctx context.Context, subject models.Subject) (*models.Subject, error) {
	subject.ID = uuid.New().String()
	if err := s.Repo.CreateSubject(ctx, &subject); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Subject created", zap.String("subjectID", subject.ID), zap.String("name", subject.Name))
	return &subject, nil
}

// ListSubjects returns the full subject catalogue.
func (s *DefaultCourseService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.Repo.GetSubjects(ctx)
}

// CreateCourse creates a course for an active tutor under an existing subject.
func (s *DefaultCourseService) CreateCourse(ctx context.Context, tutorID string, req models.CreateCourseRequest) (*models.Course, error) {
	owner, err := s.Tutors.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTutorNotActive
		}
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}
	if owner.Status != models.TutorStatusActive {
		return nil, ErrTutorNotActive
	}

	if _, err := s.Repo.GetSubjectByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch subject: %w", err)
	}

	newCourse := &models.Course{
		ID:             uuid.New().String(),
		TutorID:        tutorID,
		SubjectID:      req.SubjectID,
		Title:          req.Title,
		Description:    req.Description,
		PricePerLesson: req.PricePerLesson,
		Level:          req.Level,
		Active:         true,
	}
	if err := s.Repo.CreateCourse(ctx, newCourse); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Course created", zap.String("courseID", newCourse.ID), zap.String("tutorID", tutorID))
	return newCourse, nil
}

// GetCourseByID returns the course with the given ID.
func (s *DefaultCourseService) GetCourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	c, err := s.Repo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListTutorCourses returns every course the tutor offers.
func (s *DefaultCourseService) ListTutorCourses(ctx context.Context, tutorID string) ([]models.Course, error) {
	return s.Repo.GetCoursesByTutor(ctx, tutorID)
}

// ListSubjectCourses returns the active courses under a subject.
func (s *DefaultCourseService) ListSubjectCourses(ctx context.Context, subjectID string) ([]models.Course, error) {
	return s.Repo.GetCoursesBySubject(ctx, subjectID)
}

// UpdateCourse applies the mutable fields after an ownership check.
func (s *DefaultCourseService) UpdateCourse(ctx context.Context, tutorID, courseID string, req models.UpdateCourseRequest) (*models.Course, error) {
	current, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if current.TutorID != tutorID {
		return nil, ErrNotCourseOwner
	}

	updateDoc := bson.M{}
	if req.Title != "" {
		updateDoc["title"] = req.Title
	}
	if req.Description != "" {
		updateDoc["description"] = req.Description
	}
	if req.PricePerLesson > 0 {
		updateDoc["pricePerLesson"] = req.PricePerLesson
	}
	if req.Level != "" {
		updateDoc["level"] = req.Level
	}
	if req.Active != nil {
		updateDoc["active"] = *req.Active
	}
	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateCourse(ctx, courseID, updateDoc); err != nil {
			return nil, err
		}
	}
	return s.GetCourseByID(ctx, courseID)
}

// DeleteCourse removes a course after an ownership check.
func (s *DefaultCourseService) DeleteCourse(ctx context.Context, tutorID, courseID string) error {
	current, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if current.TutorID != tutorID {
		return ErrNotCourseOwner
	}
	return s.Repo.DeleteCourse(ctx, courseID)
}

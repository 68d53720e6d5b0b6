// File: services/course/interface.go
package course

import (
	"context"

	courseRepo "tutorhive/database/repository/course"
	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
)

// CourseService manages the subject catalogue and the courses tutors offer.
type CourseService interface {
	// Subjects (admin-curated).
	CreateSubject(ctx context.Context, subject models.Subject) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)

	// Courses.
	CreateCourse(ctx context.Context, tutorID string, req models.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, courseID string) (*models.Course, error)
	ListTutorCourses(ctx context.Context, tutorID string) ([]models.Course, error)
	ListSubjectCourses(ctx context.Context, subjectID string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, tutorID, courseID string, req models.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, tutorID, courseID string) error
}

// DefaultCourseService is the production implementation.
type DefaultCourseService struct {
	Repo   courseRepo.CourseRepository
	Tutors tutorRepo.TutorRepository
}

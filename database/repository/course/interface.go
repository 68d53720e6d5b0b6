// File: database/repository/course/interface.go
package courseRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// CourseRepository defines data access for subjects and the courses
// tutors offer under them.
type CourseRepository interface {
	// CreateSubject inserts a new subject.
	CreateSubject(ctx context.Context, subject *models.Subject) error
	// GetSubjects retrieves all subjects.
	GetSubjects(ctx context.Context) ([]models.Subject, error)
	// GetSubjectByID retrieves a subject by its unique ID.
	GetSubjectByID(ctx context.Context, id string) (*models.Subject, error)

	// CreateCourse inserts a new course.
	CreateCourse(ctx context.Context, course *models.Course) error
	// GetCourseByID retrieves a course by its unique ID.
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	// GetCoursesByTutor retrieves all courses offered by a tutor.
	GetCoursesByTutor(ctx context.Context, tutorID string) ([]models.Course, error)
	// GetCoursesBySubject retrieves all active courses under a subject.
	GetCoursesBySubject(ctx context.Context, subjectID string) ([]models.Course, error)
	// UpdateCourse applies a $set update to the course with the given ID.
	UpdateCourse(ctx context.Context, id string, updateDoc bson.M) error
	// DeleteCourse removes a course by its ID.
	DeleteCourse(ctx context.Context, id string) error
}

type mongoCourseRepo struct {
	subjects *mongo.Collection
	courses  *mongo.Collection
}

// NewMongoCourseRepo constructs a new MongoDB CourseRepository.
func NewMongoCourseRepo() CourseRepository {
	db := database.MongoClient.Database("tutorhive")
	return &mongoCourseRepo{
		subjects: db.Collection("subjects"),
		courses:  db.Collection("courses"),
	}
}

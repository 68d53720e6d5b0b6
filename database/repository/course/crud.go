// File: database/repository/course/crud.go
package courseRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"tutorhive/models"
)

func (r *mongoCourseRepo) CreateSubject(ctx context.Context, subject *models.Subject) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	subject.CreatedAt = time.Now()
	if _, err := r.subjects.InsertOne(ctx, subject); err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func (r *mongoCourseRepo) GetSubjects(ctx context.Context) ([]models.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.subjects.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer cursor.Close(ctx)

	subjects := []models.Subject{}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects: %w", err)
	}
	return subjects, nil
}

func (r *mongoCourseRepo) GetSubjectByID(ctx context.Context, id string) (*models.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var subject models.Subject
	if err := r.subjects.FindOne(ctx, bson.M{"id": id}).Decode(&subject); err != nil {
		return nil, fmt.Errorf("failed to fetch subject with id %s: %w", id, err)
	}
	return &subject, nil
}

func (r *mongoCourseRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.courses.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *mongoCourseRepo) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := r.courses.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, fmt.Errorf("failed to fetch course with id %s: %w", id, err)
	}
	return &course, nil
}

func (r *mongoCourseRepo) GetCoursesByTutor(ctx context.Context, tutorID string) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.courses.Find(ctx, bson.M{"tutorId": tutorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses for tutor %s: %w", tutorID, err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (r *mongoCourseRepo) GetCoursesBySubject(ctx context.Context, subjectID string) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.courses.Find(ctx, bson.M{"subjectId": subjectID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses for subject %s: %w", subjectID, err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (r *mongoCourseRepo) UpdateCourse(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.courses.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update course with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

func (r *mongoCourseRepo) DeleteCourse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.courses.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

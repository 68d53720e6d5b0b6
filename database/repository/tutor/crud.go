// File: database/repository/tutor/crud.go
package tutorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"tutorhive/models"
)

func (r *mongoTutorRepo) GetByID(ctx context.Context, id string) (*models.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor); err != nil {
		return nil, fmt.Errorf("failed to fetch tutor with id %s: %w", id, err)
	}
	return &tutor, nil
}

func (r *mongoTutorRepo) GetByEmail(ctx context.Context, email string) (*models.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&tutor); err != nil {
		return nil, fmt.Errorf("failed to fetch tutor with email %s: %w", email, err)
	}
	return &tutor, nil
}

func (r *mongoTutorRepo) GetByStatus(ctx context.Context, status string) ([]models.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutors with status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	tutors := []models.Tutor{}
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, fmt.Errorf("failed to decode tutors: %w", err)
	}
	return tutors, nil
}

func (r *mongoTutorRepo) Create(ctx context.Context, tutor *models.Tutor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	tutor.CreatedAt = now
	tutor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tutor); err != nil {
		return fmt.Errorf("failed to create tutor: %w", err)
	}
	return nil
}

func (r *mongoTutorRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update tutor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with id %s not found", id)
	}
	return nil
}

func (r *mongoTutorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tutor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tutor with id %s not found", id)
	}
	return nil
}

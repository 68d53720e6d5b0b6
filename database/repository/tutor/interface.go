// File: database/repository/tutor/interface.go
package tutorRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// TutorRepository defines methods for tutor account data access.
type TutorRepository interface {
	// GetByID retrieves a tutor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Tutor, error)
	// GetByEmail retrieves a tutor by its email address.
	GetByEmail(ctx context.Context, email string) (*models.Tutor, error)
	// GetByStatus retrieves all tutors in the given lifecycle status.
	GetByStatus(ctx context.Context, status string) ([]models.Tutor, error)
	// Create inserts a new tutor record.
	Create(ctx context.Context, tutor *models.Tutor) error
	// UpdateSetDocument applies a $set update to the tutor with the given ID.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// Delete removes a tutor record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo constructs a new MongoDB TutorRepository.
func NewMongoTutorRepo() TutorRepository {
	db := database.MongoClient.Database("tutorhive")
	return &mongoTutorRepo{
		coll: db.Collection("tutors"),
	}
}

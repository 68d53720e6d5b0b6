// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// AvailabilityRepository persists each tutor's weekly availability as a flat
// list of day/start/end records. Saves replace the stored list wholesale;
// two concurrent editing sessions resolve last-writer-wins.
type AvailabilityRepository interface {
	GetByTutorID(ctx context.Context, tutorID string) ([]models.AvailabilityRecord, error)
	Replace(ctx context.Context, tutorID string, records []models.AvailabilityRecord) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("tutorhive")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}

// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorhive/models"
)

type availabilityDoc struct {
	TutorID   string                      `bson:"tutorId"`
	Records   []models.AvailabilityRecord `bson:"records"`
	UpdatedAt time.Time                   `bson:"updatedAt"`
}

func (r *mongoAvailabilityRepo) GetByTutorID(ctx context.Context, tutorID string) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc availabilityDoc
	err := r.coll.FindOne(ctx, bson.M{"tutorId": tutorID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		// A tutor with no saved availability has an empty week.
		return []models.AvailabilityRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

func (r *mongoAvailabilityRepo) Replace(ctx context.Context, tutorID string, records []models.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := availabilityDoc{
		TutorID:   tutorID,
		Records:   records,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"tutorId": tutorID}, doc, opts)
	return err
}

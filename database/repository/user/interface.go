// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// UserRepository defines methods for student account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// UpdateSetDocument applies a $set update to the user with the given ID.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("tutorhive")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}

// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// PaymentRepository defines data access for lesson transactions and their
// disputes.
type PaymentRepository interface {
	// CreateTransaction inserts a new transaction record.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	// GetTransactionByID retrieves a transaction by its unique ID.
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	// GetTransactionsByUser retrieves all transactions made by a student.
	GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	// UpdateTransaction applies a $set update to the transaction with the given ID.
	UpdateTransaction(ctx context.Context, id string, updateDoc bson.M) error

	// CreateDispute inserts a new dispute record.
	CreateDispute(ctx context.Context, dispute *models.Dispute) error
	// GetDisputeByID retrieves a dispute by its unique ID.
	GetDisputeByID(ctx context.Context, id string) (*models.Dispute, error)
	// UpdateDispute applies a $set update to the dispute with the given ID.
	UpdateDispute(ctx context.Context, id string, updateDoc bson.M) error
	// AppendDisputeNote pushes a note onto an existing dispute.
	AppendDisputeNote(ctx context.Context, id string, note models.DisputeNote) error
}

type mongoPaymentRepo struct {
	transactions *mongo.Collection
	disputes     *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database("tutorhive")
	return &mongoPaymentRepo{
		transactions: db.Collection("transactions"),
		disputes:     db.Collection("disputes"),
	}
}

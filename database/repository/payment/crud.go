// File: database/repository/payment/crud.go
package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"tutorhive/models"
)

func (r *mongoPaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if _, err := r.transactions.InsertOne(ctx, txn); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var txn models.Transaction
	if err := r.transactions.FindOne(ctx, bson.M{"id": id}).Decode(&txn); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction with id %s: %w", id, err)
	}
	return &txn, nil
}

func (r *mongoPaymentRepo) GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.transactions.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	txns := []models.Transaction{}
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txns, nil
}

func (r *mongoPaymentRepo) UpdateTransaction(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.transactions.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update transaction with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("transaction with id %s not found", id)
	}
	return nil
}

func (r *mongoPaymentRepo) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	dispute.CreatedAt = now
	dispute.UpdatedAt = now

	if _, err := r.disputes.InsertOne(ctx, dispute); err != nil {
		return fmt.Errorf("failed to create dispute: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetDisputeByID(ctx context.Context, id string) (*models.Dispute, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dispute models.Dispute
	if err := r.disputes.FindOne(ctx, bson.M{"id": id}).Decode(&dispute); err != nil {
		return nil, fmt.Errorf("failed to fetch dispute with id %s: %w", id, err)
	}
	return &dispute, nil
}

func (r *mongoPaymentRepo) UpdateDispute(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.disputes.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update dispute with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("dispute with id %s not found", id)
	}
	return nil
}

func (r *mongoPaymentRepo) AppendDisputeNote(ctx context.Context, id string, note models.DisputeNote) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.disputes.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append note to dispute %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("dispute with id %s not found", id)
	}
	return nil
}

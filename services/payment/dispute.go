// File: services/payment/dispute.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/refund"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tutorhive/config"
	"tutorhive/models"
	"tutorhive/utils"
)

// OpenDispute opens a dispute against a succeeded transaction and schedules
// the auto-close task for the tutor's response deadline.
func (s *DefaultPaymentService) OpenDispute(ctx context.Context, userID string, req models.OpenDisputeRequest) (*models.Dispute, error) {
	logger := utils.GetLogger()

	txn, err := s.getTransaction(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, ErrNotTransactionOwner
	}
	if txn.Status != models.TransactionSucceeded {
		return nil, ErrNotDisputable
	}

	days := config.AppConfig.DisputeResponseDays
	if days <= 0 {
		days = 7
	}
	deadline := time.Now().Add(time.Duration(days) * 24 * time.Hour)

	dispute := &models.Dispute{
		ID:            uuid.New().String(),
		TransactionID: txn.ID,
		UserID:        userID,
		TutorID:       txn.TutorID,
		Reason:        req.Reason,
		Status:        models.DisputeOpen,
		Deadline:      deadline,
	}
	if err := s.Repo.CreateDispute(ctx, dispute); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateTransaction(ctx, txn.ID, bson.M{"status": models.TransactionDisputed}); err != nil {
		return nil, err
	}

	if err := s.Enqueuer.EnqueueDisputeDeadline(dispute.ID, deadline); err != nil {
		// The dispute stands even if scheduling fails; an admin can still
		// resolve it manually.
		logger.Error("Failed to schedule dispute deadline task", zap.Error(err), zap.String("disputeID", dispute.ID))
	}

	logger.Info("Dispute opened",
		zap.String("disputeID", dispute.ID),
		zap.String("transactionID", txn.ID),
		zap.Time("deadline", deadline))
	return dispute, nil
}

// SubmitDisputeNote appends evidence or commentary to an open dispute. Both
// parties may write; authorship is recorded on the note.
func (s *DefaultPaymentService) SubmitDisputeNote(ctx context.Context, authorID, disputeID, body string) (*models.Dispute, error) {
	dispute, err := s.getDispute(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != models.DisputeOpen {
		return nil, ErrDisputeClosed
	}
	if authorID != dispute.UserID && authorID != dispute.TutorID {
		return nil, ErrDisputeNotFound
	}

	note := models.DisputeNote{
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AppendDisputeNote(ctx, disputeID, note); err != nil {
		return nil, err
	}
	return s.getDispute(ctx, disputeID)
}

// ResolveDispute settles an open dispute. Outcome "refund" refunds the Stripe
// payment and marks the transaction refunded; "dismiss" closes the dispute and
// restores the transaction to succeeded.
func (s *DefaultPaymentService) ResolveDispute(ctx context.Context, disputeID, outcome string) (*models.Dispute, error) {
	dispute, err := s.getDispute(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != models.DisputeOpen {
		return nil, ErrDisputeClosed
	}

	switch outcome {
	case "refund":
		if err := s.refundDispute(ctx, dispute); err != nil {
			return nil, err
		}
	case "dismiss":
		if err := s.Repo.UpdateDispute(ctx, dispute.ID, bson.M{"status": models.DisputeDismissed}); err != nil {
			return nil, err
		}
		if err := s.Repo.UpdateTransaction(ctx, dispute.TransactionID, bson.M{"status": models.TransactionSucceeded}); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownOutcome
	}

	utils.GetLogger().Info("Dispute resolved", zap.String("disputeID", disputeID), zap.String("outcome", outcome))
	return s.getDispute(ctx, disputeID)
}

// CloseExpiredDispute runs when a dispute's response deadline passes. A
// dispute the tutor never answered resolves in the student's favour with a
// refund; disputes already settled are left alone.
func (s *DefaultPaymentService) CloseExpiredDispute(ctx context.Context, disputeID string) error {
	logger := utils.GetLogger()

	dispute, err := s.getDispute(ctx, disputeID)
	if err != nil {
		if errors.Is(err, ErrDisputeNotFound) {
			return nil
		}
		return err
	}
	if dispute.Status != models.DisputeOpen {
		return nil
	}
	if time.Now().Before(dispute.Deadline) {
		return nil
	}

	if err := s.refundDispute(ctx, dispute); err != nil {
		return err
	}
	logger.Info("Dispute auto-closed after deadline", zap.String("disputeID", disputeID))
	return nil
}

func (s *DefaultPaymentService) refundDispute(ctx context.Context, dispute *models.Dispute) error {
	txn, err := s.getTransaction(ctx, dispute.TransactionID)
	if err != nil {
		return err
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(txn.StripeIntentID),
	}
	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("failed to refund payment intent %s: %w", txn.StripeIntentID, err)
	}

	if err := s.Repo.UpdateDispute(ctx, dispute.ID, bson.M{"status": models.DisputeRefunded}); err != nil {
		return err
	}
	return s.Repo.UpdateTransaction(ctx, txn.ID, bson.M{"status": models.TransactionRefunded})
}

func (s *DefaultPaymentService) getDispute(ctx context.Context, id string) (*models.Dispute, error) {
	dispute, err := s.Repo.GetDisputeByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDisputeNotFound
		}
		return nil, err
	}
	return dispute, nil
}

// File: services/payment/service.go
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/utils"
)

const defaultCurrency = "usd"

// CreateLessonPayment opens a Stripe payment intent for one lesson of the
// given course and records a pending transaction. The returned client secret
// lets the frontend complete the card flow.
func (s *DefaultPaymentService) CreateLessonPayment(ctx context.Context, userID string, req models.LessonPaymentRequest) (*models.LessonPaymentResponse, error) {
	logger := utils.GetLogger()

	lessonCourse, err := s.Courses.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("course %s not found", req.CourseID)
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	txnID := uuid.New().String()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(lessonCourse.PricePerLesson),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("transactionId", txnID)
	params.AddMetadata("courseId", lessonCourse.ID)
	params.AddMetadata("userId", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	txn := &models.Transaction{
		ID:             txnID,
		UserID:         userID,
		TutorID:        lessonCourse.TutorID,
		CourseID:       lessonCourse.ID,
		Amount:         lessonCourse.PricePerLesson,
		Currency:       currency,
		StripeIntentID: intent.ID,
		Status:         models.TransactionPending,
	}
	if err := s.Repo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("Lesson payment initiated",
		zap.String("transactionID", txn.ID),
		zap.String("courseID", lessonCourse.ID),
		zap.Int64("amount", txn.Amount))
	return &models.LessonPaymentResponse{
		Transaction:  *txn,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// ConfirmLessonPayment checks the intent's status with Stripe and marks the
// transaction succeeded.
func (s *DefaultPaymentService) ConfirmLessonPayment(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	txn, err := s.getTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, ErrNotTransactionOwner
	}
	if txn.Status == models.TransactionSucceeded {
		return txn, nil
	}

	intent, err := paymentintent.Get(txn.StripeIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment not completed, intent status is %s", intent.Status)
	}

	if err := s.Repo.UpdateTransaction(ctx, txn.ID, bson.M{"status": models.TransactionSucceeded}); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Lesson payment confirmed", zap.String("transactionID", txn.ID))
	return s.getTransaction(ctx, txn.ID)
}

// ListUserTransactions returns the student's payment history.
func (s *DefaultPaymentService) ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.Repo.GetTransactionsByUser(ctx, userID)
}

func (s *DefaultPaymentService) getTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	txn, err := s.Repo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

// File: services/payment/interface.go
package payment

import (
	"context"
	"time"

	courseRepo "tutorhive/database/repository/course"
	paymentRepo "tutorhive/database/repository/payment"
	"tutorhive/models"
)

// DeadlineEnqueuer schedules the auto-close task for a dispute's response
// deadline. Implemented by the asynq enqueuer in services/tasks.
type DeadlineEnqueuer interface {
	EnqueueDisputeDeadline(disputeID string, deadline time.Time) error
}

// PaymentService handles lesson payments and their disputes.
type PaymentService interface {
	// Payments.
	CreateLessonPayment(ctx context.Context, userID string, req models.LessonPaymentRequest) (*models.LessonPaymentResponse, error)
	ConfirmLessonPayment(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// Disputes.
	OpenDispute(ctx context.Context, userID string, req models.OpenDisputeRequest) (*models.Dispute, error)
	SubmitDisputeNote(ctx context.Context, authorID, disputeID, body string) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, disputeID, outcome string) (*models.Dispute, error)
	// CloseExpiredDispute is invoked by the task worker when a dispute's
	// response deadline passes.
	CloseExpiredDispute(ctx context.Context, disputeID string) error
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Courses  courseRepo.CourseRepository
	Enqueuer DeadlineEnqueuer
}

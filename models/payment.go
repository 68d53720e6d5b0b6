// File: models/payment.go
package models

import "time"

// Transaction statuses.
const (
	TransactionPending   = "pending"
	TransactionSucceeded = "succeeded"
	TransactionDisputed  = "disputed"
	TransactionRefunded  = "refunded"
)

// Dispute statuses.
const (
	DisputeOpen      = "open"
	DisputeRefunded  = "refunded"
	DisputeDismissed = "dismissed"
)

// Transaction records one lesson payment from a student to a tutor.
type Transaction struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	TutorID        string    `bson:"tutorId" json:"tutorId"`
	CourseID       string    `bson:"courseId" json:"courseId"`
	Amount         int64     `bson:"amount" json:"amount"` // minor currency units
	Currency       string    `bson:"currency" json:"currency"`
	StripeIntentID string    `bson:"stripeIntentId" json:"-"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisputeNote is one piece of evidence or commentary on a dispute.
type DisputeNote struct {
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Dispute is a student complaint against a paid lesson. Open disputes past
// their response deadline are closed automatically by the task worker.
type Dispute struct {
	ID            string        `bson:"id" json:"id"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	UserID        string        `bson:"userId" json:"userId"`
	TutorID       string        `bson:"tutorId" json:"tutorId"`
	Reason        string        `bson:"reason" json:"reason"`
	Notes         []DisputeNote `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string        `bson:"status" json:"status"`
	Deadline      time.Time     `bson:"deadline" json:"deadline"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// DisputeDeadlinePayload is the asynq task payload scheduled for a dispute's
// response deadline.
type DisputeDeadlinePayload struct {
	DisputeID string `json:"disputeId"`
}

// LessonPaymentRequest starts a Stripe payment for one lesson.
type LessonPaymentRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Currency string `json:"currency"`
}

// LessonPaymentResponse returns the recorded transaction together with the
// client secret the frontend needs to complete the Stripe flow.
type LessonPaymentResponse struct {
	Transaction  Transaction `json:"transaction"`
	ClientSecret string      `json:"clientSecret"`
}

// OpenDisputeRequest opens a dispute against a succeeded transaction.
type OpenDisputeRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

// DisputeNoteRequest appends evidence to an open dispute.
type DisputeNoteRequest struct {
	Body string `json:"body" binding:"required"`
}

// ResolveDisputeRequest is the admin resolution: "refund" or "dismiss".
type ResolveDisputeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

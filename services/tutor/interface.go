// File: services/tutor/interface.go
package tutor

import (
	"context"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/services/user"
)

// TutorService manages tutor accounts and the application pipeline:
// Apply -> VerifyApplicationOTP -> SubmitCredentials -> admin Approve/Reject.
type TutorService interface {
	// Application pipeline.
	Apply(ctx context.Context, basic models.TutorApplicationData) (string, error)
	VerifyApplicationOTP(ctx context.Context, sessionID, otp string) error
	SubmitCredentials(ctx context.Context, sessionID string, credentials []models.Credential) (*models.Tutor, error)

	// Admin review.
	ListByStatus(ctx context.Context, status string) ([]models.Tutor, error)
	Approve(ctx context.Context, tutorID string) (*models.Tutor, error)
	Reject(ctx context.Context, tutorID, reason string) error

	// Authentication.
	Authenticate(ctx context.Context, email, password string) (*user.AuthResponse, error)
	RevokeAuthToken(ctx context.Context, tutorID string) error

	// Account management.
	GetTutorByID(ctx context.Context, tutorID string) (*models.Tutor, error)
	UpdateTutor(ctx context.Context, tutorID string, req models.TutorUpdateRequest) (*models.Tutor, error)
	DeleteTutor(ctx context.Context, tutorID string) error
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo tutorRepo.TutorRepository
}

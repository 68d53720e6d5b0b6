// File: services/tutor/application.go
package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/models"
	"tutorhive/utils"
)

const (
	applicationSessionTTL = 24 * time.Hour
	otpStatusPending      = "pending"
	otpStatusVerified     = "verified"
	authTokenTTL          = 72 * time.Hour
)

func applicationKey(sessionID string) string {
	return fmt.Sprintf("apply:%s", sessionID)
}

// Apply opens a tutor-application session and sends a verification code to
// the applicant's email. Returns the session ID for the following steps.
func (s *DefaultTutorService) Apply(ctx context.Context, basic models.TutorApplicationData) (string, error) {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByEmail(ctx, basic.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	sessionID := uuid.New().String()
	now := time.Now()
	session := models.TutorApplicationSession{
		TempID:        sessionID,
		BasicData:     &basic,
		OTPStatus:     otpStatusPending,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := utils.SaveSession(applicationKey(sessionID), session, applicationSessionTTL); err != nil {
		return "", fmt.Errorf("failed to open application session: %w", err)
	}

	if err := utils.InitiateOTP(sessionID, basic.Email); err != nil {
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}

	logger.Info("Tutor application initiated", zap.String("sessionID", sessionID))
	return sessionID, nil
}

// VerifyApplicationOTP checks the code sent to the applicant's email.
func (s *DefaultTutorService) VerifyApplicationOTP(ctx context.Context, sessionID, otp string) error {
	var session models.TutorApplicationSession
	if err := utils.GetSession(applicationKey(sessionID), &session); err != nil {
		return ErrApplicationNotFound
	}

	if err := utils.VerifyOTPRecord(sessionID, otp); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	session.OTPStatus = otpStatusVerified
	session.LastUpdatedAt = time.Now()
	return utils.SaveSession(applicationKey(sessionID), session, applicationSessionTTL)
}

// SubmitCredentials attaches the applicant's qualifications and creates the
// tutor record in pending_review status for an admin to act on.
func (s *DefaultTutorService) SubmitCredentials(ctx context.Context, sessionID string, credentials []models.Credential) (*models.Tutor, error) {
	logger := utils.GetLogger()

	var session models.TutorApplicationSession
	if err := utils.GetSession(applicationKey(sessionID), &session); err != nil {
		return nil, ErrApplicationNotFound
	}
	if session.OTPStatus != otpStatusVerified {
		return nil, ErrOTPNotVerified
	}
	basic := session.BasicData
	if basic == nil {
		return nil, ErrApplicationNotFound
	}
	if len(credentials) == 0 {
		return nil, fmt.Errorf("at least one credential is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(basic.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newTutor := &models.Tutor{
		ID:           uuid.New().String(),
		Name:         basic.Name,
		Email:        basic.Email,
		PasswordHash: string(hash),
		PhoneNumber:  basic.PhoneNumber,
		Bio:          basic.Bio,
		Subjects:     basic.Subjects,
		HourlyRate:   basic.HourlyRate,
		Status:       models.TutorStatusPendingReview,
		Credentials:  credentials,
	}
	if err := s.Repo.Create(ctx, newTutor); err != nil {
		return nil, fmt.Errorf("failed to create tutor: %w", err)
	}

	if err := utils.DeleteSession(applicationKey(sessionID)); err != nil {
		logger.Warn("Failed to clean up application session", zap.Error(err))
	}

	logger.Info("Tutor application submitted for review", zap.String("tutorID", newTutor.ID))
	return newTutor, nil
}

// ListByStatus returns tutors in the given lifecycle status, for the admin
// review queue.
func (s *DefaultTutorService) ListByStatus(ctx context.Context, status string) ([]models.Tutor, error) {
	return s.Repo.GetByStatus(ctx, status)
}

// Approve activates a pending tutor.
func (s *DefaultTutorService) Approve(ctx context.Context, tutorID string) (*models.Tutor, error) {
	logger := utils.GetLogger()

	current, err := s.GetTutorByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.TutorStatusPendingReview {
		return nil, ErrInvalidTransition
	}

	update := bson.M{"status": models.TutorStatusActive, "rejectReason": ""}
	if err := s.Repo.UpdateSetDocument(ctx, tutorID, update); err != nil {
		return nil, fmt.Errorf("failed to approve tutor: %w", err)
	}

	if err := utils.SendVerificationEmail(current.Email, "Your tutor application has been approved. Welcome to TutorHive!"); err != nil {
		logger.Warn("Failed to send approval email", zap.Error(err))
	}

	logger.Info("Tutor approved", zap.String("tutorID", tutorID))
	return s.GetTutorByID(ctx, tutorID)
}

// Reject declines a pending tutor with a reason.
func (s *DefaultTutorService) Reject(ctx context.Context, tutorID, reason string) error {
	logger := utils.GetLogger()

	current, err := s.GetTutorByID(ctx, tutorID)
	if err != nil {
		return err
	}
	if current.Status != models.TutorStatusPendingReview {
		return ErrInvalidTransition
	}

	update := bson.M{"status": models.TutorStatusRejected, "rejectReason": reason}
	if err := s.Repo.UpdateSetDocument(ctx, tutorID, update); err != nil {
		return fmt.Errorf("failed to reject tutor: %w", err)
	}

	logger.Info("Tutor rejected", zap.String("tutorID", tutorID), zap.String("reason", reason))
	return nil
}

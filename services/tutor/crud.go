// File: services/tutor/crud.go
package tutor

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/models"
	"tutorhive/services/user"
	"tutorhive/utils"
)

// Authenticate verifies the email/password pair for an active tutor and
// issues a fresh token.
func (s *DefaultTutorService) Authenticate(ctx context.Context, email, password string) (*user.AuthResponse, error) {
	logger := utils.GetLogger()

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}
	if account.Status != models.TutorStatusActive {
		return nil, ErrNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, "tutor", authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.StoreAuthToken(account.ID, token, authTokenTTL); err != nil {
		return nil, err
	}

	logger.Info("Tutor authenticated", zap.String("tutorID", account.ID))
	return &user.AuthResponse{
		ID:       account.ID,
		Token:    token,
		Username: account.Name,
		Email:    account.Email,
		Role:     "tutor",
	}, nil
}

// RevokeAuthToken signs the tutor out everywhere.
func (s *DefaultTutorService) RevokeAuthToken(ctx context.Context, tutorID string) error {
	return utils.RevokeAuthToken(tutorID)
}

// GetTutorByID returns the tutor with the given ID.
func (s *DefaultTutorService) GetTutorByID(ctx context.Context, tutorID string) (*models.Tutor, error) {
	account, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTutorNotFound
		}
		return nil, err
	}
	return account, nil
}

// UpdateTutor applies the editable profile fields and returns the updated tutor.
func (s *DefaultTutorService) UpdateTutor(ctx context.Context, tutorID string, req models.TutorUpdateRequest) (*models.Tutor, error) {
	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phoneNumber"] = req.PhoneNumber
	}
	if req.Bio != "" {
		updateDoc["bio"] = req.Bio
	}
	if req.Subjects != nil {
		updateDoc["subjects"] = req.Subjects
	}
	if req.HourlyRate > 0 {
		updateDoc["hourlyRate"] = req.HourlyRate
	}
	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateSetDocument(ctx, tutorID, updateDoc); err != nil {
			return nil, fmt.Errorf("failed to update tutor: %w", err)
		}
	}
	return s.GetTutorByID(ctx, tutorID)
}

// DeleteTutor removes the account and revokes its token.
func (s *DefaultTutorService) DeleteTutor(ctx context.Context, tutorID string) error {
	if err := s.Repo.Delete(ctx, tutorID); err != nil {
		return err
	}
	return utils.RevokeAuthToken(tutorID)
}

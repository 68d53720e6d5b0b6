// File: services/user/signup.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/models"
	"tutorhive/utils"
)

const (
	registrationSessionTTL = 30 * time.Minute
	otpStatusPending       = "pending"
	otpStatusVerified      = "verified"
	authTokenTTL           = 72 * time.Hour
)

func registrationKey(sessionID string) string {
	return fmt.Sprintf("register:%s", sessionID)
}

// InitiateRegistration opens a registration session for the given basic data
// and sends a verification code to the email. Returns the session ID the
// client must present on the following steps.
func (s *DefaultUserService) InitiateRegistration(ctx context.Context, basic models.UserBasicRegistrationData) (string, error) {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByEmail(ctx, basic.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	sessionID := uuid.New().String()
	now := time.Now()
	session := models.UserRegistrationSession{
		TempID:        sessionID,
		BasicData:     &basic,
		OTPStatus:     otpStatusPending,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := utils.SaveSession(registrationKey(sessionID), session, registrationSessionTTL); err != nil {
		return "", fmt.Errorf("failed to open registration session: %w", err)
	}

	if err := utils.InitiateOTP(sessionID, basic.Email); err != nil {
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}

	logger.Info("Registration initiated", zap.String("sessionID", sessionID))
	return sessionID, nil
}

// VerifyRegistrationOTP checks the code sent to the session's email and marks
// the session verified.
func (s *DefaultUserService) VerifyRegistrationOTP(ctx context.Context, sessionID, otp string) error {
	var session models.UserRegistrationSession
	if err := utils.GetSession(registrationKey(sessionID), &session); err != nil {
		return ErrSessionNotFound
	}

	if err := utils.VerifyOTPRecord(sessionID, otp); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	session.OTPStatus = otpStatusVerified
	session.LastUpdatedAt = time.Now()
	return utils.SaveSession(registrationKey(sessionID), session, registrationSessionTTL)
}

// FinalizeRegistration creates the account from a verified session and signs
// the new user in.
func (s *DefaultUserService) FinalizeRegistration(ctx context.Context, sessionID string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	var session models.UserRegistrationSession
	if err := utils.GetSession(registrationKey(sessionID), &session); err != nil {
		return nil, ErrSessionNotFound
	}
	if session.OTPStatus != otpStatusVerified {
		return nil, ErrOTPNotVerified
	}
	basic := session.BasicData
	if basic == nil {
		return nil, ErrSessionNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(basic.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Username:     basic.Username,
		Email:        basic.Email,
		PasswordHash: string(hash),
		PhoneNumber:  basic.PhoneNumber,
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email, "user", authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.StoreAuthToken(newUser.ID, token, authTokenTTL); err != nil {
		return nil, err
	}

	if err := utils.DeleteSession(registrationKey(sessionID)); err != nil {
		logger.Warn("Failed to clean up registration session", zap.Error(err))
	}

	logger.Info("Registration finalized", zap.String("userID", newUser.ID))
	return &AuthResponse{
		ID:       newUser.ID,
		Token:    token,
		Username: newUser.Username,
		Email:    newUser.Email,
		Role:     "user",
	}, nil
}

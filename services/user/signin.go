// File: services/user/signin.go
package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/utils"
)

// Authenticate verifies the email/password pair and issues a fresh token.
// Issuing a new token invalidates the previous one through the auth cache.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, "user", authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.StoreAuthToken(account.ID, token, authTokenTTL); err != nil {
		return nil, err
	}

	logger.Info("User authenticated", zap.String("userID", account.ID))
	return &AuthResponse{
		ID:       account.ID,
		Token:    token,
		Username: account.Username,
		Email:    account.Email,
		Role:     "user",
	}, nil
}

// RevokeAuthToken signs the user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, userID string) error {
	return utils.RevokeAuthToken(userID)
}

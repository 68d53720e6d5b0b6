// File: services/user/crud.go
package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/models"
	"tutorhive/utils"
)

// GetUserByID returns the account with the given ID.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	account, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return account, nil
}

// UpdateUser applies the editable profile fields and returns the updated account.
func (s *DefaultUserService) UpdateUser(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.User, error) {
	updateDoc := bson.M{}
	if req.Username != "" {
		updateDoc["username"] = req.Username
	}
	if req.PhoneNumber != "" {
		updateDoc["phoneNumber"] = req.PhoneNumber
	}
	if req.Subjects != nil {
		updateDoc["subjects"] = req.Subjects
	}
	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateSetDocument(ctx, userID, updateDoc); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return s.GetUserByID(ctx, userID)
}

// UpdatePassword re-authenticates with the current password before setting the
// new one, then revokes the active token.
func (s *DefaultUserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	account, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(ctx, userID, bson.M{"passwordHash": string(hash)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return utils.RevokeAuthToken(userID)
}

// DeleteUser removes the account and revokes its token.
func (s *DefaultUserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	return utils.RevokeAuthToken(userID)
}

// File: services/user/interface.go
package user

import (
	"context"

	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
)

// AuthResponse contains the account's ID, token, and display details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// UserService manages student accounts.
type UserService interface {
	// Registration pipeline.
	InitiateRegistration(ctx context.Context, basic models.UserBasicRegistrationData) (string, error)
	VerifyRegistrationOTP(ctx context.Context, sessionID, otp string) error
	FinalizeRegistration(ctx context.Context, sessionID string) (*AuthResponse, error)

	// Authentication.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, userID string) error

	// Account management.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

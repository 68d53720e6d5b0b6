// File: services/user/errors.go
package user

import "errors"

var (
	// ErrUserNotFound indicates no account matches the given ID or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the email already belongs to an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionNotFound indicates a missing or expired registration session.
	ErrSessionNotFound = errors.New("registration session not found or expired")
	// ErrOTPNotVerified indicates finalization was attempted before the OTP step.
	ErrOTPNotVerified = errors.New("email not verified yet")
)

// File: services/tutor/errors.go
package tutor

import "errors"

var (
	// ErrTutorNotFound indicates no tutor matches the given ID or email.
	ErrTutorNotFound = errors.New("tutor not found")
	// ErrEmailTaken indicates the email already belongs to a tutor account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrApplicationNotFound indicates a missing or expired application session.
	ErrApplicationNotFound = errors.New("application session not found or expired")
	// ErrOTPNotVerified indicates credentials were submitted before the OTP step.
	ErrOTPNotVerified = errors.New("email not verified yet")
	// ErrInvalidTransition indicates a review action on a tutor whose status
	// does not allow it.
	ErrInvalidTransition = errors.New("tutor is not awaiting review")
	// ErrNotActive indicates an operation that requires an approved tutor.
	ErrNotActive = errors.New("tutor is not active")
)

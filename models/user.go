// File: models/user.go
package models

import "time"

// User is a student account on the platform.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Subjects     []string  `bson:"subjects,omitempty" json:"subjects,omitempty"` // subjects of interest
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserBasicRegistrationData carries the fields collected at the first
// registration step, before the email is verified.
type UserBasicRegistrationData struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// UserRegistrationSession is the Redis-backed state of an in-flight
// registration. It never reaches Mongo.
type UserRegistrationSession struct {
	TempID        string                     `json:"tempId"`
	BasicData     *UserBasicRegistrationData `json:"basicData,omitempty"`
	OTPStatus     string                     `json:"otpStatus"`
	CreatedAt     time.Time                  `json:"createdAt"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
}

// UserUpdateRequest lists the user-editable profile fields.
type UserUpdateRequest struct {
	Username    string   `json:"username,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
}

// UpdatePasswordRequest changes the account password after re-authentication.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// File: models/tutor.go
package models

import "time"

// Tutor application lifecycle statuses.
const (
	TutorStatusPendingReview = "pending_review"
	TutorStatusActive        = "active"
	TutorStatusRejected      = "rejected"
)

// Tutor is a verified (or in-review) teaching account.
type Tutor struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	PhoneNumber  string       `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Bio          string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Subjects     []string     `bson:"subjects,omitempty" json:"subjects,omitempty"`
	HourlyRate   int64        `bson:"hourlyRate" json:"hourlyRate"` // minor currency units
	Status       string       `bson:"status" json:"status"`
	Credentials  []Credential `bson:"credentials,omitempty" json:"credentials,omitempty"`
	RejectReason string       `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Credential is one qualification submitted during the application pipeline.
type Credential struct {
	Title       string `bson:"title" json:"title" binding:"required"`
	Institution string `bson:"institution" json:"institution" binding:"required"`
	Year        int    `bson:"year" json:"year"`
	DocumentRef string `bson:"documentRef,omitempty" json:"documentRef,omitempty"`
}

// TutorApplicationData carries the first-step application fields.
type TutorApplicationData struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Bio         string   `json:"bio"`
	Subjects    []string `json:"subjects"`
	HourlyRate  int64    `json:"hourlyRate"`
}

// TutorApplicationSession tracks an application between Apply and
// SubmitCredentials. Lives in Redis only.
type TutorApplicationSession struct {
	TempID        string                `json:"tempId"`
	BasicData     *TutorApplicationData `json:"basicData,omitempty"`
	OTPStatus     string                `json:"otpStatus"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// TutorUpdateRequest lists the tutor-editable profile fields.
type TutorUpdateRequest struct {
	Name        string   `json:"name,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
	HourlyRate  int64    `json:"hourlyRate,omitempty"`
}

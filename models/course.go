// File: models/course.go
package models

import "time"

// Subject is an admin-curated topic tutors can teach under.
type Subject struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Course is a tutor's offering within a subject.
type Course struct {
	ID             string    `bson:"id" json:"id"`
	TutorID        string    `bson:"tutorId" json:"tutorId"`
	SubjectID      string    `bson:"subjectId" json:"subjectId"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	PricePerLesson int64     `bson:"pricePerLesson" json:"pricePerLesson"` // minor currency units
	Level          string    `bson:"level,omitempty" json:"level,omitempty"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateCourseRequest is the tutor-facing payload for a new course.
type CreateCourseRequest struct {
	SubjectID      string `json:"subjectId" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	PricePerLesson int64  `json:"pricePerLesson" binding:"required"`
	Level          string `json:"level"`
}

// UpdateCourseRequest lists the mutable course fields.
type UpdateCourseRequest struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	PricePerLesson int64  `json:"pricePerLesson,omitempty"`
	Level          string `json:"level,omitempty"`
	Active         *bool  `json:"active,omitempty"`
}

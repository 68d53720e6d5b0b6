// File: services/course/errors.go
package course

import "errors"

var (
	// ErrSubjectNotFound indicates no subject matches the given ID.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrCourseNotFound indicates no course matches the given ID.
	ErrCourseNotFound = errors.New("course not found")
	// ErrTutorNotActive indicates the tutor may not offer courses yet.
	ErrTutorNotActive = errors.New("tutor is not active")
	// ErrNotCourseOwner indicates a write on a course the tutor does not own.
	ErrNotCourseOwner = errors.New("course belongs to another tutor")
)

// File: handlers/bundle.go
package handlers

// HandlerBundle groups the domain handlers for route registration.
type HandlerBundle struct {
	User     *UserHandler
	Tutor    *TutorHandler
	Course   *CourseHandler
	Payment  *PaymentHandler
	Schedule *ScheduleHandler
}

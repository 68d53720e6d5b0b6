// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tutorhive/handlers"
	"tutorhive/middleware"
)

// RegisterUserRoutes registers student account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register/initiate", hb.User.InitiateRegistrationHandler)
		api.POST("/register/verify", hb.User.VerifyRegistrationOTPHandler)
		api.POST("/register/finalize", hb.User.FinalizeRegistrationHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/me", hb.User.DeleteUserHandler)
		api.POST("/logout", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterTutorRoutes registers tutor endpoints, including the application
// pipeline and the weekly availability editor.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		// Public application pipeline and login.
		api.POST("/apply", hb.Tutor.ApplyHandler)
		api.POST("/apply/verify", hb.Tutor.VerifyApplicationOTPHandler)
		api.POST("/apply/credentials", hb.Tutor.SubmitCredentialsHandler)
		api.POST("/login", hb.Tutor.AuthenticateTutorHandler)

		// Public marketplace views.
		api.GET("/id/:id", hb.Tutor.GetTutorHandler)
		api.GET("/id/:id/courses", hb.Course.ListTutorCoursesHandler)
		api.GET("/id/:id/availability", hb.Schedule.GetTutorAvailabilityHandler)

		// Tutor-only routes.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthTutorMiddleware())
		protected.PUT("/me", hb.Tutor.UpdateTutorHandler)
		protected.DELETE("/me", hb.Tutor.DeleteTutorHandler)

		// Weekly availability editor.
		protected.GET("/availability", hb.Schedule.GetAvailabilityHandler)
		protected.PUT("/availability", hb.Schedule.ReplaceAvailabilityHandler)
		protected.POST("/availability/ranges", hb.Schedule.AddRangeHandler)
		protected.PUT("/availability/ranges", hb.Schedule.EditRangeHandler)
		protected.DELETE("/availability/ranges", hb.Schedule.DeleteRangeHandler)
		protected.POST("/availability/slots/toggle", hb.Schedule.ToggleSlotHandler)
		protected.POST("/availability/days/:day/toggle", hb.Schedule.ToggleDayHandler)

		// Courses offered by the authenticated tutor.
		protected.POST("/courses", hb.Course.CreateCourseHandler)
		protected.PUT("/courses/:id", hb.Course.UpdateCourseHandler)
		protected.DELETE("/courses/:id", hb.Course.DeleteCourseHandler)
	}
}

// RegisterCourseRoutes registers the public catalogue endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.GET("/subjects", hb.Course.ListSubjectsHandler)
		api.GET("/subjects/:id", hb.Course.ListSubjectCoursesHandler)
		api.GET("/id/:id", hb.Course.GetCourseHandler)
	}
}

// RegisterPaymentRoutes registers lesson payment and dispute endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		student := api.Group("")
		student.Use(middleware.JWTAuthUserMiddleware())
		student.POST("", hb.Payment.CreateLessonPaymentHandler)
		student.POST("/id/:id/confirm", hb.Payment.ConfirmLessonPaymentHandler)
		student.GET("", hb.Payment.ListTransactionsHandler)
		student.POST("/disputes", hb.Payment.OpenDisputeHandler)
		student.POST("/disputes/:id/notes", hb.Payment.SubmitDisputeNoteHandler)

		tutorSide := api.Group("/tutor")
		tutorSide.Use(middleware.JWTAuthTutorMiddleware())
		tutorSide.POST("/disputes/:id/notes", hb.Payment.SubmitDisputeNoteHandler)
	}
}

// RegisterAdminRoutes registers review-queue and dispute-resolution endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/tutors", hb.Tutor.ListApplicationsHandler)
		adminGroup.PUT("/tutors/:id/approve", hb.Tutor.ApproveTutorHandler)
		adminGroup.PUT("/tutors/:id/reject", hb.Tutor.RejectTutorHandler)
		adminGroup.POST("/subjects", hb.Course.CreateSubjectHandler)
		adminGroup.PUT("/disputes/:id/resolve", hb.Payment.ResolveDisputeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TutorHive"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

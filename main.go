// File: tutorhive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"tutorhive/config"
	"tutorhive/cron"
	"tutorhive/database"
	availabilityRepo "tutorhive/database/repository/availability"
	courseRepoPkg "tutorhive/database/repository/course"
	paymentRepoPkg "tutorhive/database/repository/payment"
	tutorRepoPkg "tutorhive/database/repository/tutor"
	userRepoPkg "tutorhive/database/repository/user"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/routes"
	"tutorhive/services/course"
	"tutorhive/services/payment"
	"tutorhive/services/schedule"
	"tutorhive/services/tasks"
	"tutorhive/services/tutor"
	"tutorhive/services/user"
	"tutorhive/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	courseRepo := courseRepoPkg.NewMongoCourseRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	tutorService := &tutor.DefaultTutorService{
		Repo: tutorRepo,
	}
	courseService := &course.DefaultCourseService{
		Repo:   courseRepo,
		Tutors: tutorRepo,
	}
	enqueuer := tasks.NewEnqueuer()
	defer enqueuer.Close()
	paymentService := &payment.DefaultPaymentService{
		Repo:     paymentRepo,
		Courses:  courseRepo,
		Enqueuer: enqueuer,
	}
	scheduleService := schedule.NewDefaultScheduleService(availRepo)

	// Background worker for dispute deadlines.
	cron.InitDisputeWorker(paymentService)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		User:     handlers.NewUserHandler(userService),
		Tutor:    handlers.NewTutorHandler(tutorService),
		Course:   handlers.NewCourseHandler(courseService),
		Payment:  handlers.NewPaymentHandler(paymentService),
		Schedule: handlers.NewScheduleHandler(scheduleService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

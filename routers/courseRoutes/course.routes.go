package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "praxis/controllers/course"
	"praxis/middleware"
	validators "praxis/validators/course"
)

// SetupCourseRoutes sets up all patient-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	// Self-enrollment via invite link
	courseGroup := app.Group("/course")
	courseGroup.Post("/join/:token", middleware.JWTMiddleware, validators.InviteToken(), controllers.JoinViaInvite)

	// My enrollments, unlock state and lesson completion
	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/enrollments", validators.List(), controllers.GetMyEnrollments)
	userGroup.Get("/enrollment/:enrollment_id", validators.EnrollmentID(), controllers.GetEnrollmentDetail)
	userGroup.Post("/enrollment/:enrollment_id/lesson/:lesson_id/complete", validators.CompleteLesson(), controllers.CompleteLesson)
}

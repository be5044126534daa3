package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "praxis/controllers/course"
	"praxis/middleware"
	"praxis/models"
	validators "praxis/validators/course"
)

// SetupAdminCourseRoutes sets up all staff course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	staffOnly := middleware.RequireRoles(models.RoleTherapist, models.RoleAdmin)

	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, staffOnly)

	// Course authoring
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.List(), controllers.AdminGetAllCourses)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)

	// Draft lessons: bulk ordered replace
	adminGroup.Put("/:id/lessons", validators.CourseID(), validators.ReplaceLessons(), controllers.AdminReplaceLessons)

	// Lifecycle
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Post("/:id/archive", validators.CourseID(), controllers.AdminArchiveCourse)

	// Invite link
	adminGroup.Post("/:id/invite", validators.CourseID(), controllers.AdminGenerateInvite)
	adminGroup.Delete("/:id/invite", validators.CourseID(), controllers.AdminDisableInvite)
	adminGroup.Post("/:id/invite/email", validators.CourseID(), validators.InviteEmail(), controllers.AdminEmailInvite)

	// Enrollment management
	adminGroup.Post("/:id/enroll", validators.CourseID(), validators.EnrollPatient(), controllers.AdminEnrollPatient)
	adminGroup.Get("/:id/enrollments", validators.CourseID(), validators.List(), controllers.AdminListEnrollments)

	enrollmentGroup := app.Group("/admin/enrollment", middleware.JWTMiddleware, staffOnly)
	enrollmentGroup.Post("/:enrollment_id/cancel", validators.EnrollmentID(), controllers.AdminCancelEnrollment)
}

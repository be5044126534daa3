package exerciseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "praxis/controllers/exercise"
	"praxis/middleware"
	"praxis/models"
	validators "praxis/validators/exercise"
)

// SetupExerciseRoutes sets up the exercise catalog routes
func SetupExerciseRoutes(app *fiber.App) {
	staffOnly := middleware.RequireRoles(models.RoleTherapist, models.RoleAdmin)

	exerciseGroup := app.Group("/admin/exercise", middleware.JWTMiddleware, staffOnly)
	exerciseGroup.Post("/create", validators.CreateExercise(), controllers.AdminCreateExercise)
	exerciseGroup.Get("/list", controllers.GetExercises)
}

package exerciseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"praxis/middleware"
)

func CreateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string         `json:"name"`
			Description   string         `json:"description"`
			MediaURL      string         `json:"media_url"`
			DefaultParams datatypes.JSON `json:"default_params"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExercise", reqData)
		return c.Next()
	}
}

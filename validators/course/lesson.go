package courseValidator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"praxis/middleware"
	courseService "praxis/services/course"
)

var validate = validator.New()

// ReplaceLessons validates the bulk ordered draft replacement body. Order in
// the array is the lesson order; positions are assigned server-side.
func ReplaceLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Lessons []courseService.LessonInput `json:"lessons"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for i, lesson := range reqData.Lessons {
			if err := validate.Struct(lesson); err != nil {
				for _, fieldErr := range err.(validator.ValidationErrors) {
					key := fmt.Sprintf("lessons[%d].%s", i, fieldErr.Field())
					switch fieldErr.Tag() {
					case "required":
						errors[key] = "This field is required!"
					case "min":
						errors[key] = fmt.Sprintf("Must be at least %s characters long!", fieldErr.Param())
					case "url":
						errors[key] = "Must be a valid URL!"
					default:
						errors[key] = "Invalid value!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessons", reqData.Lessons)
		return c.Next()
	}
}

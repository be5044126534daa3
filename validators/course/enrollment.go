package courseValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"praxis/middleware"
)

// EnrollmentID validates the :enrollment_id route param
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("enrollment_id"))
		enrollmentID, err := strconv.Atoi(idStr)
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", uint(enrollmentID))
		return c.Next()
	}
}

// CompleteLesson validates the :enrollment_id and :lesson_id route params
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := strconv.Atoi(strings.TrimSpace(c.Params("enrollment_id")))
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		lessonID, err := strconv.Atoi(strings.TrimSpace(c.Params("lesson_id")))
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("enrollmentID", uint(enrollmentID))
		c.Locals("lessonID", uint(lessonID))
		return c.Next()
	}
}

// EnrollPatient validates the staff enroll body
func EnrollPatient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PatientID uint `json:"patient_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.PatientID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"patient_id": "Patient ID is required!",
			})
		}

		c.Locals("validatedEnrollPatient", reqData)
		return c.Next()
	}
}

// InviteToken validates the :token route param. Tokens are opaque strings of
// at least 10 characters; anything shorter is malformed, not merely unknown.
func InviteToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Params("token"))
		if len(token) < 10 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid invite token!", nil)
		}

		c.Locals("inviteToken", token)
		return c.Next()
	}
}

// InviteEmail validates the invite email body
func InviteEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email" validate:"required,email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				if fieldErr.Tag() == "required" {
					errors["email"] = "Email is required!"
				} else {
					errors["email"] = "Email is invalid!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInviteEmail", reqData)
		return c.Next()
	}
}

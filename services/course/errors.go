package course

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error is a business-rule failure with the HTTP status the boundary should
// respond with. Controllers pass Status and Message straight through to
// middleware.JsonResponse.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var errInternal = &Error{Status: fiber.StatusInternalServerError, Message: "Something went wrong!"}

// asServiceError unwraps a transaction error back into a business Error, or
// logs and degrades to a generic internal error so partial failures never
// leak store details to callers.
func asServiceError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	log.Printf("[COURSE-SERVICE] transaction failed: %v", err)
	return errInternal
}

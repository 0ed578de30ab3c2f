package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
)

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict, apperr.KindCapacity:
		return fiber.StatusBadRequest
	case apperr.KindAuthentication, apperr.KindAuthorization:
		return fiber.StatusUnauthorized
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// fail maps a domain error to its response. Unexpected errors become a
// generic 500 so internals never leak.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(models.ErrorResponse("Internal server error"))
	}
	return c.Status(status).JSON(models.ErrorResponse(err.Error()))
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}

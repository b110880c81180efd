package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything
// unclassified is treated as an internal failure.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	if kind, ok := apperrors.KindOf(err); ok {
		switch kind {
		case apperrors.KindValidation:
			status = fiber.StatusBadRequest
		case apperrors.KindUpstream, apperrors.KindPublish:
			status = fiber.StatusBadGateway
		case apperrors.KindStore:
			status = fiber.StatusInternalServerError
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tone-converter-service/internal/models"
)

const unexpectedErrorMessage = "An unexpected error occurred."

func writeError(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(models.ErrorResponse{Error: msg})
}

// ErrorHandler renders every error that reaches fiber in the JSON error envelope.
// Only *fiber.Error messages are shown to the client.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, fe.Message)
		}

		log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
		return writeError(c, fiber.StatusInternalServerError, unexpectedErrorMessage)
	}
}

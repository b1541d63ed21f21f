package middleware

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"tone-converter-service/internal/models"
)

// ConvertInputKey is the fiber.Ctx locals key holding the validated models.ConvertInput.
const ConvertInputKey = "convertInput"

// ConvertMiddleware parses and validates a conversion request body.
// maxTextLength counts runes; zero disables the limit.
func ConvertMiddleware(maxTextLength int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ConvertRequest

		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if strings.TrimSpace(req.Text) == "" || req.Target == "" {
			return badRequest(c, "Invalid request. 'text' and 'target' are required.")
		}

		target, err := models.ParseTarget(req.Target)
		if err != nil {
			return badRequest(c, fmt.Sprintf("Invalid target: '%s'. Must be one of: %s", req.Target, targetList()))
		}

		if n := utf8.RuneCountInString(req.Text); maxTextLength > 0 && n > maxTextLength {
			return badRequest(c, fmt.Sprintf("Text too long: %d characters (max %d)", n, maxTextLength))
		}

		c.Locals(ConvertInputKey, models.ConvertInput{Text: req.Text, Target: target})

		return c.Next()
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: msg})
}

func targetList() string {
	names := make([]string, len(models.Targets))
	for i, t := range models.Targets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

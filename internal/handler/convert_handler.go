package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tone-converter-service/internal/middleware"
	"tone-converter-service/internal/models"
	"tone-converter-service/internal/services"
)

// Converter is the part of services.ConvertService the handlers need.
type Converter interface {
	Convert(ctx context.Context, in models.ConvertInput) (*models.ConvertResponse, error)
	Status() models.ProviderStatus
}

type ConvertHandler struct {
	Service Converter
	Log     logrus.FieldLogger
}

type ConvertHandlerInterface interface {
	ConvertHandler(c *fiber.Ctx) error
	HealthHandler(c *fiber.Ctx) error
	TargetsHandler(c *fiber.Ctx) error
}

func NewConvertHandler(service Converter, log logrus.FieldLogger) *ConvertHandler {
	return &ConvertHandler{
		Service: service,
		Log:     log,
	}
}

func (h *ConvertHandler) ConvertHandler(c *fiber.Ctx) error {
	in, ok := c.Locals(middleware.ConvertInputKey).(models.ConvertInput)
	if !ok {
		return errors.New("convert handler: missing validated input")
	}

	log := h.Log.WithFields(logrus.Fields{
		"request_id": c.Locals("requestid"),
		"target":     in.Target,
	})

	resp, err := h.Service.Convert(c.UserContext(), in)
	if err != nil {
		var providerErr *services.ProviderError
		switch {
		case errors.Is(err, services.ErrClientUnavailable):
			log.Warn("conversion requested but provider is not configured")
			return writeError(c, fiber.StatusServiceUnavailable, "Conversion service is not configured.")
		case errors.As(err, &providerErr):
			log.WithError(err).Warn("provider error")
			return writeError(c, fiber.StatusBadGateway, "AI provider error: "+providerErr.Message)
		default:
			log.WithError(err).Error("conversion failed")
			return writeError(c, fiber.StatusInternalServerError, unexpectedErrorMessage)
		}
	}

	return c.JSON(resp)
}

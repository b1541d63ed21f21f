package handler

import (
	"github.com/gofiber/fiber/v2"

	"tone-converter-service/internal/models"
)

// HealthHandler always answers 200; provider availability is reported in the body.
func (h *ConvertHandler) HealthHandler(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:   "ok",
		Provider: h.Service.Status(),
	})
}

func (h *ConvertHandler) TargetsHandler(c *fiber.Ctx) error {
	targets := make([]models.TargetInfo, len(models.Targets))
	for i, t := range models.Targets {
		targets[i] = models.TargetInfo{ID: t, Description: t.Description()}
	}
	return c.JSON(targets)
}

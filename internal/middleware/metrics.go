package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tone-converter-service/internal/metrics"
)

// Metrics counts requests by method, matched route, and status code.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		path := c.Route().Path
		if status == fiber.StatusNotFound {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		return err
	}
}

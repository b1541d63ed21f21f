package routes

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"tone-converter-service/internal/handler"
	"tone-converter-service/internal/middleware"
	"tone-converter-service/internal/models"
)

type Options struct {
	MaxTextLength int
	// RateLimit is the number of conversions allowed per client IP per minute; zero disables it.
	RateLimit int
	Static    http.FileSystem
	Log       logrus.FieldLogger
}

func NewApp(log logrus.FieldLogger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "tone-converter-service",
		ErrorHandler:          handler.ErrorHandler(log),
		DisableStartupMessage: true,
	})
}

// Setup registers middleware, API routes and the static frontend.
// The frontend is mounted last so API routes take precedence.
func Setup(app *fiber.App, h handler.ConvertHandlerInterface, opts Options) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Logging(opts.Log))
	app.Use(middleware.Metrics())
	app.Use(recover.New())
	app.Use(cors.New())

	ConvertRoute(app, h, opts)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if opts.Static != nil {
		app.Use("/", filesystem.New(filesystem.Config{
			Root:  opts.Static,
			Index: "index.html",
		}))
	}
}

func ConvertRoute(router fiber.Router, h handler.ConvertHandlerInterface, opts Options) {
	api := router.Group("/api")

	convert := []fiber.Handler{}
	if opts.RateLimit > 0 {
		convert = append(convert, limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{Error: "Too many requests"})
			},
		}))
	}
	convert = append(convert, middleware.ConvertMiddleware(opts.MaxTextLength), h.ConvertHandler)

	api.Post("/convert", convert...)
	api.Get("/health", h.HealthHandler)
	api.Get("/targets", h.TargetsHandler)
}

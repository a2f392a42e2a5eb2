// Package server assembles the fiber application: middleware chain, routes and error handling.
package server

import (
	"runtime/debug"

	"staff-api/config"
	"staff-api/internal/transport/http/middleware"
	"staff-api/internal/transport/http/server/handlers-fiber"
	"staff-api/internal/transport/http/validation"
	"staff-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds the application. counter may be nil to keep rate-limit windows
// in process memory.
func New(log *zap.SugaredLogger, cfg *config.Config, uc usecase.InterfaceUsecase, counter middleware.Counter) *fiber.App {
	if counter == nil {
		counter = middleware.NewMemoryCounter()
	}

	serv := fiber.New(fiber.Config{
		AppName:      "staff-api",
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(log),
	})

	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))
	serv.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Errorw("panic recovered", "panic", e, "path", c.Path(), "stack", string(debug.Stack()))
		},
	}))
	serv.Use(middleware.CORS(cfg.CORS.Origins()))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	rl := cfg.RateLimit
	h := handlers_fiber.NewHandler(log, uc, validation.New())
	h.Register(serv,
		middleware.RateLimit("short", rl.ShortMax, rl.ShortWindow, counter),
		middleware.RateLimit("long", rl.LongMax, rl.LongWindow, counter),
	)

	return serv
}

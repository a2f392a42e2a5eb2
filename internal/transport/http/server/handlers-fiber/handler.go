// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"staff-api/internal/transport/http/validation"
	"staff-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the users and employees resources using the usecase layer.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	validate *validation.Validator
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, validate *validation.Validator) *Handler {
	return &Handler{
		log:      log.Named("handlers"),
		uc:       usecase,
		validate: validate,
	}
}

// Register mounts routes on r. employeeMiddleware runs before every /employees route.
func (h *Handler) Register(r fiber.Router, employeeMiddleware ...fiber.Handler) {
	users := r.Group("/users")
	users.Get("/", h.GetUsers)
	users.Get("/:id", h.GetUser)
	users.Post("/", h.PostUser)
	users.Patch("/:id", h.PatchUser)
	users.Delete("/:id", h.DeleteUser)

	employees := r.Group("/employees", employeeMiddleware...)
	employees.Get("/", h.GetEmployees)
	employees.Get("/:id", h.GetEmployee)
	employees.Post("/", h.PostEmployee)
	employees.Patch("/:id", h.PatchEmployee)
	employees.Delete("/:id", h.DeleteEmployee)
}

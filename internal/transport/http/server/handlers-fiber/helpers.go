package handlers_fiber

import (
	"fmt"
	"strconv"

	"staff-api/internal/entities"
	"staff-api/internal/transport/http/validation"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path parameter as a decimal integer.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, validation.NewError("id must be a numeric string")
	}
	return id, nil
}

// parseRole reads the optional ?role= filter.
func parseRole(c *fiber.Ctx) (*entities.Role, error) {
	raw := c.Query("role")
	if raw == "" {
		return nil, nil
	}
	role, ok := entities.ParseRole(raw)
	if !ok {
		return nil, validation.NewError(fmt.Sprintf("role must be one of the following values: %s", validation.RoleValues()))
	}
	return &role, nil
}

// bind decodes a JSON body into out and validates it. An empty body decodes
// as an empty object so that PATCH without fields is accepted.
func (h *Handler) bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			h.log.Debugw("failed to parse body", "error", err.Error())
			return validation.NewError("request body must be a valid JSON object")
		}
	}
	return h.validate.Struct(out)
}

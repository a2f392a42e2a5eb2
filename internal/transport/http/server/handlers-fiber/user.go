package handlers_fiber

import (
	"net/http"

	"staff-api/internal/mapper"
	"staff-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists users, optionally filtered by ?role=.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	role, err := parseRole(c)
	if err != nil {
		return err
	}

	users, err := h.uc.Users(c.UserContext(), role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUserList(users))
}

// GetUser returns one user.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.User(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUser(*user))
}

// PostUser creates a user.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := h.bind(c, &body); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.UserContext(), mapper.FromCreateUser(body))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToUser(*user))
}

// PatchUser merges supplied fields into a user.
func (h *Handler) PatchUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateUserRequest
	if err := h.bind(c, &body); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.UserContext(), id, mapper.FromUpdateUser(body))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUser(*user))
}

// DeleteUser removes a user and reports its id.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.DeleteUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.DeleteResponse{ID: user.ID})
}

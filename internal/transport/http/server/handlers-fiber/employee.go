package handlers_fiber

import (
	"net/http"

	"staff-api/internal/mapper"
	"staff-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetEmployees lists employees, optionally filtered by ?role=.
func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	role, err := parseRole(c)
	if err != nil {
		return err
	}

	employees, err := h.uc.Employees(c.UserContext(), role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToEmployeeList(employees))
}

// GetEmployee returns one employee.
func (h *Handler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	employee, err := h.uc.Employee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToEmployee(*employee))
}

// PostEmployee creates an employee.
func (h *Handler) PostEmployee(c *fiber.Ctx) error {
	var body dto.CreateEmployeeRequest
	if err := h.bind(c, &body); err != nil {
		return err
	}

	employee, err := h.uc.CreateEmployee(c.UserContext(), mapper.FromCreateEmployee(body))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToEmployee(*employee))
}

// PatchEmployee merges supplied fields into an employee.
func (h *Handler) PatchEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateEmployeeRequest
	if err := h.bind(c, &body); err != nil {
		return err
	}

	employee, err := h.uc.UpdateEmployee(c.UserContext(), id, mapper.FromUpdateEmployee(body))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(mapper.ToEmployee(*employee))
}

// DeleteEmployee removes an employee and reports its id.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	employee, err := h.uc.DeleteEmployee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.DeleteResponse{ID: employee.ID})
}

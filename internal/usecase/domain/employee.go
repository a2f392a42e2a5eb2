// Package domain contains application Usecases orchestrating domain logic by employee.
package domain

import (
	"context"

	"staff-api/internal/entities"
)

// Employees lists persisted employees, optionally filtered by role.
func (u *Usecase) Employees(ctx context.Context, role *entities.Role) ([]entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkRole(role); err != nil {
		return nil, err
	}
	return u.repo.ListEmployees(ctx, role)
}

// Employee returns employee by id.
func (u *Usecase) Employee(ctx context.Context, id int64) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	return u.repo.GetEmployee(ctx, id)
}

// CreateEmployee persists a new employee.
func (u *Usecase) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkPerson(employee.Name, employee.Email, employee.Role); err != nil {
		u.log.Errorw("failed to create employee", "error", err)
		return nil, err
	}
	employee.ID = 0
	return u.repo.CreateEmployee(ctx, employee)
}

// UpdateEmployee merges supplied fields into an existing employee.
func (u *Usecase) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkPatch(patch.Name, patch.Email, patch.Role); err != nil {
		u.log.Errorw("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}
	return u.repo.UpdateEmployee(ctx, id, patch)
}

// DeleteEmployee removes employee by id.
func (u *Usecase) DeleteEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	return u.repo.DeleteEmployee(ctx, id)
}

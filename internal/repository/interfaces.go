// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"staff-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context, role *entities.Role) ([]entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) (*entities.User, error)
}

// EmployeeInterface exposes employee-related operations.
type EmployeeInterface interface {
	ListEmployees(ctx context.Context, role *entities.Role) ([]entities.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (*entities.Employee, error)
}

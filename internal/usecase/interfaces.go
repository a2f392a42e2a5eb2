package usecase

import (
	"context"

	"staff-api/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context, role *entities.Role) ([]entities.User, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) (*entities.User, error)
}

// EmployeeUsecaseInterface abstracts employee-related operations.
type EmployeeUsecaseInterface interface {
	Employees(ctx context.Context, role *entities.Role) ([]entities.Employee, error)
	Employee(ctx context.Context, id int64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (*entities.Employee, error)
}

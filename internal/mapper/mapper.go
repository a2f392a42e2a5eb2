// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"staff-api/internal/entities"
	"staff-api/internal/transport/http/dto"
)

// FromCreateUser builds an entities.User from a validated request.
func FromCreateUser(src dto.CreateUserRequest) entities.User {
	return entities.User{
		Name:  src.Name,
		Email: src.Email,
		Role:  entities.Role(src.Role),
	}
}

// FromUpdateUser builds a patch carrying only supplied fields.
func FromUpdateUser(src dto.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{
		Name:  src.Name,
		Email: src.Email,
		Role:  rolePtr(src.Role),
	}
}

// ToUser maps entities.User to transport model.
func ToUser(u entities.User) dto.User {
	return dto.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// ToUserList maps a slice of users to transport slice.
func ToUserList(list []entities.User) []dto.User {
	res := make([]dto.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToUser(u))
	}
	return res
}

// FromCreateEmployee builds an entities.Employee from a validated request.
func FromCreateEmployee(src dto.CreateEmployeeRequest) entities.Employee {
	return entities.Employee{
		Name:  src.Name,
		Email: src.Email,
		Role:  entities.Role(src.Role),
	}
}

// FromUpdateEmployee builds a patch carrying only supplied fields.
func FromUpdateEmployee(src dto.UpdateEmployeeRequest) entities.EmployeePatch {
	return entities.EmployeePatch{
		Name:  src.Name,
		Email: src.Email,
		Role:  rolePtr(src.Role),
	}
}

// ToEmployee maps entities.Employee to transport model.
func ToEmployee(e entities.Employee) dto.Employee {
	return dto.Employee{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToEmployeeList maps a slice of employees to transport slice.
func ToEmployeeList(list []entities.Employee) []dto.Employee {
	res := make([]dto.Employee, 0, len(list))
	for _, e := range list {
		res = append(res, ToEmployee(e))
	}
	return res
}

func rolePtr(s *string) *entities.Role {
	if s == nil {
		return nil
	}
	r := entities.Role(*s)
	return &r
}

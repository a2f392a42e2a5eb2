// Package dto holds the JSON shapes of the HTTP API.
package dto

import "time"

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=INTERN ENGINEER ADMIN"`
}

// UpdateUserRequest is the body of PATCH /users/:id. Absent fields stay unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=INTERN ENGINEER ADMIN"`
}

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=INTERN ENGINEER ADMIN"`
}

// UpdateEmployeeRequest is the body of PATCH /employees/:id.
type UpdateEmployeeRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=INTERN ENGINEER ADMIN"`
}

// User is the wire form of a user.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Employee is the wire form of an employee.
type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteResponse reports the id of a removed record.
type DeleteResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Timestamp  string   `json:"timestamp"`
	Path       string   `json:"path"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmployeeNotFound is returned when an employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmployeeExists signals a uniqueness conflict in employee storage.
	ErrEmployeeExists = errors.New("employee exists")
	// ErrStorageValidation signals a value rejected by storage constraints.
	ErrStorageValidation = errors.New("storage validation failed")
)

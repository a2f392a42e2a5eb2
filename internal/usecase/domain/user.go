// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"

	"staff-api/internal/entities"
)

// Users lists in-memory users, optionally filtered by role.
func (u *Usecase) Users(ctx context.Context, role *entities.Role) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkRole(role); err != nil {
		return nil, err
	}
	return u.users.ListUsers(ctx, role)
}

// User returns user by id.
func (u *Usecase) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	return u.users.GetUser(ctx, id)
}

// CreateUser stores a new user and returns it with its assigned id.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkPerson(user.Name, user.Email, user.Role); err != nil {
		u.log.Errorw("failed to create user", "error", err)
		return nil, err
	}
	user.ID = 0
	return u.users.CreateUser(ctx, user)
}

// UpdateUser merges supplied fields into an existing user.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkPatch(patch.Name, patch.Email, patch.Role); err != nil {
		u.log.Errorw("failed to update user", "error", err, "user_id", id)
		return nil, err
	}
	return u.users.UpdateUser(ctx, id, patch)
}

// DeleteUser removes user by id.
func (u *Usecase) DeleteUser(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkID(id); err != nil {
		return nil, err
	}
	return u.users.DeleteUser(ctx, id)
}

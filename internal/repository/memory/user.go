package memory

import (
	"context"
	"errors"
	"fmt"

	"staff-api/internal/entities"

	"go.uber.org/zap"
)

// Users keeps user records for the lifetime of the process.
type Users struct {
	log  *zap.SugaredLogger
	rows *table[entities.User]
}

// NewUsers creates an empty user store.
func NewUsers(log *zap.SugaredLogger) *Users {
	return &Users{
		log:  log.Named("repo.memory.users"),
		rows: newTable(func(u *entities.User) *int64 { return &u.ID }, nil),
	}
}

// ListUsers returns all users, optionally only those with the given role.
func (s *Users) ListUsers(_ context.Context, role *entities.Role) ([]entities.User, error) {
	var keep func(entities.User) bool
	if role != nil {
		keep = func(u entities.User) bool { return u.Role == *role }
	}
	return s.rows.list(keep), nil
}

// GetUser returns user by id.
func (s *Users) GetUser(_ context.Context, id int64) (*entities.User, error) {
	u, err := s.rows.get(id)
	if err != nil {
		return nil, userError(err)
	}
	return &u, nil
}

// CreateUser appends a user under the next id.
func (s *Users) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	u, err := s.rows.insert(user, nil)
	if err != nil {
		return nil, userError(err)
	}
	s.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// UpdateUser merges supplied fields into an existing user.
func (s *Users) UpdateUser(_ context.Context, id int64, patch entities.UserPatch) (*entities.User, error) {
	u, err := s.rows.update(id, patch.Apply)
	if err != nil {
		return nil, userError(err)
	}
	s.log.Infow("user updated", "user_id", id)
	return &u, nil
}

// DeleteUser removes a user and returns the removed record.
func (s *Users) DeleteUser(_ context.Context, id int64) (*entities.User, error) {
	u, err := s.rows.remove(id)
	if err != nil {
		return nil, userError(err)
	}
	s.log.Infow("user deleted", "user_id", id)
	return &u, nil
}

func userError(err error) error {
	if errors.Is(err, errNotFound) {
		return entities.ErrUserNotFound
	}
	return fmt.Errorf("user store: %w", err)
}

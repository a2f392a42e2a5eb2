package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"staff-api/internal/entities"
	"staff-api/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	users   repository.UserInterface
	repo    repository.Repository
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	users repository.UserInterface,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log.Named("usecase"),
		users:   users,
		repo:    repo,
		timeout: timeout,
	}
}

// withTimeout bounds a call by the request timeout; a non-positive timeout leaves ctx as is.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", entities.ErrInvalidArgument)
	}
	return nil
}

func checkRole(role *entities.Role) error {
	if role != nil && !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, *role)
	}
	return nil
}

// checkPerson validates fields required on creation of both users and employees.
func checkPerson(name, email string, role entities.Role) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	case strings.TrimSpace(email) == "":
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return checkRole(&role)
}

func checkPatch(name, email *string, role *entities.Role) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: name must not be empty", entities.ErrInvalidArgument)
	}
	if email != nil && strings.TrimSpace(*email) == "" {
		return fmt.Errorf("%w: email must not be empty", entities.ErrInvalidArgument)
	}
	return checkRole(role)
}

// Package usecase exposes application operations to the delivery layer.
package usecase

import (
	"time"

	"staff-api/internal/repository"
	"staff-api/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	EmployeeUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	users repository.UserInterface,
	repo repository.Repository,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, users, repo, timeout)
}

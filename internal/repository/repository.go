// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"staff-api/config"
	"staff-api/internal/repository/memory"
	"staff-api/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates the durable persistence interfaces.
type Repository interface {
	LifecycleInterface
	EmployeeInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendMemory:
		return memory.NewEmployees(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

// NewUsers constructs the process-lifetime user store.
func NewUsers(log *zap.SugaredLogger) UserInterface {
	return memory.NewUsers(log)
}

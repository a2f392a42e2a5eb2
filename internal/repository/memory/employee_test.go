package memory

import (
	"context"
	"testing"
	"time"

	"staff-api/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmployeesLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewEmployees(zap.NewNop().Sugar())
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	created, err := s.CreateEmployee(ctx, entities.Employee{Name: "Ada", Email: "ada@example.com", Role: entities.RoleEngineer})
	require.NoError(t, err)
	require.Equal(t, clock, created.CreatedAt)
	require.Equal(t, clock, created.UpdatedAt)

	_, err = s.CreateEmployee(ctx, entities.Employee{Name: "Other", Email: "ada@example.com", Role: entities.RoleIntern})
	require.ErrorIs(t, err, entities.ErrEmployeeExists)

	clock = clock.Add(time.Hour)
	name := "Ada L."
	updated, err := s.UpdateEmployee(ctx, created.ID, entities.EmployeePatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Ada L.", updated.Name)
	require.Equal(t, "ada@example.com", updated.Email)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, clock, updated.UpdatedAt)

	_, err = s.DeleteEmployee(ctx, created.ID)
	require.NoError(t, err)
	_, err = s.DeleteEmployee(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}

func TestEmployeesUpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	s := NewEmployees(zap.NewNop().Sugar())

	a, err := s.CreateEmployee(ctx, entities.Employee{Name: "A", Email: "a@example.com", Role: entities.RoleIntern})
	require.NoError(t, err)
	_, err = s.CreateEmployee(ctx, entities.Employee{Name: "B", Email: "b@example.com", Role: entities.RoleIntern})
	require.NoError(t, err)

	taken := "b@example.com"
	_, err = s.UpdateEmployee(ctx, a.ID, entities.EmployeePatch{Email: &taken})
	require.ErrorIs(t, err, entities.ErrEmployeeExists)

	same := "a@example.com"
	_, err = s.UpdateEmployee(ctx, a.ID, entities.EmployeePatch{Email: &same})
	require.NoError(t, err)

	got, err := s.GetEmployee(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", got.Email)

	_, err = s.UpdateEmployee(ctx, 99, entities.EmployeePatch{Email: &same})
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staff-api/internal/entities"

	"go.uber.org/zap"
)

// Employees is a non-durable employee backend with the same contract as postgres,
// including email uniqueness.
type Employees struct {
	log  *zap.SugaredLogger
	rows *table[entities.Employee]
	now  func() time.Time
}

// NewEmployees creates an empty employee store.
func NewEmployees(log *zap.SugaredLogger) *Employees {
	return &Employees{
		log: log.Named("repo.memory.employees"),
		rows: newTable(
			func(e *entities.Employee) *int64 { return &e.ID },
			func(a, b *entities.Employee) bool { return a.Email == b.Email },
		),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// OnStart is a no-op.
func (s *Employees) OnStart(_ context.Context) error {
	s.log.Warnw("employees are kept in memory and will not survive a restart")
	return nil
}

// OnStop is a no-op.
func (s *Employees) OnStop(_ context.Context) error { return nil }

// ListEmployees returns all employees, optionally only those with the given role.
func (s *Employees) ListEmployees(_ context.Context, role *entities.Role) ([]entities.Employee, error) {
	var keep func(entities.Employee) bool
	if role != nil {
		keep = func(e entities.Employee) bool { return e.Role == *role }
	}
	return s.rows.list(keep), nil
}

// GetEmployee returns employee by id.
func (s *Employees) GetEmployee(_ context.Context, id int64) (*entities.Employee, error) {
	e, err := s.rows.get(id)
	if err != nil {
		return nil, employeeError(err)
	}
	return &e, nil
}

// CreateEmployee appends an employee under the next id.
func (s *Employees) CreateEmployee(_ context.Context, employee entities.Employee) (*entities.Employee, error) {
	e, err := s.rows.insert(employee, func(e *entities.Employee) {
		e.CreatedAt = s.now()
		e.UpdatedAt = e.CreatedAt
	})
	if err != nil {
		return nil, employeeError(err)
	}
	s.log.Infow("employee created", "employee_id", e.ID)
	return &e, nil
}

// UpdateEmployee merges supplied fields into an existing employee.
func (s *Employees) UpdateEmployee(_ context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error) {
	e, err := s.rows.update(id, func(e *entities.Employee) {
		patch.Apply(e)
		if !patch.Empty() {
			e.UpdatedAt = s.now()
		}
	})
	if err != nil {
		return nil, employeeError(err)
	}
	s.log.Infow("employee updated", "employee_id", id)
	return &e, nil
}

// DeleteEmployee removes an employee and returns the removed record.
func (s *Employees) DeleteEmployee(_ context.Context, id int64) (*entities.Employee, error) {
	e, err := s.rows.remove(id)
	if err != nil {
		return nil, employeeError(err)
	}
	s.log.Infow("employee deleted", "employee_id", id)
	return &e, nil
}

func employeeError(err error) error {
	switch {
	case errors.Is(err, errNotFound):
		return entities.ErrEmployeeNotFound
	case errors.Is(err, errConflict):
		return fmt.Errorf("%w: email already registered", entities.ErrEmployeeExists)
	default:
		return fmt.Errorf("employee store: %w", err)
	}
}

package postgres

import (
	"context"
	"time"

	"staff-api/internal/entities"

	"gorm.io/gorm/clause"
)

type employeeRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex:employees_email_key"`
	Role      string `gorm:"not null;index:employees_role_idx"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (employeeRow) TableName() string { return "employees" }

func (r employeeRow) toEntity() entities.Employee {
	return entities.Employee{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      entities.Role(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ListEmployees returns employees ordered by id, optionally filtered by role.
func (p *Postgres) ListEmployees(ctx context.Context, role *entities.Role) ([]entities.Employee, error) {
	q := p.db.WithContext(ctx).Order("id")
	if role != nil {
		q = q.Where("role = ?", string(*role))
	}

	var rows []employeeRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError("list employees", err)
	}

	res := make([]entities.Employee, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.toEntity())
	}
	return res, nil
}

// GetEmployee returns employee by id.
func (p *Postgres) GetEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	var row employeeRow
	if err := p.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translateError("get employee", err)
	}
	e := row.toEntity()
	return &e, nil
}

// CreateEmployee inserts a row and returns it with generated id and timestamps.
func (p *Postgres) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	row := employeeRow{
		Name:  employee.Name,
		Email: employee.Email,
		Role:  string(employee.Role),
	}
	if err := p.db.WithContext(ctx).Create(&row).Error; err != nil {
		p.log.Errorw("failed to create employee", "error", err)
		return nil, translateError("create employee", err)
	}

	p.log.Infow("employee created", "employee_id", row.ID)
	e := row.toEntity()
	return &e, nil
}

// UpdateEmployee writes supplied columns and returns the updated row.
func (p *Postgres) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error) {
	if patch.Empty() {
		return p.GetEmployee(ctx, id)
	}

	var row employeeRow
	res := p.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(patch.Columns())
	if res.Error != nil {
		p.log.Errorw("failed to update employee", "error", res.Error, "employee_id", id)
		return nil, translateError("update employee", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, entities.ErrEmployeeNotFound
	}

	p.log.Infow("employee updated", "employee_id", id)
	e := row.toEntity()
	return &e, nil
}

// DeleteEmployee removes a row and returns what was deleted.
func (p *Postgres) DeleteEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	var row employeeRow
	res := p.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&row)
	if res.Error != nil {
		p.log.Errorw("failed to delete employee", "error", res.Error, "employee_id", id)
		return nil, translateError("delete employee", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, entities.ErrEmployeeNotFound
	}

	p.log.Infow("employee deleted", "employee_id", id)
	e := row.toEntity()
	return &e, nil
}

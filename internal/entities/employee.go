// Package entities contains core business entities.
package entities

import "time"

// Employee is a persisted staff record. Timestamps are owned by storage.
type Employee struct {
	ID        int64
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeePatch carries the fields supplied to a partial update. Nil means unchanged.
type EmployeePatch struct {
	Name  *string
	Email *string
	Role  *Role
}

// Empty reports whether the patch changes nothing.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil
}

// Apply merges supplied fields into e.
func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
}

// Columns returns the supplied fields keyed by column name.
func (p EmployeePatch) Columns() map[string]any {
	cols := make(map[string]any, 3)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Role != nil {
		cols["role"] = string(*p.Role)
	}
	return cols
}

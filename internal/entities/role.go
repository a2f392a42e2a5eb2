// Package entities contains core business entities.
package entities

// Role is the job role shared by users and employees.
type Role string

const (
	// RoleIntern marks an intern.
	RoleIntern Role = "INTERN"
	// RoleEngineer marks an engineer.
	RoleEngineer Role = "ENGINEER"
	// RoleAdmin marks an administrator.
	RoleAdmin Role = "ADMIN"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleIntern, RoleEngineer, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleIntern, RoleEngineer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

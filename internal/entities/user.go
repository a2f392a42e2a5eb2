// Package entities contains core business entities.
package entities

// User is a process-lifetime record kept by the in-memory store.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// UserPatch carries the fields supplied to a partial update. Nil means unchanged.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *Role
}

// Apply merges supplied fields into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

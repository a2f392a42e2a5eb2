package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, ok := ParseRole(string(r))
		require.True(t, ok)
		require.Equal(t, r, got)
	}

	_, ok := ParseRole("intern")
	require.False(t, ok)
	_, ok = ParseRole("")
	require.False(t, ok)
}

func TestEmployeePatchColumns(t *testing.T) {
	name := "Ada"
	role := RoleAdmin
	p := EmployeePatch{Name: &name, Role: &role}

	require.False(t, p.Empty())
	require.Equal(t, map[string]any{"name": "Ada", "role": "ADMIN"}, p.Columns())
	require.True(t, EmployeePatch{}.Empty())
}

func TestUserPatchApplyKeepsUnsupplied(t *testing.T) {
	u := User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: RoleIntern}
	email := "ada@lovelace.dev"
	UserPatch{Email: &email}.Apply(&u)

	require.Equal(t, User{ID: 1, Name: "Ada", Email: "ada@lovelace.dev", Role: RoleIntern}, u)
}

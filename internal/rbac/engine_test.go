package rbac_test

import (
	"testing"

	"github.com/serroba/cde-access/internal/rbac"
	"github.com/stretchr/testify/require"
)

func TestEngine_CanMatchesPermissions(t *testing.T) {
	t.Parallel()

	engine := rbac.NewEngine(rbac.Default())

	for _, role := range rbac.Roles() {
		granted := make(map[rbac.Permission]struct{})

		for _, perm := range engine.Permissions(role) {
			granted[perm] = struct{}{}
		}

		for _, perm := range rbac.Permissions() {
			_, expected := granted[perm]

			if engine.Can(role, perm) != expected {
				t.Errorf("role %s permission %s: Can disagrees with Permissions", role, perm)
			}
		}
	}
}

func TestEngine_CanUnknownRole(t *testing.T) {
	t.Parallel()

	engine := rbac.NewEngine(rbac.Default())

	if engine.Can(rbac.Role(99), rbac.PermissionView) {
		t.Error("unknown role must not be granted anything")
	}
}

func TestEngine_PermissionsStableOrder(t *testing.T) {
	t.Parallel()

	engine := rbac.NewEngine(rbac.Default())

	first := engine.Permissions(rbac.RoleProjectManager)

	for range 10 {
		require.Equal(t, first, engine.Permissions(rbac.RoleProjectManager))
	}
}

func TestEngine_HasRole(t *testing.T) {
	t.Parallel()

	engine := rbac.NewEngine(rbac.Default())

	staff := []rbac.Role{rbac.RoleAdmin, rbac.RoleProjectManager}

	tests := []struct {
		role     rbac.Role
		expected bool
	}{
		{rbac.RoleAdmin, true},
		{rbac.RoleProjectManager, true},
		{rbac.RoleViewer, false},
	}

	for _, tt := range tests {
		if engine.HasRole(tt.role, staff) != tt.expected {
			t.Errorf("role %s: expected HasRole %v", tt.role, tt.expected)
		}
	}

	if engine.HasRole(rbac.RoleAdmin, nil) {
		t.Error("expected false for empty candidate set")
	}
}

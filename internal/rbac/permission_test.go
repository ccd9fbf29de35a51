package rbac_test

import (
	"testing"

	"github.com/serroba/cde-access/internal/rbac"
	"github.com/stretchr/testify/require"
)

func TestPermission_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		perm     rbac.Permission
		expected string
	}{
		{rbac.PermissionView, "view"},
		{rbac.PermissionDownload, "download"},
		{rbac.PermissionUpload, "upload"},
		{rbac.PermissionUpdate, "update"},
		{rbac.PermissionDelete, "delete"},
		{rbac.PermissionPromote, "promote"},
		{rbac.Permission(99), "unknown"},
	}

	for _, tt := range tests {
		if tt.perm.String() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, tt.perm.String())
		}
	}
}

func TestPermission_IsValid(t *testing.T) {
	t.Parallel()

	for _, perm := range rbac.Permissions() {
		if !perm.IsValid() {
			t.Errorf("permission %s: expected valid", perm)
		}
	}

	if rbac.Permission(99).IsValid() {
		t.Error("expected Permission(99) to be invalid")
	}

	if rbac.Permission(-1).IsValid() {
		t.Error("expected Permission(-1) to be invalid")
	}
}

func TestPermission_IsVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		perm     rbac.Permission
		expected bool
	}{
		{rbac.PermissionView, true},
		{rbac.PermissionDownload, true},
		{rbac.PermissionUpload, false},
		{rbac.PermissionUpdate, false},
		{rbac.PermissionDelete, false},
		{rbac.PermissionPromote, false},
	}

	for _, tt := range tests {
		if tt.perm.IsVisibility() != tt.expected {
			t.Errorf("permission %s: expected IsVisibility %v", tt.perm, tt.expected)
		}
	}
}

func TestPermissions_Order(t *testing.T) {
	t.Parallel()

	expected := []rbac.Permission{
		rbac.PermissionView,
		rbac.PermissionDownload,
		rbac.PermissionUpload,
		rbac.PermissionUpdate,
		rbac.PermissionDelete,
		rbac.PermissionPromote,
	}
	require.Equal(t, expected, rbac.Permissions())
}

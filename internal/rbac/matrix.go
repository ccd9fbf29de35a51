package rbac

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownPermission = errors.New("unknown permission")
	ErrMissingRole       = errors.New("matrix missing entry for role")
	ErrEmptyGrant        = errors.New("matrix grants no permissions to role")
	ErrViewRequired      = errors.New("matrix must grant view to every role")
)

// Matrix is the immutable role to permission-set mapping. It is built once
// at startup and never mutated afterwards.
type Matrix struct {
	grants map[Role]map[Permission]struct{}
}

// NewMatrix validates the given grants and builds a Matrix. Every declared
// role must have a non-empty entry that includes PermissionView; a violation
// is a configuration fault surfaced here, never at evaluation time.
func NewMatrix(grants map[Role][]Permission) (Matrix, error) {
	built := make(map[Role]map[Permission]struct{}, len(roles))

	for _, role := range roles {
		granted, ok := grants[role]
		if !ok {
			return Matrix{}, fmt.Errorf("%w: %s", ErrMissingRole, role)
		}

		if len(granted) == 0 {
			return Matrix{}, fmt.Errorf("%w: %s", ErrEmptyGrant, role)
		}

		set := make(map[Permission]struct{}, len(granted))

		for _, perm := range granted {
			if !perm.IsValid() {
				return Matrix{}, fmt.Errorf("%w: %d granted to %s", ErrUnknownPermission, perm, role)
			}

			set[perm] = struct{}{}
		}

		if _, ok := set[PermissionView]; !ok {
			return Matrix{}, fmt.Errorf("%w: %s", ErrViewRequired, role)
		}

		built[role] = set
	}

	for role := range grants {
		if !role.IsValid() {
			return Matrix{}, fmt.Errorf("%w: %d", ErrUnknownRole, role)
		}
	}

	return Matrix{grants: built}, nil
}

// defaultGrants is the canonical matrix content.
var defaultGrants = map[Role][]Permission{
	RoleAdmin: {
		PermissionView,
		PermissionDownload,
		PermissionUpload,
		PermissionUpdate,
		PermissionDelete,
		PermissionPromote,
	},
	RoleProjectManager: {
		PermissionView,
		PermissionDownload,
		PermissionUpload,
		PermissionUpdate,
		PermissionPromote,
	},
	RoleViewer: {
		PermissionView,
		PermissionDownload,
	},
}

// Default returns the canonical matrix. The content is fixed; constructing
// it cannot fail validation, so a failure here is a programming error.
func Default() Matrix {
	matrix, err := NewMatrix(defaultGrants)
	if err != nil {
		panic(fmt.Sprintf("rbac: default matrix invalid: %v", err))
	}

	return matrix
}

// Grants reports whether the role is granted the permission.
func (m Matrix) Grants(role Role, perm Permission) bool {
	set, ok := m.grants[role]
	if !ok {
		return false
	}

	_, granted := set[perm]

	return granted
}

// PermissionsFor returns the role's granted permissions in declaration
// order. The slice is a copy; mutating it does not affect the matrix.
func (m Matrix) PermissionsFor(role Role) []Permission {
	set, ok := m.grants[role]
	if !ok {
		return nil
	}

	out := make([]Permission, 0, len(set))

	for _, perm := range permissions {
		if _, granted := set[perm]; granted {
			out = append(out, perm)
		}
	}

	return out
}

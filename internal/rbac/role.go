package rbac

// Role represents a user's access level in the common data environment.
type Role int

const (
	// RoleAdmin has every permission, including delete and WIP oversight.
	RoleAdmin Role = iota
	// RoleProjectManager can manage documents but not delete them.
	RoleProjectManager
	// RoleViewer can only view and download released material.
	RoleViewer
)

// roles lists the closed role set in declaration order.
var roles = []Role{RoleAdmin, RoleProjectManager, RoleViewer}

// Roles returns the closed role enumeration in declaration order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)

	return out
}

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleProjectManager:
		return "project_manager"
	case RoleViewer:
		return "viewer"
	default:
		return "unknown"
	}
}

// IsValid reports whether the role is a member of the closed enumeration.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleViewer:
		return true
	default:
		return false
	}
}

// ParseRole converts a role name to a Role.
// Returns ErrUnknownRole if the name is not recognized.
func ParseRole(name string) (Role, error) {
	switch name {
	case "admin":
		return RoleAdmin, nil
	case "project_manager":
		return RoleProjectManager, nil
	case "viewer":
		return RoleViewer, nil
	default:
		return 0, ErrUnknownRole
	}
}

package rbac

// Permission represents an action a user can perform on a document.
type Permission int

const (
	PermissionView Permission = iota
	PermissionDownload
	PermissionUpload
	PermissionUpdate
	PermissionDelete
	PermissionPromote
)

// permissions lists the closed permission set in declaration order.
var permissions = []Permission{
	PermissionView,
	PermissionDownload,
	PermissionUpload,
	PermissionUpdate,
	PermissionDelete,
	PermissionPromote,
}

// Permissions returns the closed permission enumeration in declaration order.
func Permissions() []Permission {
	out := make([]Permission, len(permissions))
	copy(out, permissions)

	return out
}

// String returns the string representation of the permission.
func (p Permission) String() string {
	switch p {
	case PermissionView:
		return "view"
	case PermissionDownload:
		return "download"
	case PermissionUpload:
		return "upload"
	case PermissionUpdate:
		return "update"
	case PermissionDelete:
		return "delete"
	case PermissionPromote:
		return "promote"
	default:
		return "unknown"
	}
}

// IsValid reports whether the permission is a member of the closed enumeration.
func (p Permission) IsValid() bool {
	return p >= PermissionView && p <= PermissionPromote
}

// IsVisibility reports whether the permission exposes document content.
// Visibility permissions are the only ones subject to WIP ownership gating.
func (p Permission) IsVisibility() bool {
	return p == PermissionView || p == PermissionDownload
}

package rbac

// Engine answers capability queries over an immutable Matrix. All methods
// are pure and safe for unbounded concurrent use.
type Engine struct {
	matrix Matrix
}

// NewEngine creates an engine over the given matrix.
func NewEngine(matrix Matrix) *Engine {
	return &Engine{matrix: matrix}
}

// Can reports whether the role is granted the permission.
func (e *Engine) Can(role Role, perm Permission) bool {
	return e.matrix.Grants(role, perm)
}

// Permissions returns the role's granted permissions in declaration order,
// suitable for deterministic rendering of capability lists.
func (e *Engine) Permissions(role Role) []Permission {
	return e.matrix.PermissionsFor(role)
}

// HasRole reports whether role is a member of candidates.
func (e *Engine) HasRole(role Role, candidates []Role) bool {
	for _, candidate := range candidates {
		if candidate == role {
			return true
		}
	}

	return false
}

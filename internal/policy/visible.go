package policy

import "github.com/serroba/cde-access/internal/rbac"

// VisibleStatuses returns the document statuses whose contents the role may
// see without an ownership override. Admins see every stage; other roles
// see everything except work in progress.
func VisibleStatuses(role rbac.Role) []DocumentStatus {
	all := Statuses()

	if role == rbac.RoleAdmin {
		return all
	}

	out := make([]DocumentStatus, 0, len(all)-1)

	for _, status := range all {
		if status == StatusWIP {
			continue
		}

		out = append(out, status)
	}

	return out
}

// VisibleDocuments filters docs down to those the user may view, preserving
// order. A denial drops the document; a fault aborts the filter.
func (p *DocumentAccessPolicy) VisibleDocuments(user User, docs []Document) ([]Document, error) {
	var out []Document

	for _, doc := range docs {
		decision, err := p.Evaluate(user, doc, rbac.PermissionView)
		if err != nil {
			return nil, err
		}

		if decision.Allowed {
			out = append(out, doc)
		}
	}

	return out, nil
}

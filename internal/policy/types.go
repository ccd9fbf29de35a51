package policy

import (
	"errors"

	"github.com/serroba/cde-access/internal/rbac"
)

// Common errors. Missing inputs are validation faults; an unknown status is
// a configuration fault. A denied Decision is never an error.
var (
	ErrMissingUser       = errors.New("user not resolved")
	ErrMissingDocument   = errors.New("document not resolved")
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownPermission = errors.New("unknown permission")
	ErrUnknownStatus     = errors.New("unknown document status")
)

// User is a resolved requester supplied by the authentication collaborator.
type User struct {
	ID   string
	Role rbac.Role
}

// Document is a resolved information container supplied by the document
// store. OwnerID identifies the original author; ownership is exact
// identifier equality.
type Document struct {
	ID      string
	OwnerID string
	Status  DocumentStatus
}

// Decision is the outcome of a policy evaluation. A denial carries the
// refused permission and an explanatory reason; Denied is only meaningful
// when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  string
	Denied  rbac.Permission
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(perm rbac.Permission, reason string) Decision {
	return Decision{Reason: reason, Denied: perm}
}

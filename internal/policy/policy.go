// Package policy decides whether a user may perform an action on a
// document. It composes the fixed role matrix with the ISO 19650 WIP
// visibility rules: the matrix is an absolute ceiling, and ownership or
// admin status can only restrict visibility of unreleased material, never
// grant beyond the ceiling.
package policy

import (
	"fmt"
	"time"

	"github.com/serroba/cde-access/internal/audit"
	"github.com/serroba/cde-access/internal/rbac"
)

const (
	reasonRoleLacksPermission = "role lacks permission"
	reasonWIPNotOwned         = "restricted: work-in-progress document not owned by requester"
)

// DocumentAccessPolicy evaluates access requests against the role matrix
// and document lifecycle context. It holds no mutable state and is safe
// for unbounded concurrent use.
type DocumentAccessPolicy struct {
	engine *rbac.Engine
	audit  audit.Recorder
}

// PolicyConfig holds configuration for creating a policy.
type PolicyConfig struct {
	// Engine answers role capability queries. Required.
	Engine *rbac.Engine

	// Audit, when set, receives every Decision the policy returns.
	Audit audit.Recorder
}

// NewPolicy creates a new document access policy.
func NewPolicy(cfg PolicyConfig) *DocumentAccessPolicy {
	return &DocumentAccessPolicy{
		engine: cfg.Engine,
		audit:  cfg.Audit,
	}
}

// Evaluate decides whether user may perform perm on doc. A denial is a
// normal Decision, not an error; errors are reserved for malformed input
// and configuration faults, which abort evaluation without a Decision.
func (p *DocumentAccessPolicy) Evaluate(user User, doc Document, perm rbac.Permission) (Decision, error) {
	if err := validateInput(user, doc, perm); err != nil {
		return Decision{}, err
	}

	decision, err := p.decide(user, doc, perm)
	if err != nil {
		return Decision{}, err
	}

	p.record(user, doc, perm, decision)

	return decision, nil
}

// decide runs the core algorithm: role ceiling first, then WIP visibility
// gating for view/download only.
func (p *DocumentAccessPolicy) decide(user User, doc Document, perm rbac.Permission) (Decision, error) {
	if !p.engine.Can(user.Role, perm) {
		return deny(perm, reasonRoleLacksPermission), nil
	}

	// Non-visibility actions carry no lifecycle override; the role
	// ceiling verdict is final and the status is never consulted.
	if !perm.IsVisibility() {
		return allow(), nil
	}

	class, err := doc.Status.Classify()
	if err != nil {
		return Decision{}, err
	}

	if class == ClassReleased {
		return allow(), nil
	}

	// WIP: admins always see unreleased material; otherwise only the owner.
	if user.Role == rbac.RoleAdmin {
		return allow(), nil
	}

	if doc.OwnerID == user.ID {
		return allow(), nil
	}

	return deny(perm, reasonWIPNotOwned), nil
}

func (p *DocumentAccessPolicy) record(user User, doc Document, perm rbac.Permission, decision Decision) {
	if p.audit == nil {
		return
	}

	p.audit.Record(audit.Entry{
		Time:       time.Now().UTC(),
		UserID:     user.ID,
		Role:       user.Role,
		Action:     perm,
		DocumentID: doc.ID,
		Allowed:    decision.Allowed,
		Reason:     decision.Reason,
	})
}

func validateInput(user User, doc Document, perm rbac.Permission) error {
	if user.ID == "" {
		return ErrMissingUser
	}

	if doc.ID == "" {
		return ErrMissingDocument
	}

	if !user.Role.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownRole, user.Role)
	}

	if !perm.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownPermission, perm)
	}

	return nil
}

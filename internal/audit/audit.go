// Package audit receives access decisions for compliance record-keeping.
// The policy engine forwards every Decision it returns; durability of the
// records is the recorder's responsibility, not the engine's.
package audit

import (
	"time"

	"github.com/serroba/cde-access/internal/rbac"
)

// Entry is a single recorded access decision.
type Entry struct {
	// Time is the UTC instant the decision was made.
	Time time.Time

	// UserID and Role identify the requester.
	UserID string
	Role   rbac.Role

	// Action is the permission that was requested.
	Action rbac.Permission

	// DocumentID identifies the document the decision concerned.
	DocumentID string

	// Allowed and Reason mirror the Decision outcome.
	Allowed bool
	Reason  string
}

// Recorder consumes decision entries. Implementations must not block;
// entries are delivered synchronously on the evaluating goroutine.
type Recorder interface {
	Record(entry Entry)
}

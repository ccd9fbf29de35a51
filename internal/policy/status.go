package policy

import "fmt"

// DocumentStatus is the ISO 19650 lifecycle stage of a document. The
// workflow engine owns all transitions; this package only reads the value.
type DocumentStatus int

const (
	// StatusWIP (S0) is work in progress, visible only to its owner and admins.
	StatusWIP DocumentStatus = iota
	// StatusTender (S1) is shared for tender.
	StatusTender
	// StatusConstruction (S2) is suitable for construction.
	StatusConstruction
	// StatusInfoApproval (S3) is under information approval.
	StatusInfoApproval
	// StatusPublished (S4) is published.
	StatusPublished
	// StatusArchived (S5) is archived.
	StatusArchived
)

// statuses lists the closed status set in lifecycle order.
var statuses = []DocumentStatus{
	StatusWIP,
	StatusTender,
	StatusConstruction,
	StatusInfoApproval,
	StatusPublished,
	StatusArchived,
}

// Statuses returns the closed status enumeration in lifecycle order.
func Statuses() []DocumentStatus {
	out := make([]DocumentStatus, len(statuses))
	copy(out, statuses)

	return out
}

// String returns the ISO 19650 status code.
func (s DocumentStatus) String() string {
	switch s {
	case StatusWIP:
		return "S0"
	case StatusTender:
		return "S1"
	case StatusConstruction:
		return "S2"
	case StatusInfoApproval:
		return "S3"
	case StatusPublished:
		return "S4"
	case StatusArchived:
		return "S5"
	default:
		return "unknown"
	}
}

// ParseStatus converts an ISO 19650 status code to a DocumentStatus.
// Returns ErrUnknownStatus if the code is not recognized.
func ParseStatus(code string) (DocumentStatus, error) {
	switch code {
	case "S0":
		return StatusWIP, nil
	case "S1":
		return StatusTender, nil
	case "S2":
		return StatusConstruction, nil
	case "S3":
		return StatusInfoApproval, nil
	case "S4":
		return StatusPublished, nil
	case "S5":
		return StatusArchived, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, code)
	}
}

// VisibilityClass is the binary partition of statuses used by the access
// policy. Richer stage sets collapse into these two classes.
type VisibilityClass int

const (
	// ClassWIP covers unreleased material subject to ownership gating.
	ClassWIP VisibilityClass = iota
	// ClassReleased covers every post-WIP stage.
	ClassReleased
)

// String returns the string representation of the class.
func (c VisibilityClass) String() string {
	switch c {
	case ClassWIP:
		return "wip"
	case ClassReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Classify maps the status into the WIP/Released partition. New stages must
// be added here; an unrecognized value is a configuration fault, never a
// silent default to either class.
func (s DocumentStatus) Classify() (VisibilityClass, error) {
	switch s {
	case StatusWIP:
		return ClassWIP, nil
	case StatusTender, StatusConstruction, StatusInfoApproval, StatusPublished, StatusArchived:
		return ClassReleased, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
}

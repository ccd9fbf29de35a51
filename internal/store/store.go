package store

import (
	"errors"

	"github.com/serroba/cde-access/internal/policy"
)

// Common errors.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("document already exists")
)

// Store defines the interface for the document collaborator that supplies
// resolved documents to callers. The access policy itself never reads it.
type Store interface {
	// Put adds a new document record.
	// Returns ErrDocumentExists if the ID is already present.
	Put(doc policy.Document) error

	// Get returns the document with the given ID.
	// Returns ErrDocumentNotFound if no such document exists.
	Get(id string) (policy.Document, error)

	// SetStatus records a workflow transition for the document.
	// Returns ErrDocumentNotFound if no such document exists.
	SetStatus(id string, status policy.DocumentStatus) error

	// List returns all documents in insertion order.
	List() ([]policy.Document, error)

	// Delete removes the document with the given ID.
	// Returns ErrDocumentNotFound if no such document exists.
	Delete(id string) error
}

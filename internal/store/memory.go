package store

import (
	"sync"

	"github.com/serroba/cde-access/internal/policy"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Useful for testing and development.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]policy.Document
	order []string
}

// NewMemoryStore creates a new in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]policy.Document),
	}
}

// Put adds a new document record.
func (m *MemoryStore) Put(doc policy.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[doc.ID]; exists {
		return ErrDocumentExists
	}

	m.docs[doc.ID] = doc
	m.order = append(m.order, doc.ID)

	return nil
}

// Get returns the document with the given ID.
func (m *MemoryStore) Get(id string) (policy.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[id]
	if !exists {
		return policy.Document{}, ErrDocumentNotFound
	}

	return doc, nil
}

// SetStatus records a workflow transition for the document.
func (m *MemoryStore) SetStatus(id string, status policy.DocumentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[id]
	if !exists {
		return ErrDocumentNotFound
	}

	doc.Status = status
	m.docs[id] = doc

	return nil
}

// List returns all documents in insertion order.
func (m *MemoryStore) List() ([]policy.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]policy.Document, 0, len(m.order))

	for _, id := range m.order {
		out = append(out, m.docs[id])
	}

	return out, nil
}

// Delete removes the document with the given ID.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; !exists {
		return ErrDocumentNotFound
	}

	delete(m.docs, id)

	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)

			break
		}
	}

	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

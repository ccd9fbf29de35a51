package audit

import "sync"

// MemoryRecorder keeps entries in memory.
// Useful for testing and development.
type MemoryRecorder struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRecorder creates a new in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends the entry.
func (m *MemoryRecorder) Record(entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
}

// Entries returns a copy of all recorded entries in arrival order.
func (m *MemoryRecorder) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Ensure MemoryRecorder implements Recorder.
var _ Recorder = (*MemoryRecorder)(nil)

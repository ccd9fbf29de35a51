package audit

import "sync"

// Hub fans entries out to a set of attached recorders. Recorders attach
// and detach under their own identifier, so independent collaborators can
// subscribe to the same decision stream.
type Hub struct {
	mu sync.RWMutex

	// recorders maps subscriber ID to recorder
	recorders map[string]Recorder
}

// NewHub creates a new Hub with no recorders attached.
func NewHub() *Hub {
	return &Hub{
		recorders: make(map[string]Recorder),
	}
}

// Attach registers a recorder under the given ID.
// An existing recorder with the same ID is replaced.
func (h *Hub) Attach(id string, recorder Recorder) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recorders[id] = recorder
}

// Detach removes the recorder registered under the given ID.
func (h *Hub) Detach(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.recorders, id)
}

// RecorderCount returns the number of attached recorders.
func (h *Hub) RecorderCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.recorders)
}

// Record delivers the entry to every attached recorder.
func (h *Hub) Record(entry Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, recorder := range h.recorders {
		recorder.Record(entry)
	}
}

// Ensure Hub implements Recorder.
var _ Recorder = (*Hub)(nil)

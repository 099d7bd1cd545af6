package telemetry

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRecorder stores events in memory (dev/test use).
type MemoryRecorder struct {
	mu     sync.RWMutex
	run    string
	events []Event
	nextID int64
}

// NewMemoryRecorder creates an empty in-memory recorder with a fresh run id.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{run: uuid.NewString(), nextID: 1}
}

// Record implements Recorder.
func (r *MemoryRecorder) Record(t EventType, meta Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, _ := json.Marshal(meta)
	r.events = append(r.events, Event{
		ID:       r.nextID,
		Run:      r.run,
		Type:     t,
		At:       time.Now(),
		Metadata: string(raw),
	})
	r.nextID++
}

// Events returns a copy of everything recorded so far.
func (r *MemoryRecorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByType returns recorded events of one type.
func (r *MemoryRecorder) ByType(t EventType) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

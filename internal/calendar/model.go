package calendar

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Model is the in-memory set of events behind one calendar page. It starts
// empty and only ever grows: events are appended on successful bookings and
// are never edited or removed. It is not synchronized with the remote backend.
type Model struct {
	mu     sync.RWMutex
	events []Event
}

// NewModel returns an empty calendar model.
func NewModel() *Model {
	return &Model{}
}

// Add appends an event, assigning an ID when the caller left it empty.
func (m *Model) Add(e Event) (Event, error) {
	if !e.Range().Valid() {
		return Event{}, ErrInvalidRange
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()

	return e, nil
}

// Events returns a copy of all events in insertion order.
func (m *Model) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Between returns events intersecting window, ordered by start time.
func (m *Model) Between(window TimeRange) []Event {
	m.mu.RLock()
	out := make([]Event, 0, len(m.events))
	for _, e := range m.events {
		if e.Range().Overlaps(window) {
			out = append(out, e)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// Conflicts reports whether r overlaps any non-background event.
func (m *Model) Conflicts(r TimeRange) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.events {
		if e.Background() {
			continue
		}
		if r.Overlaps(e.Range()) {
			return true
		}
	}
	return false
}

func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName carries the visitor session ID.
const CookieName = "slot_booking_session"

// Store keeps per-visitor page state in memory. Entries idle for longer than
// the TTL are evicted, which is the server-side equivalent of a page reload:
// the visitor starts again from an empty state.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	ttl     time.Duration
	newFn   func() T
	now     func() time.Time
}

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// NewStore creates a store that builds missing entries with newFn.
func NewStore[T any](ttl time.Duration, newFn func() T) *Store[T] {
	if newFn == nil {
		panic("session: constructor required")
	}
	return &Store[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		newFn:   newFn,
		now:     time.Now,
	}
}

// Load returns the entry for id, creating it on first use.
func (s *Store[T]) Load(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[id]
	if !ok || s.expired(e, now) {
		e = &entry[T]{value: s.newFn()}
		s.entries[id] = e
	}
	e.lastSeen = now
	return e.value
}

// Sweep evicts idle entries and returns how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps the store every interval until ctx is done.
func (s *Store[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store[T]) expired(e *entry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}

// ID returns the visitor session ID, issuing a new cookie when the request
// carries none.
func ID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

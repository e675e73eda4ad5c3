package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps rate windows in process memory. Sessions are not shared
// across processes in this deployment, so this is the default store.
type MemoryStore struct {
	mu      sync.RWMutex
	windows map[string][]time.Time
}

// NewMemoryStore creates an empty in-memory window store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string][]time.Time)}
}

// Get returns a copy of the session's window; unknown sessions yield an
// empty window.
func (s *MemoryStore) Get(_ context.Context, sessionID string) ([]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window, ok := s.windows[sessionID]
	if !ok {
		return nil, nil
	}
	copied := make([]time.Time, len(window))
	copy(copied, window)
	return copied, nil
}

// Put replaces the session's window. Empty windows drop the entry so idle
// sessions do not accumulate.
func (s *MemoryStore) Put(_ context.Context, sessionID string, window []time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(window) == 0 {
		delete(s.windows, sessionID)
		return nil
	}
	copied := make([]time.Time, len(window))
	copy(copied, window)
	s.windows[sessionID] = copied
	return nil
}

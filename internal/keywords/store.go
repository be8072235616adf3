package keywords

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultStoreCap is how many recent runs the store keeps.
const DefaultStoreCap = 20

// Store holds recent result sets in memory so the results page can offer a
// download link after rendering. Oldest runs are evicted at the cap; nothing
// survives a restart.
type Store struct {
	mu    sync.Mutex
	cap   int
	runs  map[uuid.UUID]*ResultSet
	order []uuid.UUID
}

// NewStore creates a store holding at most capacity runs.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultStoreCap
	}
	return &Store{
		cap:  capacity,
		runs: make(map[uuid.UUID]*ResultSet),
	}
}

// Put records a run, evicting the oldest when the store is full.
func (s *Store) Put(rs *ResultSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[rs.ID]; !exists {
		s.order = append(s.order, rs.ID)
	}
	s.runs[rs.ID] = rs

	for len(s.order) > s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
}

// Get returns the run with the given ID, if it is still held.
func (s *Store) Get(id uuid.UUID) (*ResultSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, ok := s.runs[id]
	return rs, ok
}

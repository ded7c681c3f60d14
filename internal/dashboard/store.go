package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for a given ID.
var ErrNotFound = errors.New("session not found")

type session struct {
	state     State
	updatedAt time.Time
}

// Store is a concurrency-safe in-memory session store. It holds only
// per-session UI inputs (mode, article, date range) and never caches any
// fetched data.
type Store struct {
	mu sync.RWMutex

	// key: session ID
	sessions map[string]*session

	// maxAge is the idle retention for sessions (0 = unlimited).
	maxAge time.Duration
}

// NewStore creates a Store with the given idle retention.
func NewStore(maxAge time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		maxAge:   maxAge,
	}
}

// Create registers a new session with the given initial state and returns
// its generated ID.
func (s *Store) Create(state State) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{state: state, updatedAt: time.Now()}
	return id
}

// Get returns the current state for a session.
func (s *Store) Get(id string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return sess.state, nil
}

// Update replaces a session's state and refreshes its idle timer.
func (s *Store) Update(id string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.state = state
	sess.updatedAt = time.Now()
	return nil
}

// Evict removes sessions idle for longer than maxAge and returns how many
// were dropped.
func (s *Store) Evict() int {
	if s.maxAge <= 0 {
		return 0
	}

	cutoff := time.Now().Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	var dropped int
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

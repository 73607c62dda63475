package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Info is a read-only snapshot of a conversation for listings.
type Info struct {
	ID        uuid.UUID `json:"id"`
	Turns     int       `json:"turns"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is an in-memory registry of conversation states keyed by ID.
// Safe for concurrent use.
//
// The zero value is not usable; construct with NewStore. NewStore also
// creates a default conversation so that clients that never ask for a
// session of their own share one conversation stream, matching the
// original single-stream wire contract.
type Store struct {
	mu        sync.RWMutex
	states    map[uuid.UUID]*State
	defaultID uuid.UUID
}

// NewStore creates a Store with a default conversation already present.
func NewStore() *Store {
	s := &Store{
		states: make(map[uuid.UUID]*State),
	}
	s.defaultID = s.Create()
	return s
}

// Create registers a new empty conversation and returns its ID.
func (s *Store) Create() uuid.UUID {
	id := uuid.New()
	st := newState(time.Now())

	s.mu.Lock()
	s.states[id] = st
	s.mu.Unlock()

	return id
}

// Get returns the state for the given conversation ID.
// Returns ErrNotFound if the conversation does not exist.
func (s *Store) Get(id uuid.UUID) (*State, error) {
	s.mu.RLock()
	st, ok := s.states[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return st, nil
}

// DefaultID returns the ID of the default conversation created at startup.
func (s *Store) DefaultID() uuid.UUID {
	return s.defaultID
}

// Default returns the default conversation state.
func (s *Store) Default() *State {
	st, _ := s.Get(s.defaultID) // always present
	return st
}

// List returns snapshots of all conversations, most recently updated first.
func (s *Store) List() []Info {
	s.mu.RLock()
	infos := make([]Info, 0, len(s.states))
	for id, st := range s.states {
		infos = append(infos, Info{
			ID:        id,
			Turns:     st.Len(),
			CreatedAt: st.CreatedAt(),
			UpdatedAt: st.UpdatedAt(),
		})
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos
}

// Delete removes a conversation. The default conversation cannot be
// deleted. Returns ErrNotFound if the conversation does not exist.
func (s *Store) Delete(id uuid.UUID) error {
	if id == s.defaultID {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[id]; !ok {
		return ErrNotFound
	}
	delete(s.states, id)
	return nil
}

// Len returns the number of conversations, including the default one.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

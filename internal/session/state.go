package session

import (
	"sync"
	"time"
)

// Turn is one user-message/assistant-reply exchange. Immutable once
// appended to a transcript.
type Turn struct {
	User      string
	Assistant string
}

// State is the mutable memory of a single conversation: the ordered
// transcript and the rolling summary.
//
// All methods are safe for concurrent use. The summary is only replaced
// after generation-path turns; calculator turns append to the transcript
// without touching it, so the summary can legitimately lag the transcript.
type State struct {
	mu         sync.RWMutex
	transcript []Turn
	summary    string
	createdAt  time.Time
	updatedAt  time.Time
}

// newState creates an empty conversation state.
func newState(now time.Time) *State {
	return &State{
		createdAt: now,
		updatedAt: now,
	}
}

// AppendTurn appends one completed exchange to the transcript.
// Insertion order is significant: the summarization prompt replays the
// transcript in chronological order.
func (s *State) AppendTurn(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, t)
	s.updatedAt = time.Now()
}

// Turns returns a copy of the transcript in insertion order.
func (s *State) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of turns in the transcript.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcript)
}

// Summary returns the rolling conversation summary. Empty until the first
// generation-path turn completes.
func (s *State) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// SetSummary replaces the rolling summary. The previous value is
// discarded, not merged.
func (s *State) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.updatedAt = time.Now()
}

// CreatedAt returns the creation time of the conversation.
func (s *State) CreatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (s *State) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

package chat

import (
	"context"
	"sync"
)

// Deterministic stub implementations of the Retriever and Generator
// capabilities, for tests that need to exercise routing logic without a
// model or a vector store.

// StubRetriever returns fixed passages and records queries.
type StubRetriever struct {
	mu       sync.Mutex
	Passages []string
	Err      error
	Queries  []string
}

// Search implements Retriever.
func (s *StubRetriever) Search(_ context.Context, query string, k int) ([]string, error) {
	s.mu.Lock()
	s.Queries = append(s.Queries, query)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Passages) > k {
		return s.Passages[:k], nil
	}
	return s.Passages, nil
}

// StubGenerator returns a fixed response and records every prompt it sees,
// in order. The summary call is distinguishable by prompt inspection.
type StubGenerator struct {
	mu       sync.Mutex
	Response string
	Err      error
	Prompts  []string
}

// Generate implements Generator.
func (s *StubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.Prompts = append(s.Prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// PromptAt returns the i-th recorded prompt, or "" when out of range.
func (s *StubGenerator) PromptAt(i int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.Prompts) {
		return ""
	}
	return s.Prompts[i]
}

// PromptCount returns the number of recorded prompts.
func (s *StubGenerator) PromptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Prompts)
}

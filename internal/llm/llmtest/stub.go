// Package llmtest provides an in-memory llm.Client for tests.
package llmtest

import (
	"context"
	"sync"
)

// Stub returns Response (or Err) from every Generate call and records the
// prompts it received.
type Stub struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

func (s *Stub) ProviderName() string { return "stub" }
func (s *Stub) ModelName() string    { return "stub-model" }

func (s *Stub) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Prompts returns a copy of every prompt received so far.
func (s *Stub) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

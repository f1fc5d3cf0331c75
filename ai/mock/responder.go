package mock

import (
	"context"
	"sync"
)

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// GenerateFunc is called by Generate if set.
	// If nil, a canned reply echoing the prompt is returned.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	mu        sync.Mutex
	callCount int
	lastPrompt string
}

// NewMockResponder creates a mock responder with default canned behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Generate returns a canned reply, or delegates to GenerateFunc when set.
// Safe for concurrent use; the dialog engine calls it from a worker pool.
func (m *MockResponder) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastPrompt = prompt
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}

	return "mock reply: " + prompt, nil
}

// CallCount returns how many times Generate was called.
func (m *MockResponder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastPrompt returns the prompt from the most recent Generate call.
func (m *MockResponder) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

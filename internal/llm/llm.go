// Package llm provides the completion capability the answer pipeline
// delegates synthesis to, behind a single narrow interface.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrCompletion is returned when the completion capability fails or returns
// an unusable response. Failures are propagated, never retried.
var ErrCompletion = errors.New("completion failed")

// Completer generates answer text from a system instruction and a user turn.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Sampling bounds shared by every adapter: low temperature to favor
// faithfulness to the context over creativity, and a hard output cap.
const (
	temperature     = 0.1
	maxOutputTokens = 500
)

// MockCompleter is a deterministic Completer for tests and offline runs.
type MockCompleter struct {
	// Response, when set, is returned verbatim.
	Response string
	// Err, when set, is returned instead of a response.
	Err error

	// LastSystemPrompt and LastUserPrompt record the most recent call.
	LastSystemPrompt string
	LastUserPrompt   string
}

// NewMockCompleter creates a MockCompleter.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt

	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("mock answer (%d chars of context)", len(userPrompt)), nil
}

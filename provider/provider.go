// Package provider abstracts the external text-generation service behind a
// small streaming interface. Concrete adapters live in the openai and
// anthropic subpackages; MockProvider supplies deterministic completions for
// tests and examples without network access.
package provider

import (
	"context"
	"fmt"
)

// Request is the single logical request type of the service boundary: a
// system-level instruction, a user-level query and a model identifier. The
// request is always streamed.
type Request struct {
	Model        string `json:"model"`
	Instructions string `json:"instructions"`
	Query        string `json:"query"`
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name   string `json:"name"`   // Default model identifier
	Vendor string `json:"vendor"` // "openai", "anthropic", "mock", etc.
}

// Provider streams a completion for a single-turn request. The returned
// fragment channel yields incremental text in emission order and is closed on
// stream completion; the error channel carries at most one error and is
// closed afterwards. A single attempt is made per call: no retry, no backoff.
type Provider interface {
	Stream(ctx context.Context, req Request) (<-chan string, <-chan error)

	// Info returns information about the provider implementation.
	Info() Info
}

// MockProvider is a lightweight in-memory Provider useful for tests & examples.
type MockProvider struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockProvider constructs a MockProvider that echoes canned responses.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		info:      Info{Name: "mock-model", Vendor: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input query.
func (m *MockProvider) AddResponse(query, response string) { m.responses[query] = response }

// FailWith makes every subsequent Stream call surface err instead of fragments.
func (m *MockProvider) FailWith(err error) { m.err = err }

// Stream implements Provider; emits the canned completion rune by rune.
func (m *MockProvider) Stream(ctx context.Context, req Request) (<-chan string, <-chan error) {
	out := make(chan string, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)
		if m.err != nil {
			errCh <- m.err
			return
		}
		full, ok := m.responses[req.Query]
		if !ok {
			full = fmt.Sprintf("Mock response to: %s", req.Query)
		}
		for _, r := range full {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case out <- string(r):
			}
		}
	}()

	return out, errCh
}

// Info implements Provider.
func (m *MockProvider) Info() Info { return m.info }

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// errScriptExhausted is what a MockProvider reports once its script runs out.
var errScriptExhausted = errors.New("mock script exhausted")

// MockResponse is one scripted reply. Err, when set, is returned instead of
// Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers from a script, one entry per call, and keeps every
// request it was sent. Replies go through the same schema check as the real
// providers.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	next     int
	requests []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	if m.next >= len(m.script) {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{Err: errScriptExhausted}
	}
	reply := m.script[m.next]
	m.next++
	m.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}
	return finish(req, reply.Content, reply.Usage, "mock", StopEnd)
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Queue appends replies to the script.
func (m *MockProvider) Queue(replies ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, replies...)
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

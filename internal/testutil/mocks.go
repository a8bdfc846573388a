package testutil

import (
	"context"
	"fmt"

	"github.com/Hyunsang-coder/slideglot/internal/llm"
)

// MockChatClient mocks the LLM chat client for testing. Responses are
// served in order when Queue is non-empty, otherwise Response is returned
// for every call. Err, when set, fails every call.
type MockChatClient struct {
	Response string
	Queue    []string
	Err      error
	Calls    []llm.Request
}

// NewMockChatClient creates an empty mock chat client
func NewMockChatClient() *MockChatClient {
	return &MockChatClient{}
}

// Complete records the request and replays the scripted response
func (m *MockChatClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.Calls = append(m.Calls, req)

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Queue) > 0 {
		next := m.Queue[0]
		m.Queue = m.Queue[1:]
		return next, nil
	}

	if m.Response == "" {
		return "", fmt.Errorf("no scripted response for call %d", len(m.Calls))
	}
	return m.Response, nil
}

package llm

import "context"

// Request is a single chat-completion round trip. JSONOnly asks the provider
// to constrain the response to a valid JSON object where supported.
type Request struct {
	System      string
	User        string
	Model       string
	Temperature float32
	MaxTokens   int
	JSONOnly    bool
}

// ChatClient is one blocking chat-completion call. Implementations return
// the raw response text; decoding is the caller's concern.
type ChatClient interface {
	Complete(ctx context.Context, req Request) (string, error)
}

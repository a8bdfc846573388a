package llm

import "fmt"

// ParseError indicates a provider response that was not valid JSON
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	snippet := e.Raw
	if runes := []rune(snippet); len(runes) > 200 {
		// Cut on a rune boundary so multi-byte text stays valid
		snippet = string(runes[:200]) + "..."
	}
	return fmt.Sprintf("malformed LLM response: %v (response: %q)", e.Err, snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError indicates well-formed JSON that is missing an expected key or
// has a mismatched length
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected LLM response shape: %s", e.Reason)
}

// ExternalServiceError indicates a network or auth failure calling the
// provider
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

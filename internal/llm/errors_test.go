package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseError_TruncatesLongResponses(t *testing.T) {
	raw := strings.Repeat("x", 500)
	err := &ParseError{Raw: raw, Err: fmt.Errorf("invalid character 'x'")}

	msg := err.Error()
	if len(msg) > 300 {
		t.Errorf("Expected truncated message, got %d chars", len(msg))
	}
	if !strings.Contains(msg, "...") {
		t.Error("Expected ellipsis in truncated message")
	}
}

func TestParseError_TruncatesOnRuneBoundary(t *testing.T) {
	raw := "x" + strings.Repeat("응답", 300)
	err := &ParseError{Raw: raw, Err: fmt.Errorf("invalid character")}

	if msg := err.Error(); !utf8.ValidString(msg) {
		t.Errorf("Error message is not valid UTF-8: %q", msg)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := &ParseError{Raw: "{", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected ParseError to unwrap to inner error")
	}
}

func TestShapeError_Message(t *testing.T) {
	err := &ShapeError{Reason: "missing 'result' array"}
	if !strings.Contains(err.Error(), "missing 'result' array") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestExternalServiceError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := &ExternalServiceError{Provider: "OpenAI", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected ExternalServiceError to unwrap to inner error")
	}
	if !strings.Contains(err.Error(), "OpenAI") {
		t.Errorf("Expected provider name in message: %s", err.Error())
	}
}

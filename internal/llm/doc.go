// Package llm wraps the chat-completion providers behind a single blocking
// JSON-in/JSON-out interface. It provides OpenAI and Gemini implementations,
// a circuit-breaker wrapper, and the error taxonomy shared by the glossary
// and translation steps.
package llm

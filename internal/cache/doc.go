// Package cache persists built glossaries keyed by a deterministic hash of
// the deck content and the extraction parameters, so unchanged decks never
// repeat the glossary LLM call. Backed by a single SQLite file.
package cache

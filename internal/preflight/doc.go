// Package preflight runs the terminology stage that precedes translation:
// it extracts candidate terms from a deck, asks the LLM once for a glossary
// proposal plus a style note, and parses the JSON response. On any failure
// the caller falls back to an empty glossary; the preflight never retries.
package preflight

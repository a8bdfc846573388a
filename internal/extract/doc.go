// Package extract implements the terminology candidate extraction that runs
// before translation. It is pure: pattern-based harvesting over ordered text
// segments, deterministic normalization, and frequency ranking with stable
// tie-breaking. No I/O and no LLM involvement.
package extract

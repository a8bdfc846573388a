// Package translate sends deck text segments to the LLM in bounded batches
// and enforces the aligned-response contract: each batch's JSON reply must
// contain exactly one translated string per source string, in order, or the
// whole batch fails. Failed batches fall back to the source text so sibling
// batches are never affected.
package translate

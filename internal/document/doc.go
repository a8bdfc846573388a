// Package document defines the block-structured deck model exchanged with
// the external slide parser. It loads and saves deck JSON files, flattens a
// deck into an ordered list of translatable text segments, re-inserts
// translated segments, and renders a deck to Markdown.
package document

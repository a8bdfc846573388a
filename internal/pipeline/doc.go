// Package pipeline orchestrates one document's journey: term extraction,
// glossary cache lookup, the preflight LLM call on a miss, batched
// translation, and re-insertion into the deck. All stage failures degrade
// to warnings; the pipeline itself never aborts a document.
package pipeline

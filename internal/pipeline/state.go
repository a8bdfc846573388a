package pipeline

// State tracks a document's progress through the pipeline. States advance
// strictly in order; GlossaryFallbackEmpty stands in for GlossaryReady with
// an empty mapping after a failed glossary build.
type State int

const (
	StateExtracted State = iota
	StateGlossaryPending
	StateGlossaryReady
	StateGlossaryFallbackEmpty
	StateTranslating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateExtracted:
		return "extracted"
	case StateGlossaryPending:
		return "glossary-pending"
	case StateGlossaryReady:
		return "glossary-ready"
	case StateGlossaryFallbackEmpty:
		return "glossary-fallback-empty"
	case StateTranslating:
		return "translating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/Hyunsang-coder/slideglot/internal/cache"
	"github.com/Hyunsang-coder/slideglot/internal/document"
	"github.com/Hyunsang-coder/slideglot/internal/extract"
	"github.com/Hyunsang-coder/slideglot/internal/glossary"
	"github.com/Hyunsang-coder/slideglot/internal/llm"
	"github.com/Hyunsang-coder/slideglot/internal/preflight"
	"github.com/Hyunsang-coder/slideglot/internal/translate"
)

// Options configures one pipeline run
type Options struct {
	SourceLang        string
	TargetLang        string
	Model             string
	Temperature       float32
	MaxTerms          int
	BatchSize         int
	ExtraInstructions string

	// Override is a user-edited glossary whose entries win over the built
	// ones. With SkipPreflight set the glossary LLM call is bypassed
	// entirely and the override is used as-is.
	Override      glossary.Glossary
	SkipPreflight bool
}

// Result is everything one pipeline run produces
type Result struct {
	State          State
	Glossary       glossary.Glossary
	StyleNote      string
	AmbiguousSpots []string
	Candidates     []extract.Candidate
	Translated     *document.Deck
	Warnings       []string
	CacheHit       bool
}

// Pipeline runs the glossary-then-translate flow for a deck. The cache
// store is optional; a nil store disables glossary caching.
type Pipeline struct {
	client llm.ChatClient
	store  *cache.Store
	opts   Options
}

// New creates a pipeline. Zero option fields fall back to the stage
// defaults.
func New(client llm.ChatClient, store *cache.Store, opts Options) *Pipeline {
	if opts.TargetLang == "" {
		opts.TargetLang = "en"
	}
	if opts.MaxTerms <= 0 {
		opts.MaxTerms = extract.DefaultMaxTerms
	}
	return &Pipeline{client: client, store: store, opts: opts}
}

// Run processes one deck start to finish. The returned error covers only
// broken inputs; LLM and cache failures degrade to warnings on the Result.
func (p *Pipeline) Run(ctx context.Context, deck *document.Deck) (*Result, error) {
	if deck == nil {
		return nil, fmt.Errorf("no deck to process")
	}

	segments := deck.Segments()
	result := &Result{State: StateExtracted, Glossary: glossary.Glossary{}}

	p.buildGlossary(ctx, deck, segments, result)
	p.translateDeck(ctx, deck, segments, result)

	result.State = StateDone
	return result, nil
}

// buildGlossary advances the result through the glossary states
func (p *Pipeline) buildGlossary(ctx context.Context, deck *document.Deck, segments []string, result *Result) {
	result.State = StateGlossaryPending

	if p.opts.SkipPreflight {
		result.Glossary = glossary.Glossary{}.Merge(p.opts.Override)
		result.State = StateGlossaryReady
		return
	}

	key := cache.Key(segments, p.opts.TargetLang, p.opts.MaxTerms)
	if p.store != nil {
		cached, found, err := p.store.Get(key)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("glossary cache lookup failed: %v", err))
		} else if found {
			result.Glossary = cached.Merge(p.opts.Override)
			result.CacheHit = true
			result.State = StateGlossaryReady
			return
		}
	}

	built, err := preflight.NewBuilder(p.client, p.opts.Model, p.opts.MaxTerms).Run(ctx, deck, p.opts.TargetLang)
	result.Candidates = built.Candidates
	if err != nil {
		// One shot only: fall back to an empty glossary, no retry
		result.Warnings = append(result.Warnings, fmt.Sprintf("glossary build failed, continuing without it: %v", err))
		result.Glossary = glossary.Glossary{}.Merge(p.opts.Override)
		result.State = StateGlossaryFallbackEmpty
		return
	}

	if p.store != nil && len(built.Glossary) > 0 {
		if err := p.store.Put(key, built.Glossary); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("glossary cache write failed: %v", err))
		}
	}

	result.Glossary = built.Glossary.Merge(p.opts.Override)
	result.StyleNote = built.StyleNote
	result.AmbiguousSpots = built.AmbiguousSpots
	result.State = StateGlossaryReady
}

// translateDeck translates the segments and rebuilds the deck. Failed
// batches keep their source text and are reported as warnings.
func (p *Pipeline) translateDeck(ctx context.Context, deck *document.Deck, segments []string, result *Result) {
	result.State = StateTranslating

	translator := translate.New(p.client, translate.Config{
		SourceLang:        p.opts.SourceLang,
		TargetLang:        p.opts.TargetLang,
		Model:             p.opts.Model,
		Temperature:       p.opts.Temperature,
		BatchSize:         p.opts.BatchSize,
		Glossary:          result.Glossary,
		StyleNote:         result.StyleNote,
		ExtraInstructions: p.opts.ExtraInstructions,
	})

	translated, failures := translator.Translate(ctx, segments)
	for _, failure := range failures {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%v (source text kept)", failure))
	}

	rebuilt, err := deck.WithSegments(translated)
	if err != nil {
		// Cannot happen as long as Translate keeps its length contract
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to rebuild deck: %v", err))
		result.Translated = deck
		return
	}
	result.Translated = rebuilt
}

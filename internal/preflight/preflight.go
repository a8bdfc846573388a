package preflight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Hyunsang-coder/slideglot/internal/document"
	"github.com/Hyunsang-coder/slideglot/internal/extract"
	"github.com/Hyunsang-coder/slideglot/internal/glossary"
	"github.com/Hyunsang-coder/slideglot/internal/llm"
)

const (
	// DefaultModel is the chat model used for the glossary proposal
	DefaultModel = "gpt-4o-mini"

	outlineLineLimit     = 40
	outlineLinesPerSlide = 3
)

// Result bundles everything the preflight stage produces for the
// translation step
type Result struct {
	Glossary       glossary.Glossary
	StyleNote      string
	AmbiguousSpots []string
	Candidates     []extract.Candidate
}

// Builder proposes a glossary for a deck with a single LLM call
type Builder struct {
	client      llm.ChatClient
	model       string
	temperature float32
	maxTerms    int
}

// NewBuilder creates a glossary builder. A zero maxTerms uses the default
// candidate bound.
func NewBuilder(client llm.ChatClient, model string, maxTerms int) *Builder {
	if model == "" {
		model = DefaultModel
	}
	if maxTerms <= 0 {
		maxTerms = extract.DefaultMaxTerms
	}
	return &Builder{
		client:      client,
		model:       model,
		temperature: 0.2,
		maxTerms:    maxTerms,
	}
}

// Run extracts candidates and asks the LLM for a glossary proposal. On an
// empty deck or no candidates it returns an empty result without calling
// the LLM. LLM and decoding failures are returned as-is; the caller decides
// the fallback and must not retry.
func (b *Builder) Run(ctx context.Context, deck *document.Deck, targetLang string) (*Result, error) {
	segments := deckSegments(deck)
	candidates := extract.TopTerms(segments, b.maxTerms)
	result := &Result{Glossary: glossary.Glossary{}, Candidates: candidates}

	if len(candidates) == 0 {
		return result, nil
	}

	user, err := buildUserPrompt(deck, candidates, targetLang)
	if err != nil {
		return result, err
	}

	raw, err := b.client.Complete(ctx, llm.Request{
		System: "You are a bilingual localization strategist for game publishing decks. " +
			"Your job is to review terminology candidates, recommend consistent translations, " +
			"and highlight any ambiguous content. Always reply with JSON only.",
		User:        user,
		Model:       b.model,
		Temperature: b.temperature,
		JSONOnly:    true,
	})
	if err != nil {
		return result, err
	}

	decoded, err := decodeResponse(raw, candidates)
	if err != nil {
		return result, err
	}

	result.Glossary = decoded.Glossary
	result.StyleNote = decoded.StyleNote
	result.AmbiguousSpots = decoded.AmbiguousSpots
	return result, nil
}

func buildUserPrompt(deck *document.Deck, candidates []extract.Candidate, targetLang string) (string, error) {
	type candidatePayload struct {
		Term    string `json:"term"`
		Score   int    `json:"score"`
		Context string `json:"context"`
		Slide   int    `json:"slide"`
	}

	payload := make([]candidatePayload, len(candidates))
	for i, c := range candidates {
		payload[i] = candidatePayload{
			Term:    c.Term,
			Score:   c.Count,
			Context: strings.Join(c.Contexts, "; "),
			Slide:   c.FirstSlide + 1,
		}
	}
	candidatesJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode candidates: %w", err)
	}

	return fmt.Sprintf(
		"Presentation outline:\n%s\n\n"+
			"Terminology candidates (JSON):\n%s\n\n"+
			"Target translation language: %s.\n"+
			"Return a JSON object with a 'glossary' key mapping each important source term to its "+
			"recommended translation in a professional marketing/game development tone, an optional "+
			"'style_note' string, and an optional 'ambiguous_spots' array of sentences that need "+
			"clarification. Only include terms from the candidate list.",
		buildOutline(deck), candidatesJSON, targetLang), nil
}

// buildOutline condenses the deck to a short headline view for the prompt
func buildOutline(deck *document.Deck) string {
	var lines []string
	for _, slide := range deck.Slides {
		lines = append(lines, fmt.Sprintf("Slide %d: %s", slide.Index+1, slide.Title))
		appended := 0
		for _, block := range slide.Blocks {
			if block.Kind != document.KindText {
				continue
			}
			for _, line := range block.Lines {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				lines = append(lines, "- "+line)
				appended++
				if appended >= outlineLinesPerSlide {
					break
				}
			}
			if appended >= outlineLinesPerSlide {
				break
			}
		}
		if len(lines) >= outlineLineLimit {
			break
		}
	}
	if len(lines) > outlineLineLimit {
		lines = lines[:outlineLineLimit]
	}
	return strings.Join(lines, "\n")
}

// decodeResponse parses the preflight LLM reply and keeps only glossary
// entries whose source term was actually submitted
func decodeResponse(raw string, candidates []extract.Candidate) (*Result, error) {
	var payload struct {
		Glossary       map[string]json.RawMessage `json:"glossary"`
		StyleNote      string                     `json:"style_note"`
		AmbiguousSpots []string                   `json:"ambiguous_spots"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &llm.ParseError{Raw: raw, Err: err}
	}
	if payload.Glossary == nil {
		return nil, &llm.ShapeError{Reason: "missing 'glossary' object"}
	}

	submitted := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		submitted[c.Normalized] = true
	}

	g := glossary.Glossary{}
	for source, rawTarget := range payload.Glossary {
		key := extract.Normalize(source)
		if key == "" || !submitted[key] {
			continue
		}
		var target string
		if err := json.Unmarshal(rawTarget, &target); err != nil {
			// Non-string values are dropped rather than failing the build
			continue
		}
		if strings.TrimSpace(target) == "" {
			continue
		}
		g[key] = strings.TrimSpace(target)
	}

	var spots []string
	for _, spot := range payload.AmbiguousSpots {
		if s := strings.TrimSpace(spot); s != "" {
			spots = append(spots, s)
		}
	}

	return &Result{
		Glossary:       g,
		StyleNote:      strings.TrimSpace(payload.StyleNote),
		AmbiguousSpots: spots,
	}, nil
}

// deckSegments flattens a deck into extraction segments, one per
// translatable text element
func deckSegments(deck *document.Deck) []extract.Segment {
	var segments []extract.Segment
	for _, slide := range deck.Slides {
		for _, text := range (&document.Deck{Slides: []document.Slide{slide}}).Segments() {
			segments = append(segments, extract.Segment{
				SlideIndex: slide.Index,
				SlideTitle: slide.Title,
				Text:       text,
			})
		}
	}
	return segments
}

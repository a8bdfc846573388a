package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxTerms bounds the candidate list sent to the glossary step
const DefaultMaxTerms = 50

const maxContextsPerTerm = 3

// Segment is one text segment with its source slide
type Segment struct {
	SlideIndex int
	SlideTitle string
	Text       string
}

// Candidate is a ranked terminology candidate. Term keeps the first-seen
// original casing; Normalized is the dedup key.
type Candidate struct {
	Term       string
	Normalized string
	Count      int
	FirstSlide int
	Contexts   []string
}

// termPatterns mirror the heuristics used for marketing/game decks:
// acronyms, multi-word proper nouns, hyphenated terms, digit-bearing tokens
// and longer Korean words.
var termPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][A-Z0-9]{2,}\b`),              // AAA, KPI
	regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`),   // Battle Royale
	regexp.MustCompile(`\b[A-Za-z]+(?:-[A-Za-z0-9]+)+\b`),    // free-to-play
	regexp.MustCompile(`\b[A-Za-z]*[0-9]+[A-Za-z]*\b`),       // GDC2025
	regexp.MustCompile(`[가-힣]{4,}`),                          // longer Korean words
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize lower-cases a term and collapses whitespace runs to a single
// space. This is the single deterministic normalization rule; no stemming
// or plural folding is applied.
func Normalize(term string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(term)), " ")
}

// TopTerms extracts at most maxTerms terminology candidates from the given
// segments, ordered by descending frequency with ties broken by first
// appearance. Empty input yields empty output.
func TopTerms(segments []Segment, maxTerms int) []Candidate {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}

	type bucket struct {
		candidate  Candidate
		firstOrder int
	}

	buckets := make(map[string]*bucket)
	order := 0

	for _, segment := range segments {
		text := strings.TrimSpace(segment.Text)
		if text == "" {
			continue
		}
		snippet := truncateSnippet(text, 160)
		for _, term := range matchTerms(text) {
			key := Normalize(term)
			b, ok := buckets[key]
			if !ok {
				b = &bucket{
					candidate: Candidate{
						Term:       term,
						Normalized: key,
						FirstSlide: segment.SlideIndex,
					},
					firstOrder: order,
				}
				buckets[key] = b
				order++
			}
			b.candidate.Count++
			if len(b.candidate.Contexts) < maxContextsPerTerm {
				b.candidate.Contexts = append(b.candidate.Contexts,
					fmt.Sprintf("Slide %d: %s", segment.SlideIndex+1, snippet))
			}
		}
	}

	ranked := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, b)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].candidate.Count != ranked[j].candidate.Count {
			return ranked[i].candidate.Count > ranked[j].candidate.Count
		}
		return ranked[i].firstOrder < ranked[j].firstOrder
	})

	if len(ranked) > maxTerms {
		ranked = ranked[:maxTerms]
	}

	result := make([]Candidate, len(ranked))
	for i, b := range ranked {
		result[i] = b.candidate
	}
	return result
}

// RankTerms ranks an already-tokenized term list by normalized frequency.
// Used when the caller supplies terms directly instead of raw segments, for
// example a user-edited candidate list. Same ordering contract as TopTerms.
func RankTerms(terms []string, maxTerms int) []Candidate {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}

	type bucket struct {
		candidate  Candidate
		firstOrder int
	}

	buckets := make(map[string]*bucket)
	order := 0

	for _, term := range terms {
		key := Normalize(term)
		if key == "" {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				candidate:  Candidate{Term: strings.TrimSpace(term), Normalized: key},
				firstOrder: order,
			}
			buckets[key] = b
			order++
		}
		b.candidate.Count++
	}

	ranked := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, b)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].candidate.Count != ranked[j].candidate.Count {
			return ranked[i].candidate.Count > ranked[j].candidate.Count
		}
		return ranked[i].firstOrder < ranked[j].firstOrder
	})

	if len(ranked) > maxTerms {
		ranked = ranked[:maxTerms]
	}

	result := make([]Candidate, len(ranked))
	for i, b := range ranked {
		result[i] = b.candidate
	}
	return result
}

// truncateSnippet shortens text to at most max characters, cutting on rune
// boundaries so Hangul survives intact
func truncateSnippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// matchTerms returns every pattern match of a single segment. A token
// matched by more than one pattern counts once; repeated occurrences of the
// same term count separately.
func matchTerms(text string) []string {
	type span struct{ start, end int }
	seen := make(map[span]bool)
	var terms []string
	for _, pattern := range termPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			s := span{loc[0], loc[1]}
			if seen[s] {
				continue
			}
			seen[s] = true
			match := strings.TrimSpace(text[loc[0]:loc[1]])
			if match == "" {
				continue
			}
			terms = append(terms, match)
		}
	}
	return terms
}

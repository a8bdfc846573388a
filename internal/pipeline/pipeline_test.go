package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hyunsang-coder/slideglot/internal/cache"
	"github.com/Hyunsang-coder/slideglot/internal/document"
	"github.com/Hyunsang-coder/slideglot/internal/glossary"
	"github.com/Hyunsang-coder/slideglot/internal/testutil"
)

func glossaryResponse() string {
	return `{"glossary": {"Battle Royale": "배틀로얄"}, "style_note": "Marketing tone."}`
}

// translationResponse builds an aligned {"result": ...} payload for n
// segments
func translationResponse(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = `"t"`
	}
	return `{"result": [` + strings.Join(items, ",") + `]}`
}

func TestRun_FullFlow(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	client := testutil.NewMockChatClient()
	client.Queue = []string{glossaryResponse(), translationResponse(segmentCount)}

	p := New(client, nil, Options{SourceLang: "ko", TargetLang: "en"})
	result, err := p.Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.State != StateDone {
		t.Errorf("State = %s, want done", result.State)
	}
	if result.Glossary["battle royale"] != "배틀로얄" {
		t.Errorf("Glossary not built: %v", result.Glossary)
	}
	if result.StyleNote != "Marketing tone." {
		t.Errorf("StyleNote = %q", result.StyleNote)
	}
	if result.Translated == nil {
		t.Fatal("Translated deck missing")
	}
	if got := result.Translated.Slides[0].Title; got != "t" {
		t.Errorf("Title not translated: %q", got)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", result.Warnings)
	}

	// One glossary call plus one translation batch
	if len(client.Calls) != 2 {
		t.Errorf("Expected 2 LLM calls, got %d", len(client.Calls))
	}
}

func TestRun_GlossaryFallbackOnMalformedResponse(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	client := testutil.NewMockChatClient()
	client.Queue = []string{"not json at all", translationResponse(segmentCount)}

	p := New(client, nil, Options{TargetLang: "en"})
	result, err := p.Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Glossary) != 0 {
		t.Errorf("Expected empty glossary after fallback, got %v", result.Glossary)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected a warning for the failed glossary build")
	}
	if result.State != StateDone {
		t.Errorf("Pipeline must finish despite glossary failure, state = %s", result.State)
	}
	// Translation still ran
	if result.Translated.Slides[0].Title != "t" {
		t.Error("Translation skipped after glossary fallback")
	}
}

func TestRun_CacheHitSkipsGlossaryCall(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("cache.Open failed: %v", err)
	}
	defer store.Close()

	// First run populates the cache
	first := testutil.NewMockChatClient()
	first.Queue = []string{glossaryResponse(), translationResponse(segmentCount)}
	if _, err := New(first, store, Options{TargetLang: "en"}).Run(context.Background(), deck); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	// Second run must hit the cache and only call the LLM for translation
	second := testutil.NewMockChatClient()
	second.Queue = []string{translationResponse(segmentCount)}
	result, err := New(second, store, Options{TargetLang: "en"}).Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if !result.CacheHit {
		t.Error("Expected cache hit on second run")
	}
	if result.Glossary["battle royale"] != "배틀로얄" {
		t.Errorf("Cached glossary not used: %v", result.Glossary)
	}
	if len(second.Calls) != 1 {
		t.Errorf("Expected 1 LLM call on cache hit, got %d", len(second.Calls))
	}
}

func TestRun_CacheMissOnDifferentTargetLang(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("cache.Open failed: %v", err)
	}
	defer store.Close()

	first := testutil.NewMockChatClient()
	first.Queue = []string{glossaryResponse(), translationResponse(segmentCount)}
	if _, err := New(first, store, Options{TargetLang: "en"}).Run(context.Background(), deck); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	second := testutil.NewMockChatClient()
	second.Queue = []string{glossaryResponse(), translationResponse(segmentCount)}
	result, err := New(second, store, Options{TargetLang: "ja"}).Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if result.CacheHit {
		t.Error("Glossary cached for 'en' must not be reused for 'ja'")
	}
}

func TestRun_SkipPreflightWithOverride(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	client := testutil.NewMockChatClient()
	client.Queue = []string{translationResponse(segmentCount)}

	override := glossary.Glossary{"배틀로얄": "Battle Royale"}
	p := New(client, nil, Options{TargetLang: "en", Override: override, SkipPreflight: true})

	result, err := p.Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Glossary["배틀로얄"] != "Battle Royale" {
		t.Errorf("Override glossary not used: %v", result.Glossary)
	}
	if len(client.Calls) != 1 {
		t.Errorf("Expected only the translation call, got %d", len(client.Calls))
	}
}

func TestRun_OverrideWinsOverBuiltGlossary(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segmentCount := len(deck.Segments())

	client := testutil.NewMockChatClient()
	client.Queue = []string{
		`{"glossary": {"Battle Royale": "배틀그라운드식 표기"}}`,
		translationResponse(segmentCount),
	}

	override := glossary.Glossary{"battle royale": "배틀로얄"}
	p := New(client, nil, Options{TargetLang: "ko", Override: override})

	result, err := p.Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Glossary["battle royale"] != "배틀로얄" {
		t.Errorf("Override did not win: %v", result.Glossary)
	}
}

func TestRun_FailedBatchKeepsSourceText(t *testing.T) {
	deck := testutil.CreateTestDeck()
	segments := deck.Segments()

	client := testutil.NewMockChatClient()
	// Batch size 4: the first batch fails, the rest succeed
	client.Queue = []string{glossaryResponse(), `broken`}
	for remaining := len(segments) - 4; remaining > 0; remaining -= 4 {
		n := remaining
		if n > 4 {
			n = 4
		}
		client.Queue = append(client.Queue, translationResponse(n))
	}

	p := New(client, nil, Options{TargetLang: "en", BatchSize: 4})
	result, err := p.Run(context.Background(), deck)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := result.Translated.Segments()
	if len(out) != len(segments) {
		t.Fatalf("Output segment count %d != input %d", len(out), len(segments))
	}
	// First batch fell back to source, later segments are translated
	if out[0] != segments[0] {
		t.Errorf("Failed batch segment changed: %q -> %q", segments[0], out[0])
	}
	if out[len(out)-1] != "t" {
		t.Errorf("Sibling batch corrupted: %q", out[len(out)-1])
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected a warning for the failed batch")
	}
}

func TestRun_NilDeck(t *testing.T) {
	p := New(testutil.NewMockChatClient(), nil, Options{})
	if _, err := p.Run(context.Background(), nil); err == nil {
		t.Error("Expected error for nil deck")
	}
}

func TestRun_EmptyDeck(t *testing.T) {
	client := testutil.NewMockChatClient()
	p := New(client, nil, Options{})

	result, err := p.Run(context.Background(), &document.Deck{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.State != StateDone {
		t.Errorf("State = %s, want done", result.State)
	}
	if len(client.Calls) != 0 {
		t.Errorf("Empty deck must not call the LLM, got %d calls", len(client.Calls))
	}
}

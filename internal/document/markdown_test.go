package document

import (
	"strings"
	"testing"
)

func TestMarkdown_BasicRendering(t *testing.T) {
	deck := sampleDeck()

	md := deck.Markdown(DefaultRenderOptions())

	checks := []string{
		"## Slide 1 - 분기 실적",
		"- 매출 성장",
		"  - 신규 유저 증가",
		"| 지표 | 값 |",
		"| --- | --- |",
		"| DAU | 1.2M |",
		"## Slide 2 - 로드맵",
		"[Figure: Chart, title=\"Retention\"]",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown output missing %q\n%s", want, md)
		}
	}

	// Notes are off by default
	if strings.Contains(md, "NOTE:") {
		t.Error("Notes rendered despite Notes=false")
	}
}

func TestMarkdown_NotesEnabled(t *testing.T) {
	deck := sampleDeck()
	opts := DefaultRenderOptions()
	opts.Notes = true

	md := deck.Markdown(opts)
	if !strings.Contains(md, "> NOTE: 발표자 참고 사항") {
		t.Errorf("Expected note blockquote, got:\n%s", md)
	}
}

func TestMarkdown_ChartPolicies(t *testing.T) {
	deck := &Deck{Slides: []Slide{{
		Index:  0,
		Title:  "Charts",
		Blocks: []Block{{Kind: KindFigure, FigureType: FigureChart}},
	}}}

	opts := DefaultRenderOptions()
	opts.Charts = "placeholder"
	if md := deck.Markdown(opts); !strings.Contains(md, "[Figure: Chart]") {
		t.Errorf("Expected chart placeholder, got:\n%s", md)
	}

	opts.Charts = "omit"
	if md := deck.Markdown(opts); strings.Contains(md, "Figure") {
		t.Errorf("Expected chart omitted, got:\n%s", md)
	}
}

func TestMarkdown_EscapesTablePipes(t *testing.T) {
	deck := &Deck{Slides: []Slide{{
		Index: 0,
		Title: "Pipes",
		Blocks: []Block{{
			Kind: KindTable,
			Rows: [][]string{{"a|b"}},
		}},
	}}}

	md := deck.Markdown(DefaultRenderOptions())
	if !strings.Contains(md, `a\|b`) {
		t.Errorf("Pipe not escaped:\n%s", md)
	}
}

func TestMarkdown_EndsWithSingleNewline(t *testing.T) {
	md := sampleDeck().Markdown(DefaultRenderOptions())
	if !strings.HasSuffix(md, "\n") || strings.HasSuffix(md, "\n\n") {
		t.Errorf("Expected exactly one trailing newline, got %q", md[len(md)-3:])
	}
}

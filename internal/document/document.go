package document

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Block kinds as emitted by the slide parser
const (
	KindText   = "text"
	KindTable  = "table"
	KindFigure = "figure"
	KindNote   = "note"
)

// Figure types
const (
	FigureImage = "image"
	FigureChart = "chart"
)

// Block is one content element of a slide. Kind selects which fields are
// meaningful: text blocks carry Lines and IndentLevels, table blocks carry
// Rows and HasHeader, figure blocks carry FigureType and Title, note blocks
// carry Text.
type Block struct {
	Kind         string     `json:"kind"`
	ShapeID      string     `json:"shape_id,omitempty"`
	Lines        []string   `json:"lines,omitempty"`
	IndentLevels []int      `json:"indent_levels,omitempty"`
	Rows         [][]string `json:"rows,omitempty"`
	HasHeader    bool       `json:"has_header,omitempty"`
	FigureType   string     `json:"figure_type,omitempty"`
	Title        string     `json:"title,omitempty"`
	Text         string     `json:"text,omitempty"`
}

// Slide is one slide's extracted content
type Slide struct {
	Index  int     `json:"slide_index"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Deck is the full extracted presentation
type Deck struct {
	Source string  `json:"source,omitempty"`
	Slides []Slide `json:"slides"`
}

// Load reads a deck JSON file produced by the slide parser
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck file: %w", err)
	}

	return &deck, nil
}

// Save writes the deck to a JSON file
func (d *Deck) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}

	return nil
}

// Segments returns every translatable text segment of the deck in document
// order: slide title, then per block its text lines, table cells (row by
// row), and note text. Empty segments are skipped so the list aligns with
// what WithSegments re-inserts.
func (d *Deck) Segments() []string {
	var segments []string
	for _, slide := range d.Slides {
		if strings.TrimSpace(slide.Title) != "" {
			segments = append(segments, slide.Title)
		}
		for _, block := range slide.Blocks {
			switch block.Kind {
			case KindText:
				for _, line := range block.Lines {
					if strings.TrimSpace(line) != "" {
						segments = append(segments, line)
					}
				}
			case KindTable:
				for _, row := range block.Rows {
					for _, cell := range row {
						if strings.TrimSpace(cell) != "" {
							segments = append(segments, cell)
						}
					}
				}
			case KindNote:
				if strings.TrimSpace(block.Text) != "" {
					segments = append(segments, block.Text)
				}
			}
		}
	}
	return segments
}

// WithSegments returns a copy of the deck with every translatable segment
// replaced in order by the given texts. The replacement list must have
// exactly as many entries as Segments() returns.
func (d *Deck) WithSegments(texts []string) (*Deck, error) {
	want := len(d.Segments())
	if len(texts) != want {
		return nil, fmt.Errorf("segment count mismatch: deck has %d, got %d", want, len(texts))
	}

	out := &Deck{Source: d.Source, Slides: make([]Slide, len(d.Slides))}
	next := 0
	take := func() string {
		s := texts[next]
		next++
		return s
	}

	for i, slide := range d.Slides {
		copied := Slide{Index: slide.Index, Title: slide.Title, Blocks: make([]Block, len(slide.Blocks))}
		if strings.TrimSpace(slide.Title) != "" {
			copied.Title = take()
		}
		for j, block := range slide.Blocks {
			nb := block
			switch block.Kind {
			case KindText:
				nb.Lines = make([]string, len(block.Lines))
				for k, line := range block.Lines {
					if strings.TrimSpace(line) != "" {
						nb.Lines[k] = take()
					} else {
						nb.Lines[k] = line
					}
				}
			case KindTable:
				nb.Rows = make([][]string, len(block.Rows))
				for r, row := range block.Rows {
					nb.Rows[r] = make([]string, len(row))
					for c, cell := range row {
						if strings.TrimSpace(cell) != "" {
							nb.Rows[r][c] = take()
						} else {
							nb.Rows[r][c] = cell
						}
					}
				}
			case KindNote:
				if strings.TrimSpace(block.Text) != "" {
					nb.Text = take()
				}
			}
			copied.Blocks[j] = nb
		}
		out.Slides[i] = copied
	}

	return out, nil
}

package document

import (
	"fmt"
	"strings"
)

// RenderOptions controls how figures, charts and notes appear in the
// Markdown output
type RenderOptions struct {
	Figures string // "placeholder" or "omit"
	Charts  string // "labels", "placeholder" or "omit"
	Notes   bool
}

// DefaultRenderOptions returns the rendering defaults used by the CLI
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Figures: "placeholder",
		Charts:  "labels",
		Notes:   false,
	}
}

// Markdown renders the deck as a Markdown document, one "## Slide N" section
// per slide
func (d *Deck) Markdown(opts RenderOptions) string {
	var out []string
	for _, slide := range d.Slides {
		out = append(out, fmt.Sprintf("## Slide %d - %s", slide.Index+1, slide.Title))
		out = append(out, "")
		out = append(out, strings.TrimRight(renderBlocks(slide.Blocks, opts), "\n"))
		out = append(out, "")
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

func renderBlocks(blocks []Block, opts RenderOptions) string {
	var lines []string
	for _, block := range blocks {
		switch block.Kind {
		case KindText:
			for i, line := range block.Lines {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				level := 0
				if i < len(block.IndentLevels) {
					level = block.IndentLevels[i]
				}
				lines = append(lines, strings.Repeat("  ", level)+"- "+line)
			}
			lines = append(lines, "")
		case KindTable:
			if len(block.Rows) == 0 {
				continue
			}
			rows := block.Rows
			if block.HasHeader {
				lines = append(lines, tableRow(rows[0]))
				lines = append(lines, "| "+strings.Join(repeat("---", len(rows[0])), " | ")+" |")
				rows = rows[1:]
			}
			for _, row := range rows {
				lines = append(lines, tableRow(row))
			}
			lines = append(lines, "")
		case KindFigure:
			switch block.FigureType {
			case FigureImage:
				if opts.Figures == "placeholder" {
					title := block.Title
					if title == "" {
						title = "Image"
					}
					lines = append(lines, fmt.Sprintf("[Figure: %s]", title))
				}
			case FigureChart:
				if opts.Charts == "labels" {
					title := block.Title
					if title == "" {
						title = "Chart"
					}
					lines = append(lines, fmt.Sprintf("[Figure: Chart, title=%q]", title))
				} else if opts.Charts == "placeholder" {
					lines = append(lines, "[Figure: Chart]")
				}
			}
			lines = append(lines, "")
		case KindNote:
			if opts.Notes {
				note := strings.TrimSpace(strings.ReplaceAll(block.Text, "\n", " "))
				if note != "" {
					lines = append(lines, "> NOTE: "+note)
					lines = append(lines, "")
				}
			}
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

func tableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

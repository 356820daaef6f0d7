// Package outline turns styled page text into a document title and a
// hierarchical heading outline (H1/H2/H3).
//
// The pipeline is a single forward pass: Normalize flattens extractor
// output into line records, BodySize estimates the paragraph font size,
// DetectTitle assembles the title from the first page, and Detect walks
// the lines once, classifying each with Classify. All functions are pure;
// no line record survives a detection run.
package outline

import "strings"

// FlagBold is the style-flag bit marking bold text.
const FlagBold = 1 << 4

// Run is a contiguous stretch of text on a line sharing one font size,
// font name and style.
type Run struct {
	Text  string
	Size  float64 // font size in points
	Font  string  // font name as reported by the extractor
	Flags int     // style bits, see FlagBold
}

// BBox is a line's position on its page: left, top, right, bottom.
// Coordinates are top-down, so Y0 is the top edge.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// PageLine is one raw extractor-reported line.
type PageLine struct {
	Runs []Run
	BBox BBox
}

// Page is the extractor output for a single page, lines in the
// extractor's native order.
type Page struct {
	Number int // 1-based
	Lines  []PageLine
}

// Line is a normalized line record ready for classification.
type Line struct {
	Text string // concatenated run texts, trimmed, never empty
	Runs []Run  // never empty
	BBox BBox
	Page int
}

// Normalize flattens per-page extractor output into an ordered list of
// line records. Page order and in-page line order are preserved and are
// treated as document reading order downstream; nothing re-sorts them.
// Lines with no runs or whitespace-only text are dropped.
func Normalize(pages []Page) []Line {
	var lines []Line
	for _, pg := range pages {
		for _, pl := range pg.Lines {
			if len(pl.Runs) == 0 {
				continue
			}
			var b strings.Builder
			for _, r := range pl.Runs {
				b.WriteString(r.Text)
			}
			text := strings.TrimSpace(b.String())
			if text == "" {
				continue
			}
			lines = append(lines, Line{Text: text, Runs: pl.Runs, BBox: pl.BBox, Page: pg.Number})
		}
	}
	return lines
}

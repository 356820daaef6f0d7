package source

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/nemeziz1010/pdfoutline/internal/outline"
)

// PDFSource extracts styled text lines from PDF files. The primary
// reader keeps font names, sizes and positions. When it fails and
// FallbackContentStream is set, a cruder content-stream scan recovers
// plain text lines so the numeric-prefix rule can still run.
type PDFSource struct {
	FallbackContentStream bool
}

const (
	// US Letter height, used when the MediaBox is missing or degenerate.
	defaultPageHeight = 792.0
	// Fragments whose baselines sit within this distance share a line.
	rowTolerance = 3.0
	// A gap wider than this fraction of the font size separates words.
	wordGapRatio = 0.3
)

func (s *PDFSource) Extract(r io.Reader, filename string) ([]outline.Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfoutline-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractStyledPages(tmpPath)
	if err != nil {
		if !s.FallbackContentStream {
			return nil, fmt.Errorf("extract pdf text: %w", err)
		}
		fallback, fbErr := extractContentStreamPages(tmpPath)
		if fbErr != nil {
			return nil, fmt.Errorf("extract pdf text: %v (content-stream fallback: %w)", err, fbErr)
		}
		return fallback, nil
	}
	return pages, nil
}

// extractStyledPages reads a PDF with ledongthuc/pdf. The library panics
// on some malformed files; the recover turns that into an error so the
// fallback can take over.
func extractStyledPages(path string) (pages []outline.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages, err = nil, fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		pages = append(pages, outline.Page{
			Number: i,
			Lines:  buildPageLines(content.Text, pageHeight(page)),
		})
	}
	return pages, nil
}

// pageHeight reads the page height from the MediaBox.
func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() != pdflib.Array || box.Len() != 4 {
		return defaultPageHeight
	}
	coords := make([]float64, 4)
	for i := range coords {
		v := box.Index(i)
		switch v.Kind() {
		case pdflib.Integer:
			coords[i] = float64(v.Int64())
		case pdflib.Real:
			coords[i] = v.Float64()
		default:
			return defaultPageHeight
		}
	}
	if h := coords[3] - coords[1]; h > 0 {
		return h
	}
	return defaultPageHeight
}

// buildPageLines groups positioned text fragments into visual lines.
// Fragments are bucketed by baseline Y, rows are ordered top to bottom
// and fragments left to right within each row, which downstream code
// treats as reading order.
func buildPageLines(texts []pdflib.Text, pageH float64) []outline.PageLine {
	type row struct {
		yMin, yMax float64
		texts      []pdflib.Text
	}
	var rows []*row
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		var target *row
		for _, r := range rows {
			if t.Y >= r.yMin-rowTolerance && t.Y <= r.yMax+rowTolerance {
				target = r
				break
			}
		}
		if target == nil {
			rows = append(rows, &row{yMin: t.Y, yMax: t.Y, texts: []pdflib.Text{t}})
			continue
		}
		target.texts = append(target.texts, t)
		if t.Y < target.yMin {
			target.yMin = t.Y
		}
		if t.Y > target.yMax {
			target.yMax = t.Y
		}
	}

	// Native PDF Y grows upward, so top of page first means descending Y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].yMax > rows[j].yMax })

	lines := make([]outline.PageLine, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.texts, func(i, j int) bool { return r.texts[i].X < r.texts[j].X })
		lines = append(lines, rowToLine(r.texts, pageH))
	}
	return lines
}

// rowToLine merges a row of fragments into style runs and computes the
// line's bounding box in top-down coordinates. Consecutive fragments
// sharing a font and size join one run; a horizontal gap wider than
// wordGapRatio of the font size inserts a space. The library reports no
// style flags, so boldness rides entirely on the font name.
func rowToLine(texts []pdflib.Text, pageH float64) outline.PageLine {
	first := texts[0]
	cur := outline.Run{Text: first.S, Size: first.FontSize, Font: first.Font}
	var runs []outline.Run

	x0, x1 := first.X, first.X+first.W
	yMin, yMax, maxSize := first.Y, first.Y, first.FontSize
	prevEnd := first.X + first.W

	for _, t := range texts[1:] {
		if gap := t.X - prevEnd; gap > wordGapRatio*cur.Size {
			cur.Text += " "
		}
		if t.Font != cur.Font || math.Abs(t.FontSize-cur.Size) > 0.01 {
			runs = append(runs, cur)
			cur = outline.Run{Text: t.S, Size: t.FontSize, Font: t.Font}
		} else {
			cur.Text += t.S
		}
		prevEnd = t.X + t.W

		if t.X < x0 {
			x0 = t.X
		}
		if t.X+t.W > x1 {
			x1 = t.X + t.W
		}
		if t.Y < yMin {
			yMin = t.Y
		}
		if t.Y > yMax {
			yMax = t.Y
		}
		if t.FontSize > maxSize {
			maxSize = t.FontSize
		}
	}
	runs = append(runs, cur)

	// Flip to top-down coordinates: the top edge is the tallest glyph
	// above the highest baseline, the bottom edge the lowest baseline.
	return outline.PageLine{
		Runs: runs,
		BBox: outline.BBox{
			X0: x0,
			Y0: pageH - (yMax + maxSize),
			X1: x1,
			Y1: pageH - yMin,
		},
	}
}

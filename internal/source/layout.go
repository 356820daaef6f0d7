package source

import "github.com/nemeziz1010/pdfoutline/internal/outline"

// Synthetic page geometry for sources that carry no physical layout.
// The values mimic a US Letter page with one-inch margins so every
// emitted line lands inside the content area the classifier accepts.
const (
	layoutLeft     = 72.0
	layoutRight    = 540.0
	layoutTop      = 72.0
	layoutMaxY     = 720.0
	layoutLeading  = 6.0
	layoutPageSpan = 612.0

	bodyFontSize    = 12.0
	bodyFontName    = "Helvetica"
	headingFontName = "Helvetica-Bold"
)

// headingSize maps a source heading level (1-based) to a synthetic font
// size. The steps are chosen so the stylistic classifier resolves them
// to H1, H2 and H3 even without a numeric prefix.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	default:
		return 14
	}
}

// pageLayout lays synthetic lines onto letter-sized pages. Each page
// occupies its own horizontal band, so no two lines in a document ever
// share a bounding box and trip the assembler's duplicate guard.
type pageLayout struct {
	pages []outline.Page
	y     float64
}

func newPageLayout() *pageLayout {
	return &pageLayout{
		pages: []outline.Page{{Number: 1}},
		y:     layoutTop,
	}
}

func (l *pageLayout) current() *outline.Page {
	return &l.pages[len(l.pages)-1]
}

// line appends a single-run line to the current page and advances the
// cursor, breaking to a new page when the line would cross the bottom
// margin.
func (l *pageLayout) line(text string, size float64, font string, flags int) {
	if l.y+size > layoutMaxY {
		l.pageBreak()
	}
	band := float64(l.current().Number-1) * layoutPageSpan
	l.current().Lines = append(l.current().Lines, outline.PageLine{
		Runs: []outline.Run{{Text: text, Size: size, Font: font, Flags: flags}},
		BBox: outline.BBox{X0: band + layoutLeft, Y0: l.y, X1: band + layoutRight, Y1: l.y + size},
	})
	l.y += size + layoutLeading
}

// pageBreak starts the next page.
func (l *pageLayout) pageBreak() {
	l.pages = append(l.pages, outline.Page{Number: l.current().Number + 1})
	l.y = layoutTop
}

// result returns the laid-out pages. Pages left empty are kept; the
// normalizer drops lineless pages anyway.
func (l *pageLayout) result() []outline.Page {
	return l.pages
}

package outline

import (
	"math"
	"strings"
)

// DetectTitle assembles the document title from the first page. Every
// first-page line whose first-run size is within cfg.TitleSizeTolerance
// of the page maximum (unrounded, the tolerance only absorbs float noise
// in font metrics) is joined in encounter order with single spaces. The
// result is kept only when non-empty and shorter than cfg.MaxTitleWords
// words; a large accepted block usually signals a misdetected full-page
// heading, so it is rejected and "" is returned.
func DetectTitle(lines []Line, cfg Config) string {
	maxSize, found := 0.0, false
	for _, ln := range lines {
		if ln.Page != 1 || len(ln.Runs) == 0 {
			continue
		}
		if !found || ln.Runs[0].Size > maxSize {
			maxSize, found = ln.Runs[0].Size, true
		}
	}
	if !found {
		return ""
	}

	var parts []string
	for _, ln := range lines {
		if ln.Page != 1 || len(ln.Runs) == 0 {
			continue
		}
		if math.Abs(ln.Runs[0].Size-maxSize) < cfg.TitleSizeTolerance {
			parts = append(parts, ln.Text)
		}
	}

	title := strings.TrimSpace(strings.Join(parts, " "))
	if title == "" || len(strings.Fields(title)) >= cfg.MaxTitleWords {
		return ""
	}
	return title
}

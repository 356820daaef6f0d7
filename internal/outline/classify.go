package outline

import (
	"regexp"
	"strings"
)

// numberedPrefix matches section numbers like "1 ", "2.1 " or "3.1.4 " at
// the start of a line. The trailing whitespace is required so bare
// numbers (page numbers, years) do not match.
var numberedPrefix = regexp.MustCompile(`^\s*(\d+(\.\d+)*)\s+`)

// Classify assigns a heading level to a single line, or reports that the
// line is not a heading. It is evaluated per line with no cross-line
// state beyond the precomputed body size.
//
// A numbered prefix decides the level outright, regardless of style: the
// dot count in the prefix sets the depth ("2.1" is depth two), capped at
// H3. Without a prefix the stylistic rule applies to the first run: the
// line must be visually significant (bold, or strictly larger than
// body*SignificanceRatio), short, and inside the page content area. The
// size ratio then picks H1 or H2, and bold alone falls back to H3.
func Classify(line Line, bodySize float64, cfg Config) (string, bool) {
	if m := numberedPrefix.FindStringSubmatch(line.Text); m != nil {
		switch strings.Count(m[1], ".") + 1 {
		case 1:
			return "H1", true
		case 2:
			return "H2", true
		default:
			return "H3", true
		}
	}

	if len(line.Runs) == 0 {
		return "", false
	}
	run := line.Runs[0]

	bold := strings.Contains(strings.ToLower(run.Font), "bold") || run.Flags&FlagBold != 0
	significant := bold || run.Size > bodySize*cfg.SignificanceRatio
	short := len(strings.Fields(line.Text)) < cfg.MaxHeadingWords
	inContent := line.BBox.Y0 > cfg.ContentTop && line.BBox.Y1 < cfg.ContentBottom
	if !significant || !short || !inContent {
		return "", false
	}

	rel := run.Size / bodySize
	switch {
	case rel > cfg.H1Ratio:
		return "H1", true
	case rel > cfg.H2Ratio:
		return "H2", true
	case bold:
		return "H3", true
	}
	return "", false
}

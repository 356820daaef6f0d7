package outline

import "github.com/nemeziz1010/pdfoutline/internal/doc"

// Detect runs the full pipeline over extractor output: normalize,
// estimate the body size, detect the title, then classify every line in
// document order. A line is skipped when its text is empty, when its
// bounding box was already consumed by an earlier heading (exact
// coordinate equality, no tolerance), or when its text equals the title
// exactly. Only emitted headings consume their bounding box; rejected
// lines never do. The returned outline is never nil.
func Detect(pages []Page, cfg Config) doc.Structure {
	lines := Normalize(pages)
	bodySize := BodySize(lines, cfg)
	title := DetectTitle(lines, cfg)

	consumed := make(map[BBox]struct{})
	headings := make([]doc.Heading, 0)
	for _, ln := range lines {
		if ln.Text == "" {
			continue
		}
		if _, dup := consumed[ln.BBox]; dup {
			continue
		}
		if ln.Text == title {
			continue
		}
		level, ok := Classify(ln, bodySize, cfg)
		if !ok {
			continue
		}
		headings = append(headings, doc.Heading{Level: level, Text: ln.Text, Page: ln.Page})
		consumed[ln.BBox] = struct{}{}
	}
	return doc.Structure{Title: title, Outline: headings}
}

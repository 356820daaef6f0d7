package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/nemeziz1010/pdfoutline/internal/outline"
)

// TextSource reads plain text line by line. Every non-blank line
// becomes one body-sized line, so only the numeric-prefix rule can
// classify headings; numbered plain-text outlines still come through.
type TextSource struct{}

func (s *TextSource) Extract(r io.Reader, filename string) ([]outline.Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	l := newPageLayout()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l.line(line, bodyFontSize, bodyFontName, 0)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l.result(), nil
}

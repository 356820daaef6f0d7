package source

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/nemeziz1010/pdfoutline/internal/outline"
)

// MarkdownSource renders Markdown into synthetic styled pages using
// goldmark. Headings become large bold lines, every other block becomes
// body text, and a thematic break starts a new page.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(r io.Reader, filename string) ([]outline.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(src))

	l := newPageLayout()
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if title != "" {
				l.line(title, headingSize(node.Level), headingFontName, outline.FlagBold)
			}
		case *ast.ThematicBreak:
			l.pageBreak()
		default:
			for _, line := range strings.Split(markdownText(n, src), "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					l.line(line, bodyFontSize, bodyFontName, 0)
				}
			}
		}
	}
	return l.result(), nil
}

// markdownText gets the text content of a goldmark AST node. Leaf
// blocks (code blocks) yield their raw source lines; everything else
// collects inline text recursively.
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(markdownText(c, src))
			if c.Type() == ast.TypeBlock {
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

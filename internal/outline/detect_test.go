package outline

import (
	"testing"

	"github.com/nemeziz1010/pdfoutline/internal/doc"
)

func rawLine(text string, size float64, font string, bbox BBox) PageLine {
	return PageLine{Runs: []Run{{Text: text, Size: size, Font: font}}, BBox: bbox}
}

func TestDetect_TitleAndNumberedOutline(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("Annual Report", 24, "Helvetica-Bold", BBox{72, 72, 300, 96}),
			rawLine("The finance team prepared this summary.", 12, "Times-Roman", BBox{72, 120, 400, 132}),
			rawLine("It covers the full fiscal year.", 12, "Times-Roman", BBox{72, 140, 400, 152}),
			rawLine("1 Introduction", 12, "Times-Roman", BBox{72, 180, 200, 192}),
		}},
		{Number: 2, Lines: []PageLine{
			rawLine("1.1 Revenue", 12, "Times-Roman", BBox{72, 72, 200, 84}),
			rawLine("Plain paragraph text continues here.", 12, "Times-Roman", BBox{72, 100, 400, 112}),
		}},
	}

	result := Detect(pages, DefaultConfig())
	if result.Title != "Annual Report" {
		t.Errorf("expected title %q, got %q", "Annual Report", result.Title)
	}
	want := []doc.Heading{
		{Level: "H1", Text: "1 Introduction", Page: 1},
		{Level: "H2", Text: "1.1 Revenue", Page: 2},
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(result.Outline), result.Outline)
	}
	for i, w := range want {
		if result.Outline[i] != w {
			t.Errorf("heading %d: expected %+v, got %+v", i, w, result.Outline[i])
		}
	}
}

func TestDetect_TitleTextNeverBecomesHeading(t *testing.T) {
	// The title line itself classifies as H1 by size; the repeated
	// running header on page 2 matches the title text exactly. Both
	// must stay out of the outline.
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("User Manual", 24, "Helvetica", BBox{72, 72, 250, 96}),
			rawLine("first body paragraph", 12, "Times-Roman", BBox{72, 120, 400, 132}),
			rawLine("second body paragraph", 12, "Times-Roman", BBox{72, 140, 400, 152}),
		}},
		{Number: 2, Lines: []PageLine{
			rawLine("User Manual", 14, "Helvetica-Bold", BBox{72, 60, 200, 74}),
			rawLine("Safety Notes", 24, "Helvetica", BBox{72, 100, 250, 124}),
		}},
	}

	result := Detect(pages, DefaultConfig())
	if result.Title != "User Manual" {
		t.Fatalf("expected title %q, got %q", "User Manual", result.Title)
	}
	if len(result.Outline) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(result.Outline), result.Outline)
	}
	if got := result.Outline[0]; got.Level != "H1" || got.Text != "Safety Notes" || got.Page != 2 {
		t.Errorf("expected H1 %q on page 2, got %+v", "Safety Notes", got)
	}
}

func TestDetect_ConsumedBBoxSkipsDuplicates(t *testing.T) {
	box := BBox{72, 200, 300, 212}
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("a first body paragraph with enough words to push", 12, "Times-Roman", BBox{72, 100, 400, 112}),
			rawLine("the page one join past the title word limit", 12, "Times-Roman", BBox{72, 120, 400, 132}),
			rawLine("2 Methods", 12, "Times-Roman", box),
			rawLine("2 Methods", 12, "Times-Roman", box),
			rawLine("3 Results", 12, "Times-Roman", BBox{72, 240, 300, 252}),
		}},
	}

	result := Detect(pages, DefaultConfig())
	if result.Title != "" {
		t.Errorf("expected no title for a uniform size page, got %q", result.Title)
	}
	want := []doc.Heading{
		{Level: "H1", Text: "2 Methods", Page: 1},
		{Level: "H1", Text: "3 Results", Page: 1},
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(result.Outline), result.Outline)
	}
	for i, w := range want {
		if result.Outline[i] != w {
			t.Errorf("heading %d: expected %+v, got %+v", i, w, result.Outline[i])
		}
	}
}

func TestDetect_RejectedLinesDoNotConsume(t *testing.T) {
	// A body line shares its box with a later heading; only emitted
	// headings mark a box as used.
	box := BBox{72, 200, 300, 212}
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("a plain paragraph that shares its box with the heading below and keeps the join over the limit", 12, "Times-Roman", box),
			rawLine("4 Discussion", 12, "Times-Roman", box),
		}},
	}

	result := Detect(pages, DefaultConfig())
	if len(result.Outline) != 1 || result.Outline[0].Text != "4 Discussion" {
		t.Fatalf("expected heading after rejected line on same box, got %+v", result.Outline)
	}
}

func TestDetect_StyledHeadingsUseBodyRatio(t *testing.T) {
	// Body size resolves to 12; 20pt is H1 territory, 16pt is H2,
	// bold 12pt falls back to H3.
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("body one filling the page", 12, "Times-Roman", BBox{72, 100, 400, 112}),
			rawLine("body two filling the page", 12, "Times-Roman", BBox{72, 120, 400, 132}),
			rawLine("body three filling the page", 12, "Times-Roman", BBox{72, 140, 400, 152}),
			rawLine("Architecture", 20, "Helvetica", BBox{72, 180, 300, 200}),
			rawLine("Components", 16, "Helvetica", BBox{72, 220, 300, 236}),
			rawLine("Wiring Notes", 12, "Helvetica-Bold", BBox{72, 260, 300, 272}),
		}},
	}

	result := Detect(pages, DefaultConfig())
	if result.Title != "Architecture" {
		t.Errorf("expected largest line as title, got %q", result.Title)
	}
	want := []doc.Heading{
		{Level: "H2", Text: "Components", Page: 1},
		{Level: "H3", Text: "Wiring Notes", Page: 1},
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(result.Outline), result.Outline)
	}
	for i, w := range want {
		if result.Outline[i] != w {
			t.Errorf("heading %d: expected %+v, got %+v", i, w, result.Outline[i])
		}
	}
}

func TestDetect_EmptyDocument(t *testing.T) {
	result := Detect(nil, DefaultConfig())
	if result.Title != "" {
		t.Errorf("expected no title, got %q", result.Title)
	}
	if result.Outline == nil {
		t.Fatal("expected non-nil outline")
	}
	if len(result.Outline) != 0 {
		t.Errorf("expected empty outline, got %+v", result.Outline)
	}
}

func TestDetect_HeaderFooterLinesIgnored(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []PageLine{
			rawLine("Quarterly Digest", 30, "Helvetica-Bold", BBox{72, 40, 300, 70}),
			rawLine("body paragraph number one", 12, "Times-Roman", BBox{72, 120, 400, 132}),
			rawLine("body paragraph number two", 12, "Times-Roman", BBox{72, 140, 400, 152}),
			rawLine("Confidential", 14, "Helvetica-Bold", BBox{72, 758, 200, 772}),
		}},
	}

	result := Detect(pages, DefaultConfig())
	// Title detection has no content-area rule, so the page header
	// still wins the title.
	if result.Title != "Quarterly Digest" {
		t.Errorf("expected title %q, got %q", "Quarterly Digest", result.Title)
	}
	if len(result.Outline) != 0 {
		t.Errorf("expected header and footer lines excluded, got %+v", result.Outline)
	}
}

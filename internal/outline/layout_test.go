package outline

import (
	"testing"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/doc"
)

// textLine builds a single-span line at the given vertical position.
func textLine(text string, size int, bold bool, y float64) doc.Line {
	box := doc.Rect{X0: 72, Y0: y, X1: 72 + 8*float64(len(text)), Y1: y + float64(size)}
	return doc.Line{
		Spans: []doc.Span{{
			Text:    text,
			Font:    "Helvetica",
			Family:  "helvetica",
			Size:    size,
			RawSize: float64(size),
			Bold:    bold,
			BBox:    box,
		}},
		BBox: box,
	}
}

// blockOf wraps lines into one block with a union bounding box.
func blockOf(lines ...doc.Line) doc.Block {
	b := doc.Block{Lines: lines}
	for i, ln := range lines {
		if i == 0 {
			b.BBox = ln.BBox
		} else {
			b.BBox = b.BBox.Union(ln.BBox)
		}
	}
	return b
}

// paragraph builds a block of body text lines at size 12, one line
// every 14 points starting at startY.
func paragraph(startY float64, lines int) doc.Block {
	ls := make([]doc.Line, 0, lines)
	for i := 0; i < lines; i++ {
		ls = append(ls, textLine("the quick brown fox jumps over the lazy dog", 12, false, startY+14*float64(i)))
	}
	return blockOf(ls...)
}

func pageOf(num int, blocks ...doc.Block) doc.Page {
	return doc.Page{Number: num, Width: 612, Height: 792, Blocks: blocks}
}

func docOf(pages ...doc.Page) *doc.Document {
	return &doc.Document{Path: "test.pdf", Pages: pages}
}

func TestBodyFontSize_ModeOfLineSizes(t *testing.T) {
	d := docOf(pageOf(0,
		paragraph(100, 5),
		blockOf(textLine("a caption", 10, false, 200), textLine("another caption", 10, false, 214)),
		blockOf(textLine("Big Heading", 24, true, 50)),
	))

	size, ok := bodyFontSize(d, newTableIndex(d))
	if !ok {
		t.Fatal("expected a body size")
	}
	if size != 12 {
		t.Errorf("expected body size 12, got %d", size)
	}
}

func TestBodyFontSize_TieBreaksToSmaller(t *testing.T) {
	d := docOf(pageOf(0,
		paragraph(100, 3),
		blockOf(
			textLine("small one", 10, false, 200),
			textLine("small two", 10, false, 212),
			textLine("small three", 10, false, 224),
		),
	))

	size, ok := bodyFontSize(d, newTableIndex(d))
	if !ok {
		t.Fatal("expected a body size")
	}
	if size != 10 {
		t.Errorf("expected tie to resolve to 10, got %d", size)
	}
}

func TestBodyFontSize_NoLines(t *testing.T) {
	d := docOf(pageOf(0))
	if _, ok := bodyFontSize(d, newTableIndex(d)); ok {
		t.Error("expected no body size for a page without lines")
	}

	empty := &doc.Document{Path: "empty.pdf"}
	if _, ok := bodyFontSize(empty, newTableIndex(empty)); ok {
		t.Error("expected no body size for a document without pages")
	}
}

func TestBodyFontSize_SkipsTableLines(t *testing.T) {
	cellA := textLine("alpha", 10, false, 100)
	cellB := textLine("beta", 10, false, 114)
	body := textLine("one ordinary line of text", 12, false, 300)

	page := pageOf(0, blockOf(cellA), blockOf(cellB), blockOf(body))
	page.Tables = []doc.Rect{cellA.BBox.Union(cellB.BBox).Expand(2)}
	d := docOf(page)

	size, ok := bodyFontSize(d, newTableIndex(d))
	if !ok {
		t.Fatal("expected a body size")
	}
	// The two size-10 table cells outnumber the single size-12 body
	// line, but they must not be counted.
	if size != 12 {
		t.Errorf("expected body size 12, got %d", size)
	}
}

func TestFromLayout_NoText(t *testing.T) {
	d := docOf(pageOf(0))
	entries := FromLayout(d, config.DefaultRules())
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestFromLayout_SingleHeading(t *testing.T) {
	d := docOf(pageOf(0,
		blockOf(textLine("1. Introduction", 24, true, 50)),
		paragraph(100, 4),
	))

	entries := FromLayout(d, config.DefaultRules())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != "H1" {
		t.Errorf("expected level H1, got %q", e.Level)
	}
	if e.Text != "Introduction" {
		t.Errorf("expected text %q, got %q", "Introduction", e.Text)
	}
	if e.Page != 0 {
		t.Errorf("expected page 0, got %d", e.Page)
	}
}

func TestFromLayout_TableLineNeverCandidate(t *testing.T) {
	tableLine := textLine("Totals", 24, true, 200)

	page := pageOf(0,
		paragraph(100, 4),
		blockOf(tableLine),
	)
	page.Tables = []doc.Rect{tableLine.BBox.Expand(5)}
	d := docOf(page)

	entries := FromLayout(d, config.DefaultRules())
	// Large and bold, but inside a table region.
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestFromLayout_LongBlockRejected(t *testing.T) {
	d := docOf(pageOf(0,
		paragraph(200, 4),
		blockOf(
			textLine("Pulled quote spanning", 24, false, 50),
			textLine("three separate lines", 24, false, 78),
			textLine("of large text", 24, false, 106),
		),
	))

	entries := FromLayout(d, config.DefaultRules())
	if len(entries) != 0 {
		t.Errorf("expected no entries from a 3-line block, got %v", entries)
	}
}

func TestFromLayout_TwoLineBlockAccepted(t *testing.T) {
	d := docOf(pageOf(0,
		paragraph(200, 4),
		blockOf(
			textLine("Heading Over", 24, true, 50),
			textLine("Two Lines", 24, true, 78),
		),
	))

	entries := FromLayout(d, config.DefaultRules())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestFromLayout_WordCountBounds(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinHeadingWords = 2
	rules.MaxHeadingWords = 3

	d := docOf(pageOf(0,
		blockOf(textLine("Overview", 24, true, 40)),
		blockOf(textLine("Results Summary", 24, true, 80)),
		blockOf(textLine("Detailed Results Summary", 24, true, 120)),
		blockOf(textLine("Very Detailed Results Summary", 24, true, 160)),
		paragraph(300, 4),
	))

	entries := FromLayout(d, rules)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
	// Both bounds are inclusive: exactly 2 and exactly 3 words pass,
	// one fewer or one more does not.
	if entries[0].Text != "Results Summary" {
		t.Errorf("expected %q, got %q", "Results Summary", entries[0].Text)
	}
	if entries[1].Text != "Detailed Results Summary" {
		t.Errorf("expected %q, got %q", "Detailed Results Summary", entries[1].Text)
	}
}

func TestFromLayout_SizeMustExceedBody(t *testing.T) {
	d := docOf(pageOf(0,
		blockOf(textLine("Same Size Line", 12, true, 40)),
		blockOf(textLine("Slightly Larger Line", 13, false, 80)),
		paragraph(200, 5),
	))

	entries := FromLayout(d, config.DefaultRules())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(entries), entries)
	}
	// Equal to body size is rejected; one point above passes.
	if entries[0].Text != "Slightly Larger Line" {
		t.Errorf("expected the size-13 line, got %q", entries[0].Text)
	}
}

func TestIsHeading_EmptyLine(t *testing.T) {
	rules := config.DefaultRules()
	blank := doc.Line{}
	if _, _, ok := isHeading(&blank, &doc.Block{Lines: []doc.Line{blank}}, 12, rules); ok {
		t.Error("expected a spanless line to be rejected")
	}

	ws := textLine("   ", 24, false, 40)
	if _, _, ok := isHeading(&ws, &doc.Block{Lines: []doc.Line{ws}}, 12, rules); ok {
		t.Error("expected a whitespace-only line to be rejected")
	}
}

func TestIsHeading_FirstSpanDecidesStyle(t *testing.T) {
	big := textLine("Mixed", 24, true, 40)
	small := textLine("style line", 12, false, 40)
	mixed := doc.Line{
		Spans: []doc.Span{big.Spans[0], small.Spans[0]},
		BBox:  big.BBox.Union(small.BBox),
	}
	block := doc.Block{Lines: []doc.Line{mixed}, BBox: mixed.BBox}

	text, style, ok := isHeading(&mixed, &block, 12, config.DefaultRules())
	if !ok {
		t.Fatal("expected the mixed line to pass on its leading span")
	}
	if text != "Mixed style line" {
		t.Errorf("expected joined text %q, got %q", "Mixed style line", text)
	}
	if style.Size != 24 || !style.Bold {
		t.Errorf("expected the leading span's style, got %+v", style)
	}
}

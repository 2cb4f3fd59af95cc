package doc

import "strings"

// Span is a maximal run of text drawn in a single font.
type Span struct {
	Text    string
	Font    string  // font name as it appears in the PDF resource dictionary
	Family  string  // normalized: subset prefix stripped, lowercased
	Size    int     // point size rounded to the nearest integer
	RawSize float64 // size before rounding
	Bold    bool
	BBox    Rect
}

// StyleKey identifies a visual text style. Two spans with equal keys
// look the same to a reader, whatever fonts produced them.
type StyleKey struct {
	Size   int
	Family string
	Bold   bool
}

// Style returns the span's style key.
func (s *Span) Style() StyleKey {
	return StyleKey{Size: s.Size, Family: s.Family, Bold: s.Bold}
}

// Line is a horizontal row of spans in left-to-right order.
type Line struct {
	Spans []Span
	BBox  Rect
}

// Text returns the line's normalized text: span texts joined with
// single spaces, whitespace collapsed, trimmed.
func (l *Line) Text() string {
	if len(l.Spans) == 0 {
		return ""
	}
	parts := make([]string, 0, len(l.Spans))
	for i := range l.Spans {
		parts = append(parts, l.Spans[i].Text)
	}
	return CleanText(strings.Join(parts, " "))
}

// FirstSpan returns the leading span, or nil for an empty line.
func (l *Line) FirstSpan() *Span {
	if len(l.Spans) == 0 {
		return nil
	}
	return &l.Spans[0]
}

// WordCount counts whitespace-separated words in the normalized text.
func (l *Line) WordCount() int {
	return len(strings.Fields(l.Text()))
}

// Block is a group of vertically adjacent lines forming one visual
// paragraph.
type Block struct {
	Lines []Line
	BBox  Rect
}

// LineCount returns the number of lines in the block.
func (b *Block) LineCount() int {
	return len(b.Lines)
}

// Page holds the assembled layout of a single page.
type Page struct {
	Number int // zero-based
	Width  float64
	Height float64
	Blocks []Block
	Tables []Rect // detected table regions
}

// Metadata is the document information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// TOCEntry is one entry of an embedded document outline (bookmarks).
type TOCEntry struct {
	Level int    // nesting depth, 1-based
	Title string
	Page  int // 1-based target page, 0 when unresolved
}

// Document is the parsed form of one PDF, produced by the parser and
// consumed read-only by the extraction core.
type Document struct {
	Path  string
	Pages []Page
	Meta  Metadata
	TOC   []TOCEntry
}

// CleanText collapses every run of whitespace to a single space and
// trims the ends. Applying it twice changes nothing.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/doclift/doclift/internal/doc"
)

// MarkdownWriter renders outlines as a Markdown document. Pages are
// shown one-based here; the JSON artifact keeps them zero-based.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter writing to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the outline and returns the bytes written.
func (w *MarkdownWriter) Write(o *doc.Outline) (int, error) {
	md := markdown.NewMarkdown(w.output)

	title := o.Title
	if title == "" {
		title = "Untitled Document"
	}
	md.H1(title)
	md.PlainText("")

	if len(o.Entries) == 0 {
		md.PlainText("No headings were detected.")
		return len(md.String()), md.Build()
	}

	md.PlainTextf("%d headings, deepest level %s.", len(o.Entries), deepestLevel(o.Entries))
	md.PlainText("")

	rows := make([][]string, len(o.Entries))
	for i, e := range o.Entries {
		rows[i] = []string{e.Level, e.Text, strconv.Itoa(e.Page + 1)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Level", "Heading", "Page"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

// deepestLevel returns the deepest heading tag present in the entries.
func deepestLevel(entries []doc.OutlineEntry) string {
	deepest := 1
	for _, e := range entries {
		if n, err := strconv.Atoi(strings.TrimPrefix(e.Level, "H")); err == nil && n > deepest {
			deepest = n
		}
	}
	return doc.HeadingLevel(deepest)
}

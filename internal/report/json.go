package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/doclift/doclift/internal/doc"
)

// JSONWriter renders outlines as JSON. The default form is the
// artifact format: four-space indentation and a trailing newline. An
// empty outline renders as an empty array, never null.
type JSONWriter struct {
	baseWriter
	indent string
}

// JSONOption configures a JSONWriter.
type JSONOption func(*JSONWriter)

// WithCompact switches off indentation for wire use.
func WithCompact() JSONOption {
	return func(w *JSONWriter) { w.indent = "" }
}

// NewJSONWriter creates a JSONWriter writing to output.
func NewJSONWriter(output io.Writer, opts ...JSONOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output), indent: "    "}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders the outline and returns the bytes written. Heading
// text passes through unescaped, so characters like & and < survive
// as written.
func (w *JSONWriter) Write(o *doc.Outline) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	if err := enc.Encode(o); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

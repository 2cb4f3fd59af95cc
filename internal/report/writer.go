// Package report renders extracted outlines to their output formats:
// the canonical JSON artifact and a human-readable Markdown companion.
package report

import (
	"io"

	"github.com/doclift/doclift/internal/doc"
)

// Writer renders an outline to some destination format.
type Writer interface {
	// Write renders the outline and returns the number of bytes
	// written.
	Write(o *doc.Outline) (int, error)
}

// baseWriter holds the shared output destination.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

package parser

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/doclift/doclift/internal/doc"
	"github.com/doclift/doclift/internal/tables"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser reads PDF files. The geometry pass (ledongthuc/pdf) is
// required; the structure pass (pdfcpu) is best-effort and only costs
// the embedded outline and metadata when it fails.
type PDFParser struct {
	Log *slog.Logger // optional; structure-pass warnings go here
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "doclift-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	d := &doc.Document{Path: filename}
	if err := readLayout(tmpPath, d); err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if err := readStructure(tmpPath, d); err != nil && p.Log != nil {
		p.Log.Warn("pdf structure pass failed", "file", filename, "error", err)
	}
	return d, nil
}

// readLayout runs the geometry pass: spans, lines, blocks and table
// regions for every page. Page numbering is preserved even for pages
// that yield no text.
func readLayout(path string, d *doc.Document) error {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		w, h := pageSize(page)
		p := doc.Page{Number: i - 1, Width: w, Height: h}
		if !page.V.IsNull() {
			if texts, err := pageTexts(page); err == nil {
				p.Blocks = assemblePage(texts, h)
				p.Tables = tables.Detect(&p)
			}
		}
		d.Pages = append(d.Pages, p)
	}
	return nil
}

// pageTexts pulls the raw text fragments off a page. Content panics on
// malformed streams, so a broken page degrades to empty instead of
// taking the whole document down.
func pageTexts(page pdflib.Page) (texts []pdflib.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// pageSize resolves the page MediaBox, walking up the page tree for
// inherited boxes. Falls back to US Letter.
func pageSize(page pdflib.Page) (w, h float64) {
	v := page.V
	for depth := 0; depth < 8; depth++ {
		if v.IsNull() {
			break
		}
		if mb := v.Key("MediaBox"); mb.Kind() == pdflib.Array && mb.Len() == 4 {
			x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
			x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
			if x1 > x0 && y1 > y0 {
				return x1 - x0, y1 - y0
			}
			break
		}
		v = v.Key("Parent")
	}
	return 612, 792
}

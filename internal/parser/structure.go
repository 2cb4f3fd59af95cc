package parser

import (
	"fmt"
	"os"

	"github.com/doclift/doclift/internal/doc"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// readStructure runs the pdfcpu pass: document metadata and the
// embedded outline. A failure leaves the document without either,
// which only means the layout pipeline decides the outline.
func readStructure(path string, d *doc.Document) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}

	d.Meta = doc.Metadata{
		Title:    ctx.Title,
		Author:   ctx.Author,
		Subject:  ctx.Subject,
		Creator:  ctx.Creator,
		Producer: ctx.Producer,
	}

	// A bookmarks error just means there is no usable embedded outline.
	if bms, err := pdfcpu.Bookmarks(ctx); err == nil {
		d.TOC = flattenBookmarks(bms, 1, nil)
	}
	return nil
}

// flattenBookmarks walks the bookmark tree depth-first, recording the
// nesting depth as the entry level and the 1-based landing page.
func flattenBookmarks(bms []pdfcpu.Bookmark, depth int, out []doc.TOCEntry) []doc.TOCEntry {
	for _, b := range bms {
		out = append(out, doc.TOCEntry{
			Level: depth,
			Title: b.Title,
			Page:  b.PageFrom,
		})
		if len(b.Kids) > 0 {
			out = flattenBookmarks(b.Kids, depth+1, out)
		}
	}
	return out
}

package outline

import (
	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/doc"
)

// candidate is a line that passed every heading filter but has not yet
// been assigned a level.
type candidate struct {
	text  string
	style doc.StyleKey
	page  int
	y     float64
}

// FromLayout reconstructs an outline from visual typography alone.
// Three passes over the document: profile font sizes to find the body
// text size, collect heading candidates, then rank the candidate
// styles and assemble the result in reading order.
func FromLayout(d *doc.Document, rules config.Rules) []doc.OutlineEntry {
	tables := newTableIndex(d)

	bodySize, ok := bodyFontSize(d, tables)
	if !ok {
		return []doc.OutlineEntry{}
	}

	cands := collectCandidates(d, tables, bodySize, rules)
	if len(cands) == 0 {
		return []doc.OutlineEntry{}
	}

	levels := rankStyles(candidateStyles(cands), rules.MaxHeadingLevels)
	return assemble(cands, levels, rules)
}

// tableIndex answers whether a bounding box falls inside a detected
// table region. Table counts per page are small, so membership is a
// linear scan.
type tableIndex struct {
	byPage map[int][]doc.Rect
}

func newTableIndex(d *doc.Document) *tableIndex {
	idx := &tableIndex{byPage: make(map[int][]doc.Rect)}
	for _, p := range d.Pages {
		if len(p.Tables) > 0 {
			idx.byPage[p.Number] = p.Tables
		}
	}
	return idx
}

// covered reports whether box lies fully inside any table region on
// the given page.
func (t *tableIndex) covered(page int, box doc.Rect) bool {
	for _, r := range t.byPage[page] {
		if box.In(r) {
			return true
		}
	}
	return false
}

// bodyFontSize finds the dominant rounded font size across all lines
// outside table regions. Paragraph text dominates line counts, so the
// mode is a stable baseline that a handful of large headings cannot
// shift. Ties go to the smaller size. The second return is false when
// the document has no usable lines at all.
func bodyFontSize(d *doc.Document, tables *tableIndex) (int, bool) {
	counts := make(map[int]int)
	for _, page := range d.Pages {
		for bi := range page.Blocks {
			block := &page.Blocks[bi]
			for li := range block.Lines {
				line := &block.Lines[li]
				if tables.covered(page.Number, line.BBox) {
					continue
				}
				if span := line.FirstSpan(); span != nil {
					counts[span.Size]++
				}
			}
		}
	}
	if len(counts) == 0 {
		return 0, false
	}

	best, bestCount := 0, 0
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best, bestCount = size, n
		}
	}
	return best, true
}

// collectCandidates runs the heading filters over every line outside
// table regions, in page order.
func collectCandidates(d *doc.Document, tables *tableIndex, bodySize int, rules config.Rules) []candidate {
	var cands []candidate
	for _, page := range d.Pages {
		for bi := range page.Blocks {
			block := &page.Blocks[bi]
			for li := range block.Lines {
				line := &block.Lines[li]
				if tables.covered(page.Number, line.BBox) {
					continue
				}
				text, style, ok := isHeading(line, block, bodySize, rules)
				if !ok {
					continue
				}
				cands = append(cands, candidate{
					text:  text,
					style: style,
					page:  page.Number,
					y:     line.BBox.Y0,
				})
			}
		}
	}
	return cands
}

// candidateStyles returns the distinct styles used by the candidates,
// in first-seen order.
func candidateStyles(cands []candidate) []doc.StyleKey {
	seen := make(map[doc.StyleKey]struct{}, len(cands))
	styles := make([]doc.StyleKey, 0, len(cands))
	for _, c := range cands {
		if _, ok := seen[c.style]; ok {
			continue
		}
		seen[c.style] = struct{}{}
		styles = append(styles, c.style)
	}
	return styles
}

// isHeading applies the rejecting filters in order; the first failure
// wins. On success it returns the line's normalized text and style.
func isHeading(line *doc.Line, block *doc.Block, bodySize int, rules config.Rules) (string, doc.StyleKey, bool) {
	span := line.FirstSpan()
	if span == nil {
		return "", doc.StyleKey{}, false
	}
	text := line.Text()
	if text == "" {
		return "", doc.StyleKey{}, false
	}

	// The leading span decides the line's style. Mixed-style lines are
	// judged by how they open.
	style := span.Style()

	// Headings are set larger than body text.
	if style.Size <= bodySize {
		return "", doc.StyleKey{}, false
	}

	// Headings occupy short, isolated blocks. Anything longer reads as
	// a paragraph.
	if block.LineCount() > 2 {
		return "", doc.StyleKey{}, false
	}

	words := line.WordCount()
	if words < rules.MinHeadingWords || words > rules.MaxHeadingWords {
		return "", doc.StyleKey{}, false
	}

	return text, style, true
}

package parser

import (
	"sort"

	"github.com/doclift/doclift/internal/doc"
	pdflib "github.com/ledongthuc/pdf"
)

// Assembly thresholds, all relative to font or line size.
const (
	rowTolerance = 0.5 // of avg fragment height: fragments share a row
	spaceGap     = 0.2 // of span size: gap inserts a space
	spanBreak    = 2.0 // of span size: gap starts a new span (column)
	blockGap     = 0.7 // of avg line height: lines share a block
)

// fragment pairs a raw content-stream text item with its box in
// top-origin page coordinates.
type fragment struct {
	t   pdflib.Text
	box doc.Rect
}

// fragmentRect converts a text item from PDF bottom-origin baseline
// coordinates into a top-origin box. The box spans one font size above
// the baseline, which is close enough for row grouping and containment.
func fragmentRect(t pdflib.Text, pageHeight float64) doc.Rect {
	return doc.Rect{
		X0: t.X,
		Y0: pageHeight - t.Y - t.FontSize,
		X1: t.X + t.W,
		Y1: pageHeight - t.Y,
	}
}

// assemblePage turns raw content-stream fragments into blocks of lines
// of spans, ordered top-to-bottom and left-to-right.
func assemblePage(texts []pdflib.Text, pageHeight float64) []doc.Block {
	frags := make([]fragment, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		frags = append(frags, fragment{t: t, box: fragmentRect(t, pageHeight)})
	}
	if len(frags) == 0 {
		return nil
	}

	rows := groupRows(frags)
	lines := make([]doc.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, mergeRow(row))
	}
	return groupBlocks(lines)
}

// groupRows buckets fragments into visual rows by baseline proximity.
// Fragments on one row share a baseline within half the average
// fragment height, whatever jitter the writer produced.
func groupRows(frags []fragment) [][]fragment {
	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].box.Y1 != sorted[j].box.Y1 {
			return sorted[i].box.Y1 < sorted[j].box.Y1
		}
		return sorted[i].box.X0 < sorted[j].box.X0
	})

	var rows [][]fragment
	var row []fragment
	for _, f := range sorted {
		if len(row) > 0 {
			anchor := row[0]
			tol := (anchor.box.Height() + f.box.Height()) / 2 * rowTolerance
			if f.box.Y1-anchor.box.Y1 > tol {
				rows = append(rows, row)
				row = nil
			}
		}
		row = append(row, f)
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	for i := range rows {
		sort.SliceStable(rows[i], func(a, b int) bool {
			return rows[i][a].box.X0 < rows[i][b].box.X0
		})
	}
	return rows
}

// mergeRow fuses a row's fragments into spans. A span continues while
// the font and rounded size hold and the horizontal gap stays below the
// column threshold; word-sized gaps become spaces.
func mergeRow(row []fragment) doc.Line {
	var line doc.Line

	var (
		text string
		font string
		raw  float64
		box  doc.Rect
		open bool
	)

	finish := func() {
		if !open {
			return
		}
		family := normalizeFamily(font)
		line.Spans = append(line.Spans, doc.Span{
			Text:    text,
			Font:    font,
			Family:  family,
			Size:    roundSize(raw),
			RawSize: raw,
			Bold:    detectBold(family),
			BBox:    box,
		})
		open = false
	}

	for _, f := range row {
		if !open {
			text, font, raw, box, open = f.t.S, f.t.Font, f.t.FontSize, f.box, true
			continue
		}

		gap := f.box.X0 - box.X1
		size := raw
		if f.t.FontSize > size {
			size = f.t.FontSize
		}
		sameStyle := f.t.Font == font && roundSize(f.t.FontSize) == roundSize(raw)

		if !sameStyle || gap > spanBreak*size {
			finish()
			text, font, raw, box, open = f.t.S, f.t.Font, f.t.FontSize, f.box, true
			continue
		}

		if gap > spaceGap*size {
			text += " "
		}
		text += f.t.S
		box = box.Union(f.box)
	}
	finish()

	for i, s := range line.Spans {
		if i == 0 {
			line.BBox = s.BBox
		} else {
			line.BBox = line.BBox.Union(s.BBox)
		}
	}
	return line
}

// groupBlocks joins vertically adjacent lines into blocks. A gap wider
// than blockGap times the average line height ends the block.
func groupBlocks(lines []doc.Line) []doc.Block {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].BBox.Y0 < lines[j].BBox.Y0
	})

	var blocks []doc.Block
	var cur doc.Block

	flush := func() {
		if len(cur.Lines) == 0 {
			return
		}
		cur.BBox = cur.Lines[0].BBox
		for _, l := range cur.Lines[1:] {
			cur.BBox = cur.BBox.Union(l.BBox)
		}
		blocks = append(blocks, cur)
		cur = doc.Block{}
	}

	for _, l := range lines {
		if len(cur.Lines) > 0 {
			prev := cur.Lines[len(cur.Lines)-1]
			gap := l.BBox.Y0 - prev.BBox.Y1
			avgHeight := (prev.BBox.Height() + l.BBox.Height()) / 2
			if gap > blockGap*avgHeight {
				flush()
			}
		}
		cur.Lines = append(cur.Lines, l)
	}
	flush()

	return blocks
}

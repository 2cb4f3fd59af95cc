// Package tables detects rectangular table regions on assembled pages.
// The outline core uses the regions to keep tabular cell text out of
// heading analysis.
package tables

import (
	"sort"

	"github.com/doclift/doclift/internal/doc"
)

// Config controls region detection.
type Config struct {
	// MinRows is the minimum number of adjacent aligned rows.
	MinRows int

	// MinCols is the minimum number of spans per row, and the minimum
	// number of aligned column starts between adjacent rows.
	MinCols int

	// AlignTolerance is the X distance (points) within which two span
	// starts count as the same column.
	AlignTolerance float64

	// MaxRowGap is the largest vertical gap between adjacent rows,
	// as a multiple of the average row height.
	MaxRowGap float64

	// Pad expands each detected region so that member lines test as
	// fully contained despite float jitter.
	Pad float64
}

// DefaultConfig returns the detection thresholds used in production.
func DefaultConfig() Config {
	return Config{
		MinRows:        2,
		MinCols:        2,
		AlignTolerance: 4.0,
		MaxRowGap:      1.8,
		Pad:            1.0,
	}
}

// Detect finds table regions on a page using DefaultConfig.
func Detect(page *doc.Page) []doc.Rect {
	return DetectWithConfig(page, DefaultConfig())
}

// DetectWithConfig finds table regions on a page whose blocks are
// already assembled. A region is a run of MinRows or more vertically
// adjacent lines, each with MinCols or more spans, whose span start
// positions align across rows. Vector ruling lines are invisible to
// text extraction, so alignment is the only signal used.
func DetectWithConfig(page *doc.Page, cfg Config) []doc.Rect {
	lines := collectLines(page)
	if len(lines) < cfg.MinRows {
		return nil
	}

	var regions []doc.Rect
	var run []doc.Line

	flush := func() {
		if len(run) >= cfg.MinRows {
			regions = append(regions, runBounds(run).Expand(cfg.Pad))
		}
		run = nil
	}

	for _, line := range lines {
		if len(line.Spans) < cfg.MinCols {
			flush()
			continue
		}
		if len(run) > 0 {
			prev := run[len(run)-1]
			if !adjacent(prev, line, cfg) || alignedColumns(prev, line, cfg.AlignTolerance) < cfg.MinCols {
				flush()
			}
		}
		run = append(run, line)
	}
	flush()

	return regions
}

// collectLines flattens the page's blocks into a single top-to-bottom
// line sequence.
func collectLines(page *doc.Page) []doc.Line {
	var lines []doc.Line
	for i := range page.Blocks {
		lines = append(lines, page.Blocks[i].Lines...)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].BBox.Y0 < lines[j].BBox.Y0
	})
	return lines
}

// adjacent reports whether two rows are close enough vertically to
// belong to the same table.
func adjacent(a, b doc.Line, cfg Config) bool {
	gap := b.BBox.Y0 - a.BBox.Y1
	avgHeight := (a.BBox.Height() + b.BBox.Height()) / 2
	if avgHeight <= 0 {
		return false
	}
	return gap <= avgHeight*cfg.MaxRowGap
}

// alignedColumns counts span starts in a that have a matching span
// start in b within the tolerance.
func alignedColumns(a, b doc.Line, tol float64) int {
	count := 0
	for i := range a.Spans {
		x := a.Spans[i].BBox.X0
		for j := range b.Spans {
			d := b.Spans[j].BBox.X0 - x
			if d < 0 {
				d = -d
			}
			if d <= tol {
				count++
				break
			}
		}
	}
	return count
}

// runBounds returns the union bbox of a row run.
func runBounds(run []doc.Line) doc.Rect {
	bounds := run[0].BBox
	for _, l := range run[1:] {
		bounds = bounds.Union(l.BBox)
	}
	return bounds
}

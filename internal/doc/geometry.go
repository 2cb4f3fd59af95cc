package doc

// Rect is an axis-aligned box in page points with a top-left origin:
// Y grows downward, so Y0 is the top edge and Y1 the bottom edge.
// The parser converts out of PDF bottom-origin coordinates, so every
// layer above it sorts by ascending Y to get reading order.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rect encloses no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// In reports whether r lies fully inside outer. Bounds are closed,
// so a rect is inside itself.
func (r Rect) In(outer Rect) bool {
	return r.X0 >= outer.X0 && r.Y0 >= outer.Y0 &&
		r.X1 <= outer.X1 && r.Y1 <= outer.Y1
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: minf(r.X0, o.X0),
		Y0: minf(r.Y0, o.Y0),
		X1: maxf(r.X1, o.X1),
		Y1: maxf(r.Y1, o.Y1),
	}
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

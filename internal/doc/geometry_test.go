package doc

import "testing"

func TestRectInFullContainment(t *testing.T) {
	outer := Rect{X0: 10, Y0: 10, X1: 100, Y1: 50}
	inner := Rect{X0: 20, Y0: 15, X1: 90, Y1: 45}

	if !inner.In(outer) {
		t.Errorf("expected inner rect to be contained")
	}
	if outer.In(inner) {
		t.Errorf("outer rect must not be contained in inner")
	}
}

func TestRectInIsClosedOnBounds(t *testing.T) {
	r := Rect{X0: 10, Y0: 10, X1: 100, Y1: 50}
	if !r.In(r) {
		t.Errorf("a rect must be contained in itself")
	}

	touching := Rect{X0: 10, Y0: 10, X1: 50, Y1: 50}
	if !touching.In(r) {
		t.Errorf("rect sharing edges with its container must count as contained")
	}
}

func TestRectInRejectsPartialOverlap(t *testing.T) {
	outer := Rect{X0: 10, Y0: 10, X1: 100, Y1: 50}
	spilling := Rect{X0: 50, Y0: 20, X1: 120, Y1: 40}

	if spilling.In(outer) {
		t.Errorf("rect extending past the container must not be contained")
	}
	if !spilling.Intersects(outer) {
		t.Errorf("expected partial overlap to intersect")
	}
}

func TestRectIntersectsDisjoint(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}
	if a.Intersects(b) || b.Intersects(a) {
		t.Errorf("disjoint rects must not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X0: 0, Y0: 5, X1: 10, Y1: 15}
	b := Rect{X0: 5, Y0: 0, X1: 20, Y1: 10}
	u := a.Union(b)

	want := Rect{X0: 0, Y0: 0, X1: 20, Y1: 15}
	if u != want {
		t.Errorf("expected union %+v, got %+v", want, u)
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X0: 10, Y0: 10, X1: 20, Y1: 20}
	e := r.Expand(2)
	want := Rect{X0: 8, Y0: 8, X1: 22, Y1: 22}
	if e != want {
		t.Errorf("expected %+v, got %+v", want, e)
	}
	if !r.In(e) {
		t.Errorf("original rect must be inside its expansion")
	}
}

func TestRectIsEmpty(t *testing.T) {
	if (Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}).IsEmpty() {
		t.Errorf("rect with area reported empty")
	}
	if !(Rect{X0: 10, Y0: 0, X1: 10, Y1: 10}).IsEmpty() {
		t.Errorf("zero-width rect reported non-empty")
	}
}

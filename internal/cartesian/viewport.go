package cartesian

import "math"

// Point is a position in screen space. Y grows downward.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Len returns the euclidean length of p seen as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Viewport is the canvas extent plus the accumulated pan offset.
type Viewport struct {
	Width, Height float64
	Offset        Point
}

// Origin is the screen position of the logical (0, 0).
func (v Viewport) Origin() Point {
	return Point{v.Width/2 + v.Offset.X, v.Height/2 + v.Offset.Y}
}

// Degenerate reports whether there is no area to draw into.
func (v Viewport) Degenerate() bool {
	return !(v.Width > 0) || !(v.Height > 0)
}

// Extent returns the viewport size along the axis an orientation sweeps.
func (v Viewport) Extent(o Orientation) float64 {
	if o == Vertical {
		return v.Width
	}
	return v.Height
}

// sanitize replaces values that would break iteration: non-finite offset
// components become zero, non-finite or negative extents become zero.
func (v Viewport) sanitize() Viewport {
	return Viewport{
		Width:  finiteOrZero(math.Max(v.Width, 0)),
		Height: finiteOrZero(math.Max(v.Height, 0)),
		Offset: Point{finiteOrZero(v.Offset.X), finiteOrZero(v.Offset.Y)},
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Pan accumulates drag deltas into a viewport offset.
type Pan struct {
	vp Viewport
}

func NewPan(width, height float64) *Pan {
	p := &Pan{}
	p.Resize(width, height)
	return p
}

// ApplyDelta adds a drag delta to the offset. The pan itself is unbounded;
// deltas with a non-finite component are dropped.
func (p *Pan) ApplyDelta(dx, dy float64) {
	d := Point{dx, dy}
	if !d.IsFinite() {
		return
	}
	next := p.vp.Offset.Add(d)
	if !next.IsFinite() {
		return
	}
	p.vp.Offset = next
}

// Resize updates the canvas extent and keeps the offset.
func (p *Pan) Resize(width, height float64) {
	p.vp.Width = finiteOrZero(math.Max(width, 0))
	p.vp.Height = finiteOrZero(math.Max(height, 0))
}

// Reset moves the origin back to the viewport center.
func (p *Pan) Reset() { p.vp.Offset = Point{} }

func (p *Pan) Offset() Point { return p.vp.Offset }
func (p *Pan) Viewport() Viewport { return p.vp }
func (p *Pan) Origin() Point { return p.vp.Origin() }

package cartesian

import "math"

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type Direction int

const (
	Positive Direction = iota
	Negative
)

func (d Direction) String() string {
	if d == Positive {
		return "positive"
	}
	return "negative"
}

// Fixed iteration order for every render pass.
var (
	Orientations = [2]Orientation{Vertical, Horizontal}
	Directions   = [2]Direction{Positive, Negative}
)

// maxStep is the largest step index that still has an exact float64
// representation. Sweeps whose first visible step lies beyond it emit nothing.
const maxStep = 1 << 53

// sweep visits the positions start+k*step, k = 0, 1, 2, ..., that fall inside
// [0, limit] (boundary inclusive) and calls fn with the step index and position.
//
// Steps that lie outside the viewport before the walk enters it are skipped
// arithmetically, and the walk is capped at floor(limit/|step|)+1 visits, so
// the cost never depends on the offset.
func sweep(start, step, limit float64, fn func(k int, pos float64)) {
	if !(limit >= 0) || !(step != 0) || math.IsInf(step, 0) || math.IsNaN(start) || math.IsInf(start, 0) {
		return
	}
	inside := func(pos float64) bool { return pos >= 0 && pos <= limit }

	var first float64
	switch {
	case step > 0 && start < 0:
		first = math.Ceil(-start / step)
	case step < 0 && start > limit:
		first = math.Ceil((start - limit) / -step)
	}
	if first > maxStep {
		return
	}
	// rounding in the division may land one step short of the boundary
	if pos := start + first*step; !inside(pos) && inside(pos+step) {
		first++
	}
	// or one step past it
	if first > 0 && inside(start+(first-1)*step) {
		first--
	}

	span := math.Floor(limit / math.Abs(step))
	if span > maxStep {
		return
	}
	visits := int(span) + 1
	for i := 0; i < visits; i++ {
		k := first + float64(i)
		pos := start + k*step
		if !inside(pos) {
			return
		}
		fn(int(k), pos)
	}
}

package cartesian

// MajorEvery is the cadence of major grid lines, counted outward from the origin.
const MajorEvery = 5

// GridLine is one full-span line of the background grid.
type GridLine struct {
	Orientation Orientation
	// Pos is the coordinate perpendicular to the line: x for vertical lines, y for horizontal ones.
	Pos      float64
	From, To Point
	// Step is the signed number of intervals between the line and the origin.
	Step  int
	Major bool
}

// Grid returns the vertical lines followed by the horizontal lines, each
// orientation swept positive then negative from the origin coordinate.
// Both sweeps start at the origin, so the line through it appears once per
// direction.
func Grid(vp Viewport, interval float64) []GridLine {
	if vp.Degenerate() {
		return nil
	}
	origin := vp.Origin()
	var lines []GridLine
	for _, o := range Orientations {
		start, limit := origin.X, vp.Width
		if o == Horizontal {
			start, limit = origin.Y, vp.Height
		}
		for _, d := range Directions {
			step, sign := interval, 1
			if d == Negative {
				step, sign = -interval, -1
			}
			sweep(start, step, limit, func(k int, pos float64) {
				lines = append(lines, gridLine(vp, o, pos, sign*k))
			})
		}
	}
	return lines
}

func gridLine(vp Viewport, o Orientation, pos float64, step int) GridLine {
	l := GridLine{Orientation: o, Pos: pos, Step: step, Major: step%MajorEvery == 0}
	if o == Vertical {
		l.From, l.To = Point{pos, 0}, Point{pos, vp.Height}
	} else {
		l.From, l.To = Point{0, pos}, Point{vp.Width, pos}
	}
	return l
}

package cartesian

import "strconv"

const (
	// TickEvery is the number of grid intervals between two tick labels.
	TickEvery = MajorEvery

	// LabelMargin pushes labels off their axis, and is also the distance
	// from the left edge under which Y labels are pulled back in.
	LabelMargin = 35.0

	// LabelBaseline lifts every label slightly off its computed position.
	LabelBaseline = 2.0
)

// Margin shifts a label away from its anchor.
type Margin struct {
	Left, Right, Top, Bottom float64
}

// TickLabel is an integer label marking a major grid line.
type TickLabel struct {
	Axis   AxisName
	Anchor Point
	Value  int
	Text   string
	Margin Margin
	// Clamped is set when the perpendicular axis was off screen and the
	// label was moved back inside the viewport.
	Clamped bool
}

// Point is the anchor after margins are applied. Text is centered on it.
func (l TickLabel) Point() Point {
	return Point{
		X: l.Anchor.X + l.Margin.Left - l.Margin.Right,
		Y: l.Anchor.Y + l.Margin.Top - l.Margin.Bottom,
	}
}

// tickSweep describes one axis worth of labels.
type tickSweep struct {
	axis AxisName
	// center moves along the axis, fixed is where the labels sit across it
	center, fixed, limit float64
	clamped              bool
}

// ClampX returns the vertical position of X axis labels. When the X axis has
// scrolled above the viewport the labels stick to the top edge; below it,
// they stay one interval above the bottom edge.
func ClampX(y, height, interval float64) (float64, bool) {
	switch {
	case y < 0:
		return 0, true
	case y > height:
		return height - interval, true
	}
	return y, false
}

// ClampY returns the horizontal position of Y axis labels. Positions closer
// than LabelMargin to the left edge move to one interval in; past the right
// edge they stick to it.
func ClampY(x, width, interval float64) (float64, bool) {
	switch {
	case x < LabelMargin:
		return interval, true
	case x > width:
		return width, true
	}
	return x, false
}

// Ticks returns the labels of both axes and the single shared "0" label at
// the origin. Degenerate viewports produce no labels at all.
func Ticks(vp Viewport, interval float64) ([]TickLabel, *TickLabel) {
	if vp.Degenerate() {
		return nil, nil
	}
	o := vp.Origin()
	fixedY, clampedY := ClampX(o.Y, vp.Height, interval)
	fixedX, clampedX := ClampY(o.X, vp.Width, interval)

	sweeps := [2]tickSweep{
		{axis: AxisX, center: o.X, fixed: fixedY, limit: vp.Width, clamped: clampedY},
		{axis: AxisY, center: o.Y, fixed: fixedX, limit: vp.Height, clamped: clampedX},
	}

	tick := interval * TickEvery
	var labels []TickLabel
	for _, s := range sweeps {
		for _, d := range Directions {
			step, sign := tick, 1
			if d == Negative {
				step, sign = -tick, -1
			}
			// screen y grows downward while values grow upward
			if s.axis == AxisY {
				step = -step
			}
			sweep(s.center, step, s.limit, func(k int, pos float64) {
				if k == 0 {
					return
				}
				labels = append(labels, s.label(pos, sign*k))
			})
		}
	}

	zero := TickLabel{
		Axis:    AxisX,
		Anchor:  Point{fixedX, fixedY},
		Value:   0,
		Text:    "0",
		Margin:  Margin{Right: LabelMargin, Top: LabelMargin, Bottom: LabelBaseline},
		Clamped: clampedX || clampedY,
	}
	return labels, &zero
}

func (s tickSweep) label(pos float64, value int) TickLabel {
	l := TickLabel{
		Axis:    s.axis,
		Value:   value,
		Text:    strconv.Itoa(value),
		Clamped: s.clamped,
	}
	if s.axis == AxisX {
		l.Anchor = Point{pos, s.fixed}
		l.Margin = Margin{Top: LabelMargin, Bottom: LabelBaseline}
	} else {
		l.Anchor = Point{s.fixed, pos}
		l.Margin = Margin{Right: LabelMargin, Bottom: LabelBaseline}
	}
	return l
}

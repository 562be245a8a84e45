package cartesian

import "math"

// ArrowLength is the length of each arrowhead stroke.
const ArrowLength = 20.0

// ArrowSpread is the angle between an arrowhead stroke and its axis.
const ArrowSpread = math.Pi / 4

type AxisName int

const (
	AxisX AxisName = iota
	AxisY
)

func (a AxisName) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Segment is a straight stroke between two points.
type Segment struct {
	From, To Point
}

// Angle is the direction of travel from From to To.
func (s Segment) Angle() float64 {
	return math.Atan2(s.To.Y-s.From.Y, s.To.X-s.From.X)
}

func (s Segment) Len() float64 { return s.To.Sub(s.From).Len() }

// Axis is an axis line through the origin and its arrowhead at the end
// pointing toward increasing values.
type Axis struct {
	Name  AxisName
	Line  Segment
	Arrow [2]Segment
}

// Axes returns the X axis running left to right and the Y axis running
// bottom to top, both through the panned origin.
func Axes(vp Viewport, arrowLength float64) [2]Axis {
	o := vp.Origin()
	x := Segment{Point{0, o.Y}, Point{vp.Width, o.Y}}
	y := Segment{Point{o.X, vp.Height}, Point{o.X, 0}}
	return [2]Axis{
		{Name: AxisX, Line: x, Arrow: Arrowhead(x, arrowLength)},
		{Name: AxisY, Line: y, Arrow: Arrowhead(y, arrowLength)},
	}
}

// Arrowhead returns two strokes of the given length starting at the
// segment's end and folding back at ±ArrowSpread from its direction.
func Arrowhead(s Segment, length float64) [2]Segment {
	angle := s.Angle()
	var strokes [2]Segment
	for i, spread := range [2]float64{-ArrowSpread, ArrowSpread} {
		a := angle + spread
		strokes[i] = Segment{
			From: s.To,
			To:   Point{s.To.X - length*math.Cos(a), s.To.Y - length*math.Sin(a)},
		}
	}
	return strokes
}

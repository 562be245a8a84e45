package paint

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/san-kum/cartgrid/internal/cartesian"
)

// Measurer reports the extent of a string rendered at a text size, in the
// same units as the viewport.
type Measurer interface {
	MeasureText(text string, size float64) (w, h float64)
}

// Surface is a host canvas.
//
// DrawText positions text by the left end of its baseline. A fill or stroke
// color with zero alpha is not painted.
type Surface interface {
	Measurer
	DrawLine(from, to cartesian.Point, c color.RGBA, width float64)
	DrawText(text string, at cartesian.Point, size float64, fill, stroke color.RGBA, strokeWidth float64)
}

// Monospace measures text as fixed-advance glyphs: each rune is Advance
// times the text size wide and the line is the text size tall. It stands
// in for a real font when no surface is at hand.
type Monospace struct {
	Advance float64
}

func (m Monospace) MeasureText(text string, size float64) (float64, float64) {
	adv := m.Advance
	if adv <= 0 {
		adv = 0.6
	}
	return float64(utf8.RuneCountInString(text)) * adv * size, size
}

// OutlineRing returns eight offsets at radius r. Surfaces without stroked
// text draw the outline by repeating the glyphs at each offset.
func OutlineRing(r float64) []cartesian.Point {
	pts := make([]cartesian.Point, 0, 8)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		pts = append(pts, cartesian.Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	return pts
}

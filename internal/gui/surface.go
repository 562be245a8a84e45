package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

const textSpacing = 1

// Surface draws paint commands with raylib. It must be used between
// BeginDrawing and EndDrawing on the window thread.
type Surface struct {
	Font rl.Font
}

func NewSurface(font rl.Font) *Surface {
	return &Surface{Font: font}
}

func (s *Surface) MeasureText(text string, size float64) (float64, float64) {
	v := rl.MeasureTextEx(s.Font, text, float32(size), textSpacing)
	return float64(v.X), float64(v.Y)
}

func (s *Surface) DrawLine(from, to cartesian.Point, c color.RGBA, width float64) {
	if !paint.Visible(c) {
		return
	}
	rl.DrawLineEx(vec(from), vec(to), float32(width), rlColor(c))
}

// DrawText takes a baseline-left anchor; raylib places text by its top-left
// corner, so the anchor is lifted by the measured height. Raylib has no
// stroked text, the outline is the fill repeated around a ring.
func (s *Surface) DrawText(text string, at cartesian.Point, size float64, fill, stroke color.RGBA, strokeWidth float64) {
	_, h := s.MeasureText(text, size)
	top := cartesian.Point{X: at.X, Y: at.Y - h}

	if paint.Visible(stroke) && strokeWidth > 0 {
		sc := rlColor(stroke)
		for _, d := range paint.OutlineRing(strokeWidth / 2) {
			rl.DrawTextEx(s.Font, text, vec(top.Add(d)), float32(size), textSpacing, sc)
		}
	}
	if paint.Visible(fill) {
		rl.DrawTextEx(s.Font, text, vec(top), float32(size), textSpacing, rlColor(fill))
	}
}

func vec(p cartesian.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

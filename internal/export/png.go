package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

// PNG rasterizes draw calls into an RGBA image. Lines are filled quads so
// stroke widths below one pixel still blend in.
type PNG struct {
	img   *image.RGBA
	fonts *Fonts
	r     *vector.Rasterizer
}

func NewPNG(width, height int, background color.RGBA, fonts *Fonts) *PNG {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if paint.Visible(background) {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return &PNG{img: img, fonts: fonts, r: vector.NewRasterizer(width, height)}
}

func (p *PNG) Image() *image.RGBA { return p.img }

func (p *PNG) MeasureText(text string, size float64) (float64, float64) {
	return p.fonts.MeasureText(text, size)
}

func (p *PNG) DrawLine(from, to cartesian.Point, c color.RGBA, width float64) {
	if !paint.Visible(c) || width <= 0 {
		return
	}
	d := to.Sub(from)
	l := d.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	// half-width normal
	n := cartesian.Point{X: -d.Y / l * width / 2, Y: d.X / l * width / 2}

	b := p.img.Bounds()
	r := p.r
	r.Reset(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(f32(from.Add(n)))
	r.LineTo(f32(to.Add(n)))
	r.LineTo(f32(to.Sub(n)))
	r.LineTo(f32(from.Sub(n)))
	r.ClosePath()
	r.Draw(p.img, b, image.NewUniform(c), image.Point{})
}

func (p *PNG) DrawText(text string, at cartesian.Point, size float64, fill, stroke color.RGBA, strokeWidth float64) {
	face, err := p.fonts.Face(size)
	if err != nil {
		return
	}
	if paint.Visible(stroke) && strokeWidth > 0 {
		for _, d := range paint.OutlineRing(strokeWidth / 2) {
			p.drawString(face, text, at.Add(d), stroke)
		}
	}
	if paint.Visible(fill) {
		p.drawString(face, text, at, fill)
	}
}

func (p *PNG) drawString(face font.Face, text string, at cartesian.Point, c color.RGBA) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(at.X), Y: floatToFixed(at.Y)},
	}
	d.DrawString(text)
}

func (p *PNG) Encode(w io.Writer) error {
	return png.Encode(w, p.img)
}

func f32(pt cartesian.Point) (float32, float32) {
	return float32(pt.X), float32(pt.Y)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

const maxPNGSide = 16384

// RenderSVG draws one frame of vp as an SVG document.
func RenderSVG(w io.Writer, vp cartesian.Viewport, interval float64, st paint.Style) ([]paint.Command, error) {
	fonts, err := NewFonts()
	if err != nil {
		return nil, err
	}
	svg := NewSVG(vp.Width, vp.Height, st.Background, fonts)
	cmds, err := paint.Pass(svg, vp, interval, st)
	if err != nil {
		return nil, fmt.Errorf("export: svg: %w", err)
	}
	if _, err := svg.WriteTo(w); err != nil {
		return nil, err
	}
	return cmds, nil
}

// RenderPNG draws one frame of vp as a PNG image. The image covers the
// viewport rounded up to whole pixels.
func RenderPNG(w io.Writer, vp cartesian.Viewport, interval float64, st paint.Style) ([]paint.Command, error) {
	fonts, err := NewFonts()
	if err != nil {
		return nil, err
	}
	width, height := pixels(vp.Width), pixels(vp.Height)
	if width == 0 || height == 0 || width > maxPNGSide || height > maxPNGSide {
		return nil, fmt.Errorf("export: png: viewport %vx%v outside 1..%d pixels", vp.Width, vp.Height, maxPNGSide)
	}
	img := NewPNG(width, height, st.Background, fonts)
	cmds, err := paint.Pass(img, vp, interval, st)
	if err != nil {
		return nil, fmt.Errorf("export: png: %w", err)
	}
	if err := img.Encode(w); err != nil {
		return nil, err
	}
	return cmds, nil
}

func pixels(v float64) int {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Ceil(v))
}

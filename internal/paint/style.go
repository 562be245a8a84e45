package paint

import "image/color"

// Style holds every color and stroke width a render pass needs. It is
// injected at draw time; nothing in the render path reads globals.
type Style struct {
	Background     color.RGBA
	GridColor      color.RGBA
	MajorGridColor color.RGBA
	AxisColor      color.RGBA
	LabelColor     color.RGBA
	LabelOutline   color.RGBA

	GridWidth    float64
	AxisWidth    float64
	OutlineWidth float64
	TextSize     float64
	ArrowLength  float64
}

// DefaultStyle is the light palette: white paper, gray grid, near-black axes.
func DefaultStyle() Style {
	return Style{
		Background:     color.RGBA{0xff, 0xff, 0xff, 0xff},
		GridColor:      color.RGBA{0xd1, 0xd5, 0xdb, 0xff},
		MajorGridColor: color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		AxisColor:      color.RGBA{0x11, 0x18, 0x27, 0xff},
		LabelColor:     color.RGBA{0x1f, 0x29, 0x37, 0xff},
		LabelOutline:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		GridWidth:      2.2,
		AxisWidth:      2.2,
		OutlineWidth:   8,
		TextSize:       12,
		ArrowLength:    20,
	}
}

// Visible reports whether c paints anything.
func Visible(c color.RGBA) bool { return c.A != 0 }

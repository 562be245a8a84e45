package export

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/paint"
)

const svgFontFamily = "Go, sans-serif"

// SVG collects draw calls as SVG elements. Text outlines use a real stroke
// painted under the fill.
type SVG struct {
	Width, Height float64
	Background    color.RGBA

	fonts *Fonts
	body  strings.Builder
}

func NewSVG(width, height float64, background color.RGBA, fonts *Fonts) *SVG {
	return &SVG{Width: width, Height: height, Background: background, fonts: fonts}
}

func (s *SVG) MeasureText(text string, size float64) (float64, float64) {
	return s.fonts.MeasureText(text, size)
}

func (s *SVG) DrawLine(from, to cartesian.Point, c color.RGBA, width float64) {
	if !paint.Visible(c) {
		return
	}
	fmt.Fprintf(&s.body, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"%s stroke-width="%.2f" stroke-linecap="round"/>
`, from.X, from.Y, to.X, to.Y, config.Hex(c), opacity("stroke", c), width)
}

func (s *SVG) DrawText(text string, at cartesian.Point, size float64, fill, stroke color.RGBA, strokeWidth float64) {
	if !paint.Visible(fill) && (!paint.Visible(stroke) || strokeWidth <= 0) {
		return
	}
	fmt.Fprintf(&s.body, `<text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f"`, at.X, at.Y, svgFontFamily, size)
	if paint.Visible(fill) {
		fmt.Fprintf(&s.body, ` fill="%s"%s`, config.Hex(fill), opacity("fill", fill))
	} else {
		s.body.WriteString(` fill="none"`)
	}
	if paint.Visible(stroke) && strokeWidth > 0 {
		fmt.Fprintf(&s.body, ` stroke="%s"%s stroke-width="%.2f" stroke-linejoin="round" paint-order="stroke"`,
			config.Hex(stroke), opacity("stroke", stroke), strokeWidth)
	}
	s.body.WriteString(">")
	xml.EscapeText(&s.body, []byte(text))
	s.body.WriteString("</text>\n")
}

func opacity(attr string, c color.RGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(c.A)/255)
}

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height))
	if paint.Visible(s.Background) {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, config.Hex(s.Background)))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

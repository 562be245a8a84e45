package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/paint"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a terminal surface. Draw calls take pixel coordinates; every
// cell covers CellW x CellH pixels and resolves them into 2x4 braille dots.
// Text is kept on an overlay so labels read as plain characters.
type Canvas struct {
	Width, Height int
	CellW, CellH  float64

	Grid [][]rune
	Ink  [][]color.RGBA
	Text [][]rune
	// TextInk colors the overlay characters.
	TextInk [][]color.RGBA
}

func NewCanvas(w, h int, cellW, cellH float64) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:   w,
		Height:  h,
		CellW:   cellW,
		CellH:   cellH,
		Grid:    make([][]rune, h),
		Ink:     make([][]color.RGBA, h),
		Text:    make([][]rune, h),
		TextInk: make([][]color.RGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]color.RGBA, w)
		c.Text[i] = make([]rune, w)
		c.TextInk[i] = make([]color.RGBA, w)
	}
	c.Clear()
	return c
}

// PixelSize is the viewport extent the canvas covers.
func (c *Canvas) PixelSize() (float64, float64) {
	return float64(c.Width) * c.CellW, float64(c.Height) * c.CellH
}

// Set sets a dot at (x, y) in sub-cell coordinates.
// The canvas size in dots is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, ink color.RGBA) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Ink[row][col] = ink
}

// Clear resets dots and the text overlay.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = color.RGBA{}
			c.Text[i][j] = 0
			c.TextInk[i][j] = color.RGBA{}
		}
	}
}

// DrawDots draws a line between dot coordinates using Bresenham's algorithm.
func (c *Canvas) DrawDots(x0, y0, x1, y1 int, ink color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// dot maps a pixel position to the nearest dot, clamped just outside the
// canvas so off-screen endpoints don't blow up the Bresenham walk.
func (c *Canvas) dot(p cartesian.Point) (int, int) {
	maxX := float64(c.Width*2) + 1
	maxY := float64(c.Height*4) + 1
	x := math.Floor(p.X / (c.CellW / 2))
	y := math.Floor(p.Y / (c.CellH / 4))
	return int(clamp(x, -1, maxX)), int(clamp(y, -1, maxY))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// MeasureText reports terminal glyph metrics: one cell per rune. The size
// is ignored, terminals have a single font size.
func (c *Canvas) MeasureText(text string, size float64) (float64, float64) {
	return float64(len([]rune(text))) * c.CellW, c.CellH
}

func (c *Canvas) DrawLine(from, to cartesian.Point, ink color.RGBA, width float64) {
	if !paint.Visible(ink) {
		return
	}
	x0, y0 := c.dot(from)
	x1, y1 := c.dot(to)
	c.DrawDots(x0, y0, x1, y1, ink)
}

// DrawText writes text on the overlay. A stroke pass clears the dots under
// the text and one cell on either side; a fill pass writes the characters.
func (c *Canvas) DrawText(text string, at cartesian.Point, size float64, fill, stroke color.RGBA, strokeWidth float64) {
	runes := []rune(text)
	row := int(math.Floor((at.Y - c.CellH/2) / c.CellH))
	col := int(math.Round(at.X / c.CellW))
	if row < 0 || row >= c.Height {
		return
	}

	if paint.Visible(stroke) && strokeWidth > 0 {
		for x := col - 1; x <= col+len(runes); x++ {
			if x >= 0 && x < c.Width {
				c.Grid[row][x] = blank
				c.Ink[row][x] = color.RGBA{}
			}
		}
	}
	if !paint.Visible(fill) {
		return
	}
	for i, r := range runes {
		x := col + i
		if x >= 0 && x < c.Width {
			c.Text[row][x] = r
			c.TextInk[row][x] = fill
		}
	}
}

// Plain returns the canvas without colors.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.cell(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) String() string { return c.Render(color.RGBA{}) }

// Render colors each run of same-ink cells with lipgloss. A visible
// background paints behind the whole canvas.
func (c *Canvas) Render(background color.RGBA) string {
	var b strings.Builder
	for row := range c.Grid {
		var run strings.Builder
		var runInk color.RGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle()
			if paint.Visible(runInk) {
				st = st.Foreground(lipgloss.Color(rgbaHex(runInk)))
			}
			if paint.Visible(background) {
				st = st.Background(lipgloss.Color(rgbaHex(background)))
			}
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for col := range c.Grid[row] {
			ink := c.Ink[row][col]
			if c.Text[row][col] != 0 {
				ink = c.TextInk[row][col]
			}
			if ink != runInk {
				flush()
				runInk = ink
			}
			run.WriteRune(c.cell(row, col))
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) cell(row, col int) rune {
	if r := c.Text[row][col]; r != 0 {
		return r
	}
	return c.Grid[row][col]
}

func rgbaHex(c color.RGBA) string {
	return config.Hex(c)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

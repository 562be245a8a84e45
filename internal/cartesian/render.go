package cartesian

import (
	"fmt"
	"math"
)

// Frame is everything one render pass draws, in paint order:
// grid first, then axes, then labels.
type Frame struct {
	Viewport Viewport
	Interval float64
	Grid     []GridLine
	Axes     []Axis
	Labels   []TickLabel
	// Zero is the shared origin label, nil for degenerate viewports.
	Zero *TickLabel
}

// ValidInterval reports whether interval can drive a render pass.
func ValidInterval(interval float64) bool {
	return interval > 0 && !math.IsInf(interval, 0)
}

// Render computes the frame for a viewport and grid interval.
// Non-finite offsets are treated as zero; an interval that is not positive
// and finite is a caller error.
func Render(vp Viewport, interval float64) (*Frame, error) {
	return RenderWith(vp, interval, ArrowLength)
}

// RenderWith is Render with a custom arrowhead stroke length.
func RenderWith(vp Viewport, interval, arrowLength float64) (*Frame, error) {
	if !ValidInterval(interval) {
		return nil, fmt.Errorf("render %vx%v: %w (got %v)", vp.Width, vp.Height, ErrInvalidInterval, interval)
	}
	if !(arrowLength >= 0) || math.IsInf(arrowLength, 0) {
		arrowLength = ArrowLength
	}
	vp = vp.sanitize()

	f := &Frame{Viewport: vp, Interval: interval}
	if vp.Degenerate() {
		return f, nil
	}
	f.Grid = Grid(vp, interval)
	axes := Axes(vp, arrowLength)
	f.Axes = axes[:]
	f.Labels, f.Zero = Ticks(vp, interval)
	return f, nil
}

// Counts summarizes a frame for diagnostics.
type Counts struct {
	GridLines  int `json:"grid_lines"`
	MajorLines int `json:"major_lines"`
	Axes       int `json:"axes"`
	Labels     int `json:"labels"`
	Clamped    int `json:"clamped"`
}

func (f *Frame) Counts() Counts {
	c := Counts{GridLines: len(f.Grid), Axes: len(f.Axes), Labels: len(f.Labels)}
	for _, l := range f.Grid {
		if l.Major {
			c.MajorLines++
		}
	}
	for _, l := range f.Labels {
		if l.Clamped {
			c.Clamped++
		}
	}
	if f.Zero != nil {
		c.Labels++
		if f.Zero.Clamped {
			c.Clamped++
		}
	}
	return c
}

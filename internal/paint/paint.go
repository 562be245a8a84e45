package paint

import (
	"image/color"

	"github.com/san-kum/cartgrid/internal/cartesian"
)

type Op int

const (
	OpLine Op = iota
	OpText
)

func (o Op) String() string {
	if o == OpLine {
		return "line"
	}
	return "text"
}

// Layer orders commands back to front.
type Layer int

const (
	LayerGrid Layer = iota
	LayerAxis
	LayerLabel
)

var layerNames = [...]string{"grid", "axis", "label"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Command is a single draw call. Lines use From, To, Color and Width. Text
// uses From as the baseline start, Color as fill, Stroke and Width as the
// outline.
type Command struct {
	Op       Op
	Layer    Layer
	From, To cartesian.Point
	Color    color.RGBA
	Stroke   color.RGBA
	Width    float64
	Text     string
	Size     float64
}

// Compose lays out a frame as draw commands: grid lines, then each axis
// with its arrowhead, then every label as an outline pass followed by a
// fill pass, the shared "0" label last. A nil m measures as Monospace.
func Compose(f *cartesian.Frame, st Style, m Measurer) []Command {
	if f == nil {
		return nil
	}
	if m == nil {
		m = Monospace{}
	}
	cmds := make([]Command, 0, len(f.Grid)+3*len(f.Axes)+2*len(f.Labels)+2)

	for _, l := range f.Grid {
		c := st.GridColor
		if l.Major {
			c = st.MajorGridColor
		}
		cmds = append(cmds, line(LayerGrid, l.From, l.To, c, st.GridWidth))
	}

	for _, a := range f.Axes {
		cmds = append(cmds, line(LayerAxis, a.Line.From, a.Line.To, st.AxisColor, st.AxisWidth))
		for _, s := range a.Arrow {
			cmds = append(cmds, line(LayerAxis, s.From, s.To, st.AxisColor, st.AxisWidth))
		}
	}

	for _, l := range f.Labels {
		cmds = appendLabel(cmds, l, st, m)
	}
	if f.Zero != nil {
		cmds = appendLabel(cmds, *f.Zero, st, m)
	}
	return cmds
}

func line(layer Layer, from, to cartesian.Point, c color.RGBA, width float64) Command {
	return Command{Op: OpLine, Layer: layer, From: from, To: to, Color: c, Width: width}
}

// appendLabel centers the label on its point using the measured extent and
// emits the outline and the fill at the same position.
func appendLabel(cmds []Command, l cartesian.TickLabel, st Style, m Measurer) []Command {
	w, h := m.MeasureText(l.Text, st.TextSize)
	p := l.Point()
	at := cartesian.Point{X: p.X - w/2, Y: p.Y + h/2}

	outline := Command{
		Op: OpText, Layer: LayerLabel, From: at, Text: l.Text, Size: st.TextSize,
		Stroke: st.LabelOutline, Width: st.OutlineWidth,
	}
	fill := Command{
		Op: OpText, Layer: LayerLabel, From: at, Text: l.Text, Size: st.TextSize,
		Color: st.LabelColor,
	}
	return append(cmds, outline, fill)
}

// Issue plays commands against a surface in order.
func Issue(s Surface, cmds []Command) {
	for _, c := range cmds {
		switch c.Op {
		case OpLine:
			s.DrawLine(c.From, c.To, c.Color, c.Width)
		case OpText:
			s.DrawText(c.Text, c.From, c.Size, c.Color, c.Stroke, c.Width)
		}
	}
}

// Draw composes a frame and issues it in one pass.
func Draw(s Surface, f *cartesian.Frame, st Style) []Command {
	cmds := Compose(f, st, s)
	Issue(s, cmds)
	return cmds
}

// Pass renders the viewport, then composes and issues the frame against s.
// The returned commands are exactly what was drawn.
func Pass(s Surface, vp cartesian.Viewport, interval float64, st Style) ([]Command, error) {
	f, err := cartesian.RenderWith(vp, interval, st.ArrowLength)
	if err != nil {
		return nil, err
	}
	return Draw(s, f, st), nil
}

// Stats counts commands per op and layer.
type Stats struct {
	Lines  int `json:"lines"`
	Texts  int `json:"texts"`
	Grid   int `json:"grid"`
	Axis   int `json:"axis"`
	Labels int `json:"labels"`
}

func Count(cmds []Command) Stats {
	var s Stats
	for _, c := range cmds {
		if c.Op == OpLine {
			s.Lines++
		} else {
			s.Texts++
		}
		switch c.Layer {
		case LayerGrid:
			s.Grid++
		case LayerAxis:
			s.Axis++
		case LayerLabel:
			s.Labels++
		}
	}
	return s
}

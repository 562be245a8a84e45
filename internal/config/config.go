package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultInterval = 50.0

	// A terminal cell is treated as an 8x16 pixel block; the braille canvas
	// resolves it into 2x4 dots.
	DefaultCellWidth     = 8.0
	DefaultCellHeight    = 16.0
	DefaultTermInterval  = 16.0
	DefaultTermPanStep   = 16.0
	DefaultTermTextSize  = 16.0
	DefaultTermArrowSize = 12.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Preset   string         `yaml:"preset,omitempty"`
	Viewport ViewportConfig `yaml:"viewport"`
	Interval float64        `yaml:"interval"`
	Style    StyleConfig    `yaml:"style"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StyleConfig is the file form of paint.Style. Colors are hex strings;
// "none" disables a paint.
type StyleConfig struct {
	Background   string  `yaml:"background"`
	Grid         string  `yaml:"grid"`
	MajorGrid    string  `yaml:"major_grid"`
	Axis         string  `yaml:"axis"`
	Label        string  `yaml:"label"`
	LabelOutline string  `yaml:"label_outline"`
	GridWidth    float64 `yaml:"grid_width"`
	AxisWidth    float64 `yaml:"axis_width"`
	OutlineWidth float64 `yaml:"outline_width"`
	TextSize     float64 `yaml:"text_size"`
	ArrowLength  float64 `yaml:"arrow_length"`
}

type TerminalConfig struct {
	Interval    float64 `yaml:"interval"`
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
	PanStep     float64 `yaml:"pan_step"`
	TextSize    float64 `yaml:"text_size"`
	ArrowLength float64 `yaml:"arrow_length"`
	Theme       string  `yaml:"theme"`
}

func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Background:   "#ffffff",
		Grid:         "#d1d5db",
		MajorGrid:    "#9ca3af",
		Axis:         "#111827",
		Label:        "#1f2937",
		LabelOutline: "#ffffff",
		GridWidth:    2.2,
		AxisWidth:    2.2,
		OutlineWidth: 8,
		TextSize:     12,
		ArrowLength:  20,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Preset:   "light",
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Interval: DefaultInterval,
		Style:    DefaultStyleConfig(),
		Terminal: TerminalConfig{
			Interval:    DefaultTermInterval,
			CellWidth:   DefaultCellWidth,
			CellHeight:  DefaultCellHeight,
			PanStep:     DefaultTermPanStep,
			TextSize:    DefaultTermTextSize,
			ArrowLength: DefaultTermArrowSize,
			Theme:       "minimal",
		},
	}
}

// Load reads a yaml file on top of the defaults. A preset named in the
// file replaces the default style before the file's own style keys apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		p := GetPreset(head.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, head.Preset)
		}
		cfg = p
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var problems []string
	if !cartesian.ValidInterval(c.Interval) {
		problems = append(problems, fmt.Sprintf("interval must be positive and finite, got %v", c.Interval))
	}
	if !cartesian.ValidInterval(c.Terminal.Interval) {
		problems = append(problems, fmt.Sprintf("terminal.interval must be positive and finite, got %v", c.Terminal.Interval))
	}
	if !positive(c.Terminal.CellWidth) || !positive(c.Terminal.CellHeight) {
		problems = append(problems, "terminal cell size must be positive and finite")
	}
	if !positive(c.Style.TextSize) {
		problems = append(problems, fmt.Sprintf("style.text_size must be positive and finite, got %v", c.Style.TextSize))
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		problems = append(problems, "viewport size must not be negative")
	}
	if _, err := c.Style.Resolve(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Resolve converts the file form into a paint.Style.
func (s StyleConfig) Resolve() (paint.Style, error) {
	st := paint.Style{
		GridWidth:    s.GridWidth,
		AxisWidth:    s.AxisWidth,
		OutlineWidth: s.OutlineWidth,
		TextSize:     s.TextSize,
		ArrowLength:  s.ArrowLength,
	}
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", s.Background, &st.Background},
		{"grid", s.Grid, &st.GridColor},
		{"major_grid", s.MajorGrid, &st.MajorGridColor},
		{"axis", s.Axis, &st.AxisColor},
		{"label", s.Label, &st.LabelColor},
		{"label_outline", s.LabelOutline, &st.LabelOutline},
	}
	for _, f := range fields {
		c, err := ParseColor(f.hex)
		if err != nil {
			return paint.Style{}, fmt.Errorf("style.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return st, nil
}

// PaintStyle is the resolved style; Validate has already checked it.
func (c *Config) PaintStyle() paint.Style {
	st, err := c.Style.Resolve()
	if err != nil {
		return paint.DefaultStyle()
	}
	return st
}

// TerminalStyle is the paint style scaled for the terminal pixel grid.
func (c *Config) TerminalStyle() paint.Style {
	st := c.PaintStyle()
	st.TextSize = c.Terminal.TextSize
	st.ArrowLength = c.Terminal.ArrowLength
	return st
}

// ParseColor accepts #rgb, #rrggbb or an SVG color name, and "none" or ""
// for no paint.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return color.RGBA{}, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats a color for config files and exports.
func Hex(c color.RGBA) string {
	if !paint.Visible(c) {
		return "none"
	}
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

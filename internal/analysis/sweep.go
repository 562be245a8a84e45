package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

var ErrInvalidSweep = errors.New("analysis: invalid sweep")

// SweepConfig describes a pan along one axis. The other offset component
// stays at Fixed.
type SweepConfig struct {
	Axis     cartesian.AxisName
	From, To float64
	Steps    int
	Fixed    float64

	Width, Height float64
	Interval      float64
	Style         paint.Style
}

// ParseAxis accepts "x" or "y".
func ParseAxis(s string) (cartesian.AxisName, error) {
	switch strings.ToLower(s) {
	case "x":
		return cartesian.AxisX, nil
	case "y":
		return cartesian.AxisY, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidSweep, s)
}

// Sample is what one frame of the sweep drew.
type Sample struct {
	Offset   cartesian.Point
	Counts   cartesian.Counts
	Commands int
}

type SweepResult struct {
	Config  SweepConfig
	Samples []Sample
}

// frames per goroutine
const sweepChunk = 64

// PanSweep renders a frame at Steps evenly spaced offsets between From and
// To, both included. A single step samples From only. Frames are rendered
// in parallel, so m must be safe for concurrent use.
func PanSweep(ctx context.Context, cfg SweepConfig, m paint.Measurer) (*SweepResult, error) {
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidSweep, cfg.Steps)
	}
	if cfg.Axis != cartesian.AxisX && cfg.Axis != cartesian.AxisY {
		return nil, fmt.Errorf("%w: unknown axis %v", ErrInvalidSweep, cfg.Axis)
	}
	if !isFinite(cfg.From) || !isFinite(cfg.To) || !isFinite(cfg.Fixed) {
		return nil, fmt.Errorf("%w: offsets must be finite", ErrInvalidSweep)
	}
	if !cartesian.ValidInterval(cfg.Interval) {
		return nil, fmt.Errorf("analysis: sweep: %w", cartesian.ErrInvalidInterval)
	}

	step := 0.0
	if cfg.Steps > 1 {
		step = (cfg.To - cfg.From) / float64(cfg.Steps-1)
	}

	res := &SweepResult{Config: cfg, Samples: make([]Sample, cfg.Steps)}
	errs := make([]error, cfg.Steps)
	ParallelFor(cfg.Steps, sweepChunk, func(start, end int) {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			d := cfg.From + float64(i)*step
			off := cartesian.Point{X: d, Y: cfg.Fixed}
			if cfg.Axis == cartesian.AxisY {
				off = cartesian.Point{X: cfg.Fixed, Y: d}
			}
			res.Samples[i], errs[i] = sample(cfg, off, m)
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func sample(cfg SweepConfig, off cartesian.Point, m paint.Measurer) (Sample, error) {
	vp := cartesian.Viewport{Width: cfg.Width, Height: cfg.Height, Offset: off}
	f, err := cartesian.RenderWith(vp, cfg.Interval, cfg.Style.ArrowLength)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Offset:   off,
		Counts:   f.Counts(),
		Commands: len(paint.Compose(f, cfg.Style, m)),
	}, nil
}

// Series extracts one metric per sample: "lines", "major", "labels",
// "clamped" or "commands".
func (r *SweepResult) Series(metric string) ([]float64, error) {
	get, ok := metrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidSweep, metric)
	}
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(get(s))
	}
	return out, nil
}

// Metrics lists the names Series accepts, in display order.
var Metrics = []string{"lines", "major", "labels", "clamped", "commands"}

var metrics = map[string]func(Sample) int{
	"lines":    func(s Sample) int { return s.Counts.GridLines },
	"major":    func(s Sample) int { return s.Counts.MajorLines },
	"labels":   func(s Sample) int { return s.Counts.Labels },
	"clamped":  func(s Sample) int { return s.Counts.Clamped },
	"commands": func(s Sample) int { return s.Commands },
}

// Summary is min, max and mean of a series.
type Summary struct {
	Metric string
	Min    float64
	Max    float64
	Mean   float64
}

func Summarize(metric string, series []float64) Summary {
	s := Summary{Metric: metric}
	if len(series) == 0 {
		return s
	}
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, v := range series {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(series))
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

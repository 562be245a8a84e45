package analysis

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/paint"
)

func baseSweep() SweepConfig {
	return SweepConfig{
		Axis:     cartesian.AxisX,
		From:     0,
		To:       250,
		Steps:    6,
		Width:    1280,
		Height:   720,
		Interval: 50,
		Style:    paint.DefaultStyle(),
	}
}

func TestPanSweepOffsets(t *testing.T) {
	res, err := PanSweep(context.Background(), baseSweep(), paint.Monospace{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(res.Samples) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(res.Samples))
	}
	for i, s := range res.Samples {
		want := cartesian.Point{X: float64(i) * 50}
		if s.Offset != want {
			t.Errorf("sample %d: expected offset %v, got %v", i, want, s.Offset)
		}
		if s.Counts.Axes != 2 {
			t.Errorf("sample %d: expected both axes, got %d", i, s.Counts.Axes)
		}
	}

	first := res.Samples[0]
	if first.Counts.GridLines != 42 || first.Counts.MajorLines != 10 {
		t.Errorf("unexpected grid counts at the center: %+v", first.Counts)
	}
	if first.Counts.Labels != 7 {
		t.Errorf("expected 7 labels at the center, got %d", first.Counts.Labels)
	}
	// 42 lines, 2 axes with 2 arrow strokes each, 2 commands per label
	if first.Commands != 42+6+14 {
		t.Errorf("expected %d commands, got %d", 42+6+14, first.Commands)
	}
}

func TestPanSweepVerticalAxis(t *testing.T) {
	cfg := baseSweep()
	cfg.Axis = cartesian.AxisY
	cfg.Fixed = -30
	cfg.Steps = 3

	res, err := PanSweep(context.Background(), cfg, paint.Monospace{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	want := []cartesian.Point{{X: -30, Y: 0}, {X: -30, Y: 125}, {X: -30, Y: 250}}
	for i, s := range res.Samples {
		if s.Offset != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], s.Offset)
		}
	}
}

func TestPanSweepSingleStep(t *testing.T) {
	cfg := baseSweep()
	cfg.Steps = 1
	cfg.From = 75

	res, err := PanSweep(context.Background(), cfg, paint.Monospace{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(res.Samples) != 1 || res.Samples[0].Offset.X != 75 {
		t.Errorf("expected one sample at 75, got %+v", res.Samples)
	}
}

func TestPanSweepInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SweepConfig)
		want   error
	}{
		{"zero steps", func(c *SweepConfig) { c.Steps = 0 }, ErrInvalidSweep},
		{"bad axis", func(c *SweepConfig) { c.Axis = 7 }, ErrInvalidSweep},
		{"nan offset", func(c *SweepConfig) { c.To = math.NaN() }, ErrInvalidSweep},
		{"zero interval", func(c *SweepConfig) { c.Interval = 0 }, cartesian.ErrInvalidInterval},
	}

	for _, tt := range tests {
		cfg := baseSweep()
		tt.mutate(&cfg)
		if _, err := PanSweep(context.Background(), cfg, paint.Monospace{}); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestSeriesAndSummary(t *testing.T) {
	res, err := PanSweep(context.Background(), baseSweep(), paint.Monospace{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for _, m := range Metrics {
		series, err := res.Series(m)
		if err != nil {
			t.Fatalf("series %s: %v", m, err)
		}
		if len(series) != len(res.Samples) {
			t.Errorf("series %s: expected %d points, got %d", m, len(res.Samples), len(series))
		}
	}
	if _, err := res.Series("fps"); !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("expected ErrInvalidSweep for unknown metric, got %v", err)
	}

	s := Summarize("x", []float64{1, 3, 2})
	if s.Min != 1 || s.Max != 3 || s.Mean != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s := Summarize("x", nil); s.Min != 0 || s.Max != 0 {
		t.Errorf("empty series should summarize to zero, got %+v", s)
	}
}

func TestParseAxis(t *testing.T) {
	if a, err := ParseAxis("Y"); err != nil || a != cartesian.AxisY {
		t.Errorf("expected y axis, got %v %v", a, err)
	}
	if _, err := ParseAxis("z"); !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("expected ErrInvalidSweep, got %v", err)
	}
}

func TestPanSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := PanSweep(ctx, baseSweep(), paint.Monospace{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1000} {
		hits := make([]int32, n)
		ParallelFor(n, 16, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestPanSweepLargeMatchesSerial(t *testing.T) {
	cfg := baseSweep()
	cfg.From, cfg.To, cfg.Steps = -2000, 2000, 401

	res, err := PanSweep(context.Background(), cfg, paint.Monospace{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i, s := range res.Samples {
		want, err := sample(cfg, s.Offset, paint.Monospace{})
		if err != nil {
			t.Fatal(err)
		}
		if s != want {
			t.Fatalf("sample %d differs from a serial render: %+v vs %+v", i, s, want)
		}
		if s.Offset.X != -2000+float64(i)*10 {
			t.Fatalf("sample %d at wrong offset %v", i, s.Offset)
		}
	}
}

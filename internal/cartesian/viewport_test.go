package cartesian

import (
	"math"
	"testing"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		w, h   float64
		offset Point
		want   Point
	}{
		{400, 300, Point{}, Point{200, 150}},
		{400, 300, Point{-500, 0}, Point{-300, 150}},
		{401, 299, Point{0.25, -0.75}, Point{200.75, 148.75}},
		{0, 0, Point{3, 4}, Point{3, 4}},
	}

	for _, tt := range tests {
		vp := Viewport{Width: tt.w, Height: tt.h, Offset: tt.offset}
		if got := vp.Origin(); got != tt.want {
			t.Errorf("%vx%v offset %v: expected origin %v, got %v", tt.w, tt.h, tt.offset, tt.want, got)
		}
	}
}

func TestPanApplyDelta(t *testing.T) {
	p := NewPan(400, 300)
	p.ApplyDelta(10, -5)
	p.ApplyDelta(-2.5, 20)

	if got := p.Offset(); got != (Point{7.5, 15}) {
		t.Errorf("expected offset {7.5 15}, got %v", got)
	}
	if got := p.Origin(); got != (Point{207.5, 165}) {
		t.Errorf("expected origin {207.5 165}, got %v", got)
	}

	p.ApplyDelta(math.NaN(), 1)
	p.ApplyDelta(1, math.Inf(-1))
	if got := p.Offset(); got != (Point{7.5, 15}) {
		t.Errorf("non-finite delta should be ignored, got %v", got)
	}

	p.ApplyDelta(math.MaxFloat64, 0)
	p.ApplyDelta(math.MaxFloat64, 0)
	if !p.Offset().IsFinite() {
		t.Errorf("offset overflowed to %v", p.Offset())
	}

	p.Reset()
	if got := p.Offset(); got != (Point{}) {
		t.Errorf("expected zero offset after reset, got %v", got)
	}
}

func TestPanResize(t *testing.T) {
	p := NewPan(-10, math.NaN())
	vp := p.Viewport()
	if vp.Width != 0 || vp.Height != 0 {
		t.Errorf("expected 0x0, got %vx%v", vp.Width, vp.Height)
	}
	if !vp.Degenerate() {
		t.Error("expected degenerate viewport")
	}

	p.ApplyDelta(4, 4)
	p.Resize(800, 600)
	vp = p.Viewport()
	if vp.Width != 800 || vp.Height != 600 || vp.Offset != (Point{4, 4}) {
		t.Errorf("resize lost state: %+v", vp)
	}
}

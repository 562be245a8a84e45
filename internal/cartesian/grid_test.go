package cartesian

import (
	"math"
	"testing"
)

func TestGridCountFromEdge(t *testing.T) {
	// origin in the top-left corner: the positive sweeps cover the whole extent
	vp := Viewport{Width: 400, Height: 300, Offset: Point{-200, -150}}
	lines := Grid(vp, 50)

	tests := []struct {
		o     Orientation
		limit float64
	}{
		{Vertical, 400},
		{Horizontal, 300},
	}
	for _, tt := range tests {
		var positive, origin int
		for _, l := range lines {
			if l.Orientation != tt.o {
				continue
			}
			if l.Step > 0 {
				positive++
			}
			if l.Step == 0 {
				origin++
			}
		}
		// the positive sweep is step 0 plus every step > 0
		want := int(math.Floor(tt.limit/50)) + 1
		if positive+1 != want {
			t.Errorf("%v: expected %d lines in the positive sweep, got %d", tt.o, want, positive+1)
		}
		if origin != 2 {
			t.Errorf("%v: expected origin line from both sweeps, got %d", tt.o, origin)
		}
	}
}

func TestGridCountCentered(t *testing.T) {
	vp := Viewport{Width: 400, Height: 300}
	lines := Grid(vp, 50)

	// 200..400 and 200..0 vertically, 150..300 and 150..0 horizontally;
	// the origin line is visited by both sweeps
	if len(lines) != 5+5+4+4 {
		t.Errorf("expected 18 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Step == 0 && !l.Major {
			t.Error("origin line should be major")
		}
	}
}

// naiveCount walks the original unbounded loop for moderate offsets.
func naiveCount(start, step, limit float64) int {
	n := 0
	for pos := start; ; pos += step {
		if step > 0 && pos > limit || step < 0 && pos < 0 {
			break
		}
		if pos >= 0 && pos <= limit {
			n++
		}
	}
	return n
}

func TestGridMatchesNaiveSweep(t *testing.T) {
	offsets := []Point{
		{0, 0}, {13, -7}, {-180, 260}, {999, -999}, {-3125.5, 12.25}, {200, 150}, {-200, -150},
	}
	const interval = 25.0

	for _, off := range offsets {
		vp := Viewport{Width: 640, Height: 480, Offset: off}
		origin := vp.Origin()
		lines := Grid(vp, interval)

		for _, o := range Orientations {
			start := origin.X
			if o == Horizontal {
				start = origin.Y
			}
			limit := vp.Extent(o)
			wantPos := naiveCount(start, interval, limit)
			wantNeg := naiveCount(start, -interval, limit)

			var pos, neg, zero int
			for _, l := range lines {
				if l.Orientation != o {
					continue
				}
				switch {
				case l.Step > 0:
					pos++
				case l.Step < 0:
					neg++
				default:
					zero++
				}
			}
			// each sweep emits the origin line when it is visible
			if zero == 2 {
				pos++
				neg++
			} else if zero != 0 {
				t.Errorf("offset %v, %v: origin line emitted %d times", off, o, zero)
			}
			if pos != wantPos || neg != wantNeg {
				t.Errorf("offset %v, %v: expected %d/%d lines, got %d/%d", off, o, wantPos, wantNeg, pos, neg)
			}
			bound := int(math.Floor(limit/interval)) + 1
			if pos > bound || neg > bound {
				t.Errorf("offset %v, %v: %d/%d lines exceeds bound %d", off, o, pos, neg, bound)
			}
		}
	}
}

func TestSweepBoundaryRounding(t *testing.T) {
	// -start/step lands just above a whole number, so a plain Ceil starts
	// one step past the position that sits on the boundary
	tests := []struct {
		start, step, limit float64
	}{
		{-0.30000000000000004, 0.1, 1},
		{-0.6000000000000001, 0.1, 1},
		{-1.2000000000000002, 0.1, 1},
		{1.3000000000000003, -0.1, 1},
		{-0.7, 0.1, 1},
		{0.25, 0.1, 1},
	}

	for _, tt := range tests {
		var want []float64
		firstK := -1
		for k := 0; k < 1000; k++ {
			pos := tt.start + float64(k)*tt.step
			if pos >= 0 && pos <= tt.limit {
				if firstK < 0 {
					firstK = k
				}
				want = append(want, pos)
			}
		}

		var got []float64
		gotK := -1
		sweep(tt.start, tt.step, tt.limit, func(k int, pos float64) {
			if gotK < 0 {
				gotK = k
			}
			got = append(got, pos)
		})

		if len(got) != len(want) || gotK != firstK {
			t.Errorf("start=%v step=%v: expected %d positions from k=%d, got %d from k=%d",
				tt.start, tt.step, len(want), firstK, len(got), gotK)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("start=%v step=%v: position %d expected %v, got %v", tt.start, tt.step, i, want[i], got[i])
			}
		}
	}
}

func TestGridMajorCadence(t *testing.T) {
	offsets := []Point{{0, 0}, {37, 12}, {-37, -12}, {-1e6 - 3, 5e5 + 1}, {123456.5, -654321.25}}
	const interval = 20.0

	for _, off := range offsets {
		vp := Viewport{Width: 300, Height: 200, Offset: off}
		origin := vp.Origin()
		for _, l := range Grid(vp, interval) {
			if l.Major != (l.Step%MajorEvery == 0) {
				t.Errorf("offset %v: step %d has major=%v", off, l.Step, l.Major)
			}
			base := origin.X
			if l.Orientation == Horizontal {
				base = origin.Y
			}
			if want := base + float64(l.Step)*interval; math.Abs(l.Pos-want) > 1e-6 {
				t.Errorf("offset %v: step %d at %f, expected %f", off, l.Step, l.Pos, want)
			}
		}
	}
}

func TestGridSpanAndBounds(t *testing.T) {
	vp := Viewport{Width: 320, Height: 240, Offset: Point{41, -17}}
	for _, l := range Grid(vp, 30) {
		if l.Orientation == Vertical {
			if l.From != (Point{l.Pos, 0}) || l.To != (Point{l.Pos, 240}) {
				t.Errorf("vertical line at %f spans %v -> %v", l.Pos, l.From, l.To)
			}
			if l.Pos < 0 || l.Pos > 320 {
				t.Errorf("vertical line outside viewport: %f", l.Pos)
			}
		} else {
			if l.From != (Point{0, l.Pos}) || l.To != (Point{320, l.Pos}) {
				t.Errorf("horizontal line at %f spans %v -> %v", l.Pos, l.From, l.To)
			}
			if l.Pos < 0 || l.Pos > 240 {
				t.Errorf("horizontal line outside viewport: %f", l.Pos)
			}
		}
	}
}

func TestGridExtremeOffsets(t *testing.T) {
	tests := []struct {
		name   string
		offset Point
	}{
		{"far right", Point{1e12, 0}},
		{"far left", Point{-1e12, 0}},
		{"far down", Point{0, 1e15}},
		{"beyond precision", Point{-1e300, 1e300}},
	}

	for _, tt := range tests {
		vp := Viewport{Width: 800, Height: 600, Offset: tt.offset}
		lines := Grid(vp, 10)
		bound := 2*(800/10+1) + 2*(600/10+1)
		if len(lines) > bound {
			t.Errorf("%s: %d lines exceeds bound %d", tt.name, len(lines), bound)
		}
	}
}

func TestGridDegenerateViewport(t *testing.T) {
	tests := []Viewport{
		{Width: 0, Height: 300},
		{Width: 400, Height: 0},
		{Width: 0, Height: 0, Offset: Point{-5, 5}},
	}
	for _, vp := range tests {
		if lines := Grid(vp, 50); len(lines) != 0 {
			t.Errorf("viewport %vx%v: expected no lines, got %d", vp.Width, vp.Height, len(lines))
		}
	}
}

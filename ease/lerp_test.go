package ease

import (
	"math"
	"testing"

	"github.com/milk9111/animator/common"
)

func TestInterpolateEndpoints(t *testing.T) {
	for _, c := range Curves {
		t.Run(c.String(), func(t *testing.T) {
			if got := Interpolate(3.0, 9.0, 0, c); got != 3.0 {
				t.Errorf("float64 t=0: got %v, want 3", got)
			}
			if got := Interpolate(3.0, 9.0, 1, c); got != 9.0 {
				t.Errorf("float64 t=1: got %v, want 9", got)
			}
			if got := Interpolate(float32(-2), float32(4), 1, c); got != 4 {
				t.Errorf("float32 t=1: got %v, want 4", got)
			}
			if got := Interpolate(10, 20, 1, c); got != 20 {
				t.Errorf("int t=1: got %v, want 20", got)
			}
			if got := Interpolate(byte(5), byte(200), 0, c); got != 5 {
				t.Errorf("byte t=0: got %v, want 5", got)
			}

			a, b := common.Vec2{X: 1, Y: 2}, common.Vec2{X: 5, Y: -3}
			if got := InterpolateVec2(a, b, 0, c); got != a {
				t.Errorf("vec2 t=0: got %v, want %v", got, a)
			}
			if got := InterpolateVec2(a, b, 1, c); got != b {
				t.Errorf("vec2 t=1: got %v, want %v", got, b)
			}

			from, to := common.Color{R: 10, G: 20, B: 30, A: 255}, common.Color{R: 200, G: 100, B: 0, A: 0}
			if got := InterpolateColor(from, to, 0, c); got != from {
				t.Errorf("color t=0: got %v, want %v", got, from)
			}
			if got := InterpolateColor(from, to, 1, c); got != to {
				t.Errorf("color t=1: got %v, want %v", got, to)
			}
		})
	}
}

func TestInterpolateTruncatesIntegers(t *testing.T) {
	// 0..10 at t=0.55 is 5.5; integer forms truncate toward zero.
	if got := Interpolate(0, 10, 0.55, Linear); got != 5 {
		t.Errorf("int: got %d, want 5", got)
	}
	if got := Interpolate(byte(0), byte(10), 0.55, Linear); got != 5 {
		t.Errorf("byte: got %d, want 5", got)
	}
	// Descending ranges truncate toward zero too, not toward -inf.
	if got := Interpolate(10, 0, 0.55, Linear); got != 4 {
		t.Errorf("descending int: got %d, want 4", got)
	}
}

func TestInterpolateUnknownCurveReturnsStart(t *testing.T) {
	const bad = Curve(99)
	if got := Interpolate(7.0, 42.0, 0.5, bad); got != 7.0 {
		t.Errorf("float64: got %v, want start 7", got)
	}
	if got := Interpolate(7, 42, 0.5, bad); got != 7 {
		t.Errorf("int: got %v, want start 7", got)
	}
	a := common.Vec2{X: 7, Y: 8}
	if got := InterpolateVec2(a, common.Vec2{X: 1, Y: 1}, 0.5, bad); got != a {
		t.Errorf("vec2: got %v, want start %v", got, a)
	}
}

func TestInterpolateVec2XY(t *testing.T) {
	a, b := common.Vec2{X: 0, Y: 0}, common.Vec2{X: 10, Y: 10}
	got := InterpolateVec2XY(a, b, 0.5, Linear, QuadIn)
	if got.X != 5 {
		t.Errorf("X axis: got %v, want 5", got.X)
	}
	if got.Y != 2.5 {
		t.Errorf("Y axis: got %v, want 2.5", got.Y)
	}
}

func TestCustomInterpolate(t *testing.T) {
	double := func(t float64) float64 { return t * 2 }
	if got := CustomInterpolate(0, 10, 0.25, double); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := CustomInterpolate(3, 10, 0.25, nil); got != 3 {
		t.Errorf("nil fn: got %v, want start 3", got)
	}
}

func TestInverseLerp(t *testing.T) {
	for _, tt := range []float64{0, 0.125, 0.5, 0.9, 1} {
		v := Interpolate(2.0, 12.0, tt, Linear)
		if got := InverseLerp(2, 12, v); math.Abs(got-tt) > 1e-12 {
			t.Errorf("InverseLerp(2, 12, %v) = %v, want %v", v, got, tt)
		}
	}
}

func TestInverseLerpDegenerateRange(t *testing.T) {
	if got := InverseLerp(5, 5, 123); got != 5 {
		t.Errorf("got %v, want the start value 5", got)
	}
}

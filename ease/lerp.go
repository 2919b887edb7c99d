package ease

import (
	"math"

	"github.com/milk9111/animator/common"
)

// Number covers the scalar types Interpolate supports. Integer instantiations
// truncate toward zero after the float64 computation; there is no rounding.
type Number interface {
	~float64 | ~float32 | ~int | ~uint8
}

// Interpolate blends start toward end by t remapped through the curve. An
// unknown curve kind leaves the start value unchanged.
func Interpolate[T Number](start, end T, t float64, c Curve) T {
	r, ok := Remap(t, c)
	if !ok {
		return start
	}
	return T(float64(start) + r*(float64(end)-float64(start)))
}

// InterpolateVec2 applies the same curve to both axes.
func InterpolateVec2(start, end common.Vec2, t float64, c Curve) common.Vec2 {
	return InterpolateVec2XY(start, end, t, c, c)
}

// InterpolateVec2XY eases each axis through its own curve.
func InterpolateVec2XY(start, end common.Vec2, t float64, cx, cy Curve) common.Vec2 {
	return common.Vec2{
		X: Interpolate(start.X, end.X, t, cx),
		Y: Interpolate(start.Y, end.Y, t, cy),
	}
}

// InterpolateColor eases each RGBA channel independently as bytes.
func InterpolateColor(start, end common.Color, t float64, c Curve) common.Color {
	return common.Color{
		R: Interpolate(start.R, end.R, t, c),
		G: Interpolate(start.G, end.G, t, c),
		B: Interpolate(start.B, end.B, t, c),
		A: Interpolate(start.A, end.A, t, c),
	}
}

// CustomInterpolate blends using the injected remapping function. A nil fn
// returns start unchanged.
func CustomInterpolate(start, end, t float64, fn Func) float64 {
	if fn == nil {
		return start
	}
	return start + fn(t)*(end-start)
}

// InverseLerp solves the linear inverse: the t for which a linear blend of
// start and end yields value. A degenerate range (|end-start| below the
// smallest positive float64) returns start rather than dividing by near-zero.
func InverseLerp(start, end, value float64) float64 {
	if math.Abs(end-start) < math.SmallestNonzeroFloat64 {
		return start
	}
	return (value - start) / (end - start)
}

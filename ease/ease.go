// Package ease remaps normalized animation progress through named timing
// curves and interpolates values along them.
//
// Every curve maps t in [0, 1] to a remapped progress value. Elastic curves
// intentionally overshoot outside [0, 1]; callers must not clamp the result.
package ease

import "math"

// Curve identifies one of the named time-remapping shapes. Values outside the
// declared set mean "no remapping": Remap reports them instead of silently
// falling back to Linear.
type Curve int

const (
	Linear Curve = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	SineIn
	SineOut
	SineInOut
	ElasticIn
	ElasticOut
	ElasticInOut
)

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case QuadIn:
		return "quad-in"
	case QuadOut:
		return "quad-out"
	case QuadInOut:
		return "quad-in-out"
	case CubicIn:
		return "cubic-in"
	case CubicOut:
		return "cubic-out"
	case CubicInOut:
		return "cubic-in-out"
	case ExpoIn:
		return "expo-in"
	case ExpoOut:
		return "expo-out"
	case ExpoInOut:
		return "expo-in-out"
	case SineIn:
		return "sine-in"
	case SineOut:
		return "sine-out"
	case SineInOut:
		return "sine-in-out"
	case ElasticIn:
		return "elastic-in"
	case ElasticOut:
		return "elastic-out"
	case ElasticInOut:
		return "elastic-in-out"
	}
	return "unknown"
}

// Curves lists every concrete curve kind.
var Curves = []Curve{
	Linear,
	QuadIn, QuadOut, QuadInOut,
	CubicIn, CubicOut, CubicInOut,
	ExpoIn, ExpoOut, ExpoInOut,
	SineIn, SineOut, SineInOut,
	ElasticIn, ElasticOut, ElasticInOut,
}

// Func is an injectable remapping function for CustomInterpolate.
type Func func(t float64) float64

// Remap transforms t through the given curve. The second result is false when
// c is not a concrete curve kind; the caller should then use the start value
// unchanged.
func Remap(t float64, c Curve) (float64, bool) {
	switch c {
	case Linear:
		return t, true
	case QuadIn:
		return quadIn(t), true
	case QuadOut:
		return 1 - quadIn(1-t), true
	case QuadInOut:
		return inOut(quadIn, t), true
	case CubicIn:
		return cubicIn(t), true
	case CubicOut:
		return 1 - cubicIn(1-t), true
	case CubicInOut:
		return inOut(cubicIn, t), true
	case ExpoIn:
		return expoIn(t), true
	case ExpoOut:
		return 1 - expoIn(1-t), true
	case ExpoInOut:
		return inOut(expoIn, t), true
	case SineIn:
		return math.Sin((t-1)*math.Pi/2) + 1, true
	case SineOut:
		return math.Sin(t * math.Pi / 2), true
	case SineInOut:
		return 0.5 * (1 - math.Cos(t*math.Pi)), true
	case ElasticIn:
		return elasticIn(t), true
	case ElasticOut:
		return 1 - elasticIn(1-t), true
	case ElasticInOut:
		return inOut(elasticIn, t), true
	}
	return 0, false
}

// inOut squeezes the In shape into the first half and its mirror into the
// second, splitting exactly at t=0.5.
func inOut(in func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return 0.5 * in(2*t)
	}
	return 1 - 0.5*in(2*(1-t))
}

func quadIn(t float64) float64 {
	return t * t
}

func cubicIn(t float64) float64 {
	return t * t * t
}

// expoIn passes through 0 exactly instead of returning 2^-10.
func expoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// elasticIn is a 13-amplitude sine under an exponential envelope. Overshoots
// below 0 on the way in; endpoints are exact because sin(0)=0 and
// sin(13π/2)=1.
func elasticIn(t float64) float64 {
	return math.Sin(13*math.Pi/2*t) * math.Pow(2, 10*(t-1))
}

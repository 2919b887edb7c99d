package anim

import (
	"math"

	"github.com/milk9111/animator/ease"
)

// SheetAnimation cycles its target sprite through that sprite's frames over a
// fixed duration. Progress runs through an easing curve before the frame is
// picked, so a single set of frames can play with any timing shape.
type SheetAnimation struct {
	base

	Duration float64 // seconds for one full pass
	Loop     bool
	Curve    ease.Curve

	elapsed float64
	playing bool
}

// NewSheetAnimation creates a sheet animation. A non-positive duration
// defaults to one second.
func NewSheetAnimation(duration float64, loop bool, curve ease.Curve) *SheetAnimation {
	if duration <= 0 {
		duration = 1
	}
	return &SheetAnimation{
		Duration: duration,
		Loop:     loop,
		Curve:    curve,
	}
}

// Play restarts the cycle from the first frame.
func (a *SheetAnimation) Play() {
	a.elapsed = 0
	a.playing = true
	if a.target != nil {
		a.target.SetFrame(0)
	}
}

// Done reports whether a non-looping run has finished.
func (a *SheetAnimation) Done() bool {
	return !a.playing
}

// Update advances the animation by dt seconds and applies the resulting frame
// to the target. Call once per tick; a finished non-looping animation holds
// its last frame.
func (a *SheetAnimation) Update(dt float64) {
	if !a.playing || a.target == nil || len(a.target.Frames) == 0 {
		return
	}

	d := a.Duration
	if d <= 0 {
		d = 1
	}
	a.elapsed += dt
	progress := a.elapsed / d
	if progress >= 1 {
		if a.Loop {
			progress = math.Mod(progress, 1)
		} else {
			progress = 1
			a.playing = false
		}
	}

	// SetFrame clamps, which keeps elastic overshoot in range without
	// clamping the curve itself.
	a.target.SetFrame(ease.Interpolate(0, len(a.target.Frames)-1, progress, a.Curve))
}

package anim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animator/common"
)

// Sprite is the renderable state animations mutate: a set of pre-sliced
// frames plus the transform and tint a renderer would draw with. The registry
// only threads it through; it never reads or writes the fields itself.
type Sprite struct {
	Frames   []*ebiten.Image
	Frame    int
	Position common.Vec2
	Scale    common.Vec2
	Rotation float64
	Tint     common.Color
}

// NewSprite creates a sprite over pre-sliced frames with identity transform
// and white tint.
func NewSprite(frames ...*ebiten.Image) *Sprite {
	return &Sprite{
		Frames: frames,
		Scale:  common.Vec2{X: 1, Y: 1},
		Tint:   common.White,
	}
}

// Image returns the current frame, or nil when the sprite has no frames or
// the frame index is out of range.
func (s *Sprite) Image() *ebiten.Image {
	if s == nil || s.Frame < 0 || s.Frame >= len(s.Frames) {
		return nil
	}
	return s.Frames[s.Frame]
}

// SetFrame clamps n into the frame range and makes it current. A sprite with
// no frames is left untouched.
func (s *Sprite) SetFrame(n int) {
	if s == nil || len(s.Frames) == 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	if n >= len(s.Frames) {
		n = len(s.Frames) - 1
	}
	s.Frame = n
}

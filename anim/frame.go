package anim

// FrameAnimation pins a single frame on its target. Useful for idle poses and
// other static states that still need to live in the registry.
type FrameAnimation struct {
	base

	FrameIndex int
}

// NewFrameAnimation creates a single-frame animation showing frame n.
func NewFrameAnimation(n int) *FrameAnimation {
	return &FrameAnimation{FrameIndex: n}
}

// Play applies the configured frame to the target.
func (a *FrameAnimation) Play() {
	if a.target != nil {
		a.target.SetFrame(a.FrameIndex)
	}
}

package anim

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animator/ease"
)

// spriteWithFrames builds a sprite with n frame slots. The images themselves
// are never dereferenced by the animation code, so nil entries are fine here.
func spriteWithFrames(n int) *Sprite {
	return NewSprite(make([]*ebiten.Image, n)...)
}

func TestSheetAnimationLinearProgression(t *testing.T) {
	target := spriteWithFrames(4)
	a := NewSheetAnimation(1, false, ease.Linear)
	a.SetTarget(target)
	a.Play()

	if target.Frame != 0 {
		t.Fatalf("Play should rewind to frame 0, got %d", target.Frame)
	}

	steps := []struct {
		dt        float64
		wantFrame int
		wantDone  bool
	}{
		{0.5, 1, false}, // progress 0.5 -> 1.5 truncates to frame 1
		{0.3, 2, false}, // progress 0.8 -> 2.4 truncates to frame 2
		{0.3, 3, true},  // past the end: hold last frame, finish
		{0.5, 3, true},  // finished animations stay put
	}
	for i, s := range steps {
		a.Update(s.dt)
		if target.Frame != s.wantFrame {
			t.Errorf("step %d: frame = %d, want %d", i, target.Frame, s.wantFrame)
		}
		if a.Done() != s.wantDone {
			t.Errorf("step %d: Done() = %v, want %v", i, a.Done(), s.wantDone)
		}
	}
}

func TestSheetAnimationLoops(t *testing.T) {
	target := spriteWithFrames(4)
	a := NewSheetAnimation(1, true, ease.Linear)
	a.SetTarget(target)
	a.Play()

	a.Update(1.25) // wraps to progress 0.25
	if target.Frame != 0 {
		t.Errorf("frame = %d after wrap, want 0", target.Frame)
	}
	if a.Done() {
		t.Error("a looping animation never finishes")
	}
}

func TestSheetAnimationReplay(t *testing.T) {
	target := spriteWithFrames(3)
	a := NewSheetAnimation(1, false, ease.Linear)
	a.SetTarget(target)
	a.Play()
	a.Update(2)
	if !a.Done() {
		t.Fatal("animation should have finished")
	}

	a.Play()
	if a.Done() || target.Frame != 0 {
		t.Errorf("Play should restart: done=%v frame=%d", a.Done(), target.Frame)
	}
}

func TestSheetAnimationWithoutTarget(t *testing.T) {
	a := NewSheetAnimation(1, false, ease.Linear)
	a.Play() // must not panic with no target bound
	a.Update(0.5)
}

func TestFrameAnimation(t *testing.T) {
	target := spriteWithFrames(3)
	target.Frame = 1

	a := NewFrameAnimation(2)
	a.SetTarget(target)
	a.Play()
	if target.Frame != 2 {
		t.Errorf("frame = %d, want 2", target.Frame)
	}

	over := NewFrameAnimation(10)
	over.SetTarget(target)
	over.Play()
	if target.Frame != 2 {
		t.Errorf("out-of-range index should clamp to %d, got %d", 2, target.Frame)
	}
}

func TestSpriteImage(t *testing.T) {
	if img := (*Sprite)(nil).Image(); img != nil {
		t.Error("nil sprite should have no image")
	}
	s := spriteWithFrames(2)
	s.Frame = 5
	if img := s.Image(); img != nil {
		t.Error("out-of-range frame should yield no image")
	}
}

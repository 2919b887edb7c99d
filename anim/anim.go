// Package anim selects and drives named animations over a shared renderable
// sprite target. A Registry owns the animations; how each one advances
// frame-to-frame is the animation's own business.
package anim

import "log"

// Animation is the contract the registry manages. The key and target are
// registry-assigned identity: the registry overwrites the key on add and
// fills in the target only when the animation's creator left it unset.
type Animation interface {
	Key() string
	SetKey(key string)
	Target() *Sprite
	SetTarget(target *Sprite)

	// Play (re)starts the animation's own internal progression. Safe to
	// call repeatedly.
	Play()
}

// Logger is the diagnostics sink for the registry's non-fatal conditions.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type stdLogger struct{}

func (stdLogger) Warnf(format string, args ...any)  { log.Printf("warn: "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("error: "+format, args...) }

// base carries the identity fields shared by the animation variants.
type base struct {
	key    string
	target *Sprite
}

func (b *base) Key() string              { return b.key }
func (b *base) SetKey(key string)        { b.key = key }
func (b *base) Target() *Sprite          { return b.target }
func (b *base) SetTarget(target *Sprite) { b.target = target }

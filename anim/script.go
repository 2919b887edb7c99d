package anim

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scriptDispatch routes lifecycle phases to the functions a sprite script is
// expected to define.
const scriptDispatch = `
if __phase == "play" {
	play(__sprite)
} else if __phase == "update" {
	update(__sprite, __t)
}
`

// ScriptAnimation drives its target from a tengo script, for motion that is
// computed rather than authored as frames. The script defines play(sprite)
// and update(sprite, t); sprite is a map with x, y, rotation, scale_x,
// scale_y and frame fields, and t is seconds since Play.
type ScriptAnimation struct {
	base

	compiled *tengo.Compiled
	sprite   *tengo.Map
	log      Logger

	elapsed float64
	playing bool
}

// NewScriptAnimation compiles src into a script animation. Compilation
// problems are the only hard failure; runtime script errors are reported
// through the logger.
func NewScriptAnimation(src string, log Logger) (*ScriptAnimation, error) {
	script := tengo.NewScript([]byte(src + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__sprite", map[string]any{})
	_ = script.Add("__t", 0.0)

	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile sprite script: %w", err)
	}

	if log == nil {
		log = stdLogger{}
	}
	return &ScriptAnimation{
		compiled: compiled,
		sprite:   &tengo.Map{Value: map[string]tengo.Object{}},
		log:      log,
	}, nil
}

// Play resets script time and runs the script's play phase.
func (a *ScriptAnimation) Play() {
	a.elapsed = 0
	a.playing = true
	a.runPhase("play")
}

// Update advances script time by dt seconds and runs the update phase.
func (a *ScriptAnimation) Update(dt float64) {
	if !a.playing {
		return
	}
	a.elapsed += dt
	a.runPhase("update")
}

func (a *ScriptAnimation) runPhase(phase string) {
	if a.compiled == nil || a.target == nil {
		return
	}

	a.loadSprite()
	if err := a.compiled.Set("__phase", phase); err != nil {
		a.log.Errorf("anim: script %q: %v", a.key, err)
		return
	}
	if err := a.compiled.Set("__sprite", a.sprite); err != nil {
		a.log.Errorf("anim: script %q: %v", a.key, err)
		return
	}
	if err := a.compiled.Set("__t", a.elapsed); err != nil {
		a.log.Errorf("anim: script %q: %v", a.key, err)
		return
	}
	if err := a.compiled.Run(); err != nil {
		a.log.Errorf("anim: script %q: %v", a.key, err)
		return
	}
	a.storeSprite()
}

// loadSprite publishes the target's state into the script-side map.
func (a *ScriptAnimation) loadSprite() {
	a.sprite.Value["x"] = &tengo.Float{Value: a.target.Position.X}
	a.sprite.Value["y"] = &tengo.Float{Value: a.target.Position.Y}
	a.sprite.Value["rotation"] = &tengo.Float{Value: a.target.Rotation}
	a.sprite.Value["scale_x"] = &tengo.Float{Value: a.target.Scale.X}
	a.sprite.Value["scale_y"] = &tengo.Float{Value: a.target.Scale.Y}
	a.sprite.Value["frame"] = &tengo.Int{Value: int64(a.target.Frame)}
}

// storeSprite applies whatever the script left in the map back to the target.
func (a *ScriptAnimation) storeSprite() {
	if v, ok := tengo.ToFloat64(a.sprite.Value["x"]); ok {
		a.target.Position.X = v
	}
	if v, ok := tengo.ToFloat64(a.sprite.Value["y"]); ok {
		a.target.Position.Y = v
	}
	if v, ok := tengo.ToFloat64(a.sprite.Value["rotation"]); ok {
		a.target.Rotation = v
	}
	if v, ok := tengo.ToFloat64(a.sprite.Value["scale_x"]); ok {
		a.target.Scale.X = v
	}
	if v, ok := tengo.ToFloat64(a.sprite.Value["scale_y"]); ok {
		a.target.Scale.Y = v
	}
	if v, ok := tengo.ToInt(a.sprite.Value["frame"]); ok {
		a.target.SetFrame(v)
	}
}

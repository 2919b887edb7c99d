package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/animator/anim"
	"github.com/milk9111/animator/common"
	"github.com/milk9111/animator/ease"
)

const tickSeconds = 1.0 / 60

// updater is the optional per-tick advancement side of the animation
// variants; the registry itself never calls it.
type updater interface {
	Update(dt float64)
}

type game struct {
	cfg      config
	sprite   *anim.Sprite
	registry *anim.Registry

	// position tween cycling through every curve kind
	tweenFrom  common.Vec2
	tweenTo    common.Vec2
	tweenT     float64
	curveIndex int

	reload <-chan string
}

func newGame(cfg config, reload <-chan string) *game {
	g := &game{
		cfg:       cfg,
		sprite:    anim.NewSprite(makeFrames()...),
		tweenFrom: common.Vec2{X: 64, Y: 180},
		tweenTo:   common.Vec2{X: 512, Y: 180},
		reload:    reload,
	}
	g.sprite.Position = g.tweenFrom

	g.registry = anim.NewRegistry(g.sprite, anim.WithCapacity(4))
	g.registry.Add("idle", anim.NewFrameAnimation(0))
	g.registry.Add("walk", anim.NewSheetAnimation(cfg.Walk.Duration, true, parseCurve(cfg.Walk.Curve)))
	g.addScriptAnimation()
	g.registry.PlayIfDifferent("idle")
	return g
}

// makeFrames builds a handful of procedural frames so the demo needs no
// asset pipeline.
func makeFrames() []*ebiten.Image {
	colors := []color.RGBA{
		colornames.Steelblue,
		colornames.Seagreen,
		colornames.Goldenrod,
		colornames.Indianred,
	}
	frames := make([]*ebiten.Image, 0, len(colors))
	for i, c := range colors {
		img := ebiten.NewImage(32, 32)
		img.Fill(c)
		inner := ebiten.NewImage(8+4*i, 8+4*i)
		inner.Fill(colornames.White)
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(4, 4)
		img.DrawImage(inner, &op)
		frames = append(frames, img)
	}
	return frames
}

func parseCurve(name string) ease.Curve {
	for _, c := range ease.Curves {
		if c.String() == name {
			return c
		}
	}
	log.Printf("unknown curve %q, using linear", name)
	return ease.Linear
}

// addScriptAnimation (re)registers the tengo-driven animation. Re-adding
// under the same name replaces the old instance; if it was current the
// registry re-selects the fresh one.
func (g *game) addScriptAnimation() {
	src, err := os.ReadFile(g.cfg.ScriptPath)
	if err != nil {
		log.Printf("read script: %v", err)
		return
	}
	a, err := anim.NewScriptAnimation(string(src), nil)
	if err != nil {
		log.Printf("script: %v", err)
		return
	}
	g.registry.Add("pulse", a)
}

func (g *game) Update() error {
	select {
	case path := <-g.reload:
		log.Printf("reloading %s", path)
		g.addScriptAnimation()
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.registry.PlayIfDifferent("idle")
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.registry.PlayIfDifferent("walk")
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.registry.PlayIfDifferent("pulse")
	}

	if cur, ok := g.registry.Current(); ok {
		if u, ok := cur.(updater); ok {
			u.Update(tickSeconds)
		}
	}

	g.advanceTween()
	return nil
}

// advanceTween slides the sprite between two anchors, switching to the next
// curve kind at each end so every shape gets shown.
func (g *game) advanceTween() {
	g.tweenT += tickSeconds / 2
	if g.tweenT >= 1 {
		g.tweenT = 0
		g.tweenFrom, g.tweenTo = g.tweenTo, g.tweenFrom
		g.curveIndex = (g.curveIndex + 1) % len(ease.Curves)
	}
	curve := ease.Curves[g.curveIndex]
	pos := ease.InterpolateVec2XY(g.tweenFrom, g.tweenTo, g.tweenT, curve, ease.Linear)
	g.sprite.Position = pos
	// let elastic overshoot bounce vertically so it is visible
	g.sprite.Position.Y += 40 * math.Sin(g.tweenT*math.Pi)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	if img := g.sprite.Image(); img != nil {
		var op ebiten.DrawImageOptions
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(g.sprite.Rotation)
		op.GeoM.Scale(g.sprite.Scale.X, g.sprite.Scale.Y)
		op.GeoM.Translate(g.sprite.Position.X, g.sprite.Position.Y)
		op.ColorScale.Scale(
			float32(g.sprite.Tint.R)/255,
			float32(g.sprite.Tint.G)/255,
			float32(g.sprite.Tint.B)/255,
			float32(g.sprite.Tint.A)/255,
		)
		screen.DrawImage(img, &op)
	}

	current := "none"
	if cur, ok := g.registry.Current(); ok {
		current = cur.Key()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"1=idle 2=walk 3=pulse\nplaying: %s\ntween curve: %s",
		current, ease.Curves[g.curveIndex]))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

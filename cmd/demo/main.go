// Demo showcases the animation registry and easing engine in a small
// Ebitengine window. Keys 1-3 switch the active animation; the tengo sprite
// script reloads on save.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "cmd/demo/config.yaml", "YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("using defaults: %v", err)
	}

	reload, err := watchScript(cfg.ScriptPath)
	if err != nil {
		log.Printf("script hot reload disabled: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(newGame(cfg, reload)); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Walk struct {
		Duration float64 `yaml:"duration"`
		Curve    string  `yaml:"curve"`
	} `yaml:"walk"`
	ScriptPath string `yaml:"script"`
}

func defaultConfig() config {
	var c config
	c.Window.Width = 640
	c.Window.Height = 360
	c.Window.Title = "animator demo"
	c.Walk.Duration = 0.8
	c.Walk.Curve = "quad-in-out"
	c.ScriptPath = "cmd/demo/pulse.tengo"
	return c
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

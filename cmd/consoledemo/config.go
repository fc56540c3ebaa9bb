package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/consolekit/console"
)

// config controls what the demo draws and how fast.
type config struct {
	text         string
	tick         time.Duration
	repaintEvery int
	underline    bool
	colors       []console.Color
}

func defaultConfig() config {
	return config{
		text:         "An example text",
		tick:         50 * time.Millisecond,
		repaintEvery: 10,
		colors: []console.Color{
			console.ColorBlue,
			console.ColorGreen,
			console.ColorCyan,
			console.ColorRed,
			console.ColorPink,
			console.ColorYellow,
			console.ColorWhite,
		},
	}
}

// loadConfig overlays values from a JSON file onto base. Absent fields
// keep their base values.
func loadConfig(path string, base config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	if !gjson.ValidBytes(data) {
		return base, fmt.Errorf("%s: not valid JSON", path)
	}

	cfg := base

	if v := gjson.GetBytes(data, "text"); v.Exists() {
		cfg.text = v.String()
	}
	if v := gjson.GetBytes(data, "tick_ms"); v.Exists() {
		ms := v.Int()
		if ms <= 0 {
			return base, fmt.Errorf("%s: tick_ms must be positive", path)
		}
		cfg.tick = time.Duration(ms) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "repaint_every"); v.Exists() {
		n := int(v.Int())
		if n <= 0 {
			return base, fmt.Errorf("%s: repaint_every must be positive", path)
		}
		cfg.repaintEvery = n
	}
	if v := gjson.GetBytes(data, "underline"); v.Exists() {
		cfg.underline = v.Bool()
	}
	if v := gjson.GetBytes(data, "colors"); v.Exists() {
		if !v.IsArray() {
			return base, fmt.Errorf("%s: colors must be an array", path)
		}
		var colors []console.Color
		for _, e := range v.Array() {
			c, ok := console.ParseColor(e.String())
			if !ok {
				return base, fmt.Errorf("%s: unknown color %q", path, e.String())
			}
			colors = append(colors, c)
		}
		if len(colors) == 0 {
			return base, fmt.Errorf("%s: colors must not be empty", path)
		}
		cfg.colors = colors
	}

	return cfg, nil
}

// Package config provides YAML-based scene configuration and sprite sheet
// loading for pixelterm, with embedded defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixelterm/internal/glyph"
	"github.com/vovakirdan/pixelterm/internal/palette"
)

// Centre is the sentinel for "place in the middle" (or "last row" for the
// ground).
const Centre = -1

// Config contains all configuration for one scene.
type Config struct {
	Render RenderConfig  `yaml:"render"`
	Canvas CanvasConfig  `yaml:"canvas"`
	Player PlayerConfig  `yaml:"player"`
	Ground GroundConfig  `yaml:"ground"`
	Actors []ActorConfig `yaml:"actors"`
}

// RenderConfig selects the glyph strategy and frame rate.
type RenderConfig struct {
	Mode   string `yaml:"mode"`   // "braille" or "halfblock"
	FPS    int    `yaml:"fps"`    // Target frames per second
	Border string `yaml:"border"` // Palette color name
}

// CanvasConfig is the pixel size of the playfield.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig places the controllable pixel.
type PlayerConfig struct {
	Color  string `yaml:"color"`
	StartX int    `yaml:"start_x"` // -1 = centre
	StartY int    `yaml:"start_y"` // -1 = centre
}

// GroundConfig defines the static background row.
type GroundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Color   string `yaml:"color"`
	Row     int    `yaml:"row"` // -1 = last canvas row
}

// ActorConfig places a sprite sheet animation in the scene.
type ActorConfig struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// Mode returns the configured glyph mode.
func (c Config) Mode() glyph.Mode {
	return glyph.Mode(c.Render.Mode)
}

// BorderColor returns the parsed border color.
func (c Config) BorderColor() palette.Color {
	color, _ := palette.Parse(c.Render.Border)
	return color
}

// PlayerColor returns the parsed player color.
func (c Config) PlayerColor() palette.Color {
	color, _ := palette.Parse(c.Player.Color)
	return color
}

// GroundColor returns the parsed ground color.
func (c Config) GroundColor() palette.Color {
	color, _ := palette.Parse(c.Ground.Color)
	return color
}

// GroundRow resolves the ground row sentinel against the canvas height.
func (c Config) GroundRow() int {
	if c.Ground.Row == Centre {
		return c.Canvas.Height - 1
	}
	return c.Ground.Row
}

// PlayerStart resolves the player start sentinels against the canvas size.
func (c Config) PlayerStart() (x, y int) {
	x, y = c.Player.StartX, c.Player.StartY
	if x == Centre {
		x = c.Canvas.Width / 2
	}
	if y == Centre {
		y = c.Canvas.Height / 2
	}
	return x, y
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	strategy, err := glyph.New(c.Mode(), palette.Transparent)
	if err != nil {
		errs = append(errs, err)
	} else if err := strategy.Validate(c.Canvas.Width, c.Canvas.Height); err != nil {
		errs = append(errs, err)
	}

	if c.Render.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: fps must be positive (got %d)", c.Render.FPS))
	}

	colors := map[string]string{
		"render.border": c.Render.Border,
		"player.color":  c.Player.Color,
	}
	if c.Ground.Enabled {
		colors["ground.color"] = c.Ground.Color
	}
	for _, field := range []string{"render.border", "player.color", "ground.color"} {
		name, ok := colors[field]
		if !ok {
			continue
		}
		if _, ok := palette.Parse(name); !ok {
			errs = append(errs, fmt.Errorf("config: %s: unknown color %q", field, name))
		}
	}

	seen := make(map[string]bool)
	for i, a := range c.Actors {
		if a.Name == "" || a.Sprite == "" {
			errs = append(errs, fmt.Errorf("config: actors[%d] needs a name and a sprite", i))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("config: duplicate actor %q", a.Name))
		}
		seen[a.Name] = true
	}

	return errors.Join(errs...)
}

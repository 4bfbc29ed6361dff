// Package scenes holds helpers shared by the built-in scenes. The scenes
// themselves live in subpackages and register with the registry on import.
package scenes

import (
	"github.com/vovakirdan/pixelterm/internal/config"
	"github.com/vovakirdan/pixelterm/internal/engine"
)

// Base creates a world of the configured canvas size with the player placed
// and colored. Ground and actors are left to the scene.
func Base(cfg config.Config) *engine.World {
	world := engine.NewWorld(cfg.Canvas.Width, cfg.Canvas.Height)
	world.PlacePlayer(cfg.PlayerStart())
	world.Player.Color = cfg.PlayerColor()
	return world
}

// Ground returns the configured ground row, or nil when disabled.
func Ground(cfg config.Config) *engine.Ground {
	if !cfg.Ground.Enabled {
		return nil
	}
	return &engine.Ground{Row: cfg.GroundRow(), Color: cfg.GroundColor()}
}

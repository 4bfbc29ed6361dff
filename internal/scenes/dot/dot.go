// Package dot is the minimal scene: a single movable pixel inside a border.
package dot

import (
	"github.com/vovakirdan/pixelterm/internal/config"
	"github.com/vovakirdan/pixelterm/internal/engine"
	"github.com/vovakirdan/pixelterm/internal/registry"
	"github.com/vovakirdan/pixelterm/internal/scenes"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

// ID is the registry identifier of the scene.
const ID = "dot"

// Scene draws only the player. Ground and actor settings are ignored.
type Scene struct{}

// New creates the scene.
func New() *Scene {
	return &Scene{}
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return ID
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Dot"
}

// Build places the player on an otherwise empty canvas.
func (s *Scene) Build(cfg config.Config, _ *sprite.Sheet) (*engine.World, error) {
	return scenes.Base(cfg), nil
}

func init() {
	registry.Register(ID, func() registry.Scene {
		return New()
	})
}

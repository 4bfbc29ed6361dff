// Package parade shows animated sprites marching in place above a ground
// row, with the player drawn over them.
package parade

import (
	"fmt"

	"github.com/vovakirdan/pixelterm/internal/config"
	"github.com/vovakirdan/pixelterm/internal/engine"
	"github.com/vovakirdan/pixelterm/internal/registry"
	"github.com/vovakirdan/pixelterm/internal/scenes"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

// ID is the registry identifier of the scene.
const ID = "parade"

// Scene builds the ground, every configured actor and the player.
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
	return "Sprite Parade"
}

// Build resolves each actor's sprite in the sheet. Every actor gets its own
// animation so they can be advanced independently.
func (s *Scene) Build(cfg config.Config, sheet *sprite.Sheet) (*engine.World, error) {
	world := scenes.Base(cfg)
	world.Ground = scenes.Ground(cfg)

	if len(cfg.Actors) > 0 && sheet == nil {
		return nil, fmt.Errorf("parade: %d actors configured but no sprite sheet", len(cfg.Actors))
	}

	for _, a := range cfg.Actors {
		anim, err := sheet.Animation(a.Sprite)
		if err != nil {
			return nil, fmt.Errorf("parade: actor %q: %w", a.Name, err)
		}
		if err := world.AddActor(a.Name, a.X, a.Y, anim); err != nil {
			return nil, fmt.Errorf("parade: %w", err)
		}
	}

	return world, nil
}

func init() {
	registry.Register(ID, func() registry.Scene {
		return New()
	})
}

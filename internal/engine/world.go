package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/palette"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

// Player is the single controllable pixel.
type Player struct {
	X, Y  int
	Color palette.Color
}

// Ground is a static background row.
type Ground struct {
	Row   int
	Color palette.Color
}

// Actor places an animation on the canvas.
type Actor struct {
	Name string
	X, Y int
	Anim *sprite.Animation
}

// Bounds returns the pixel area covered by the actor's current frame.
func (a *Actor) Bounds() core.Rect {
	f := a.Anim.Current()
	return core.NewRect(a.X, a.Y, f.Width(), f.Height())
}

// World is the entity registry owned by a Driver: the player, optional
// ground, and named actors kept in insertion (draw) order.
type World struct {
	width  int
	height int

	Player Player
	Ground *Ground

	actors []*Actor
	byName map[string]*Actor
}

// NewWorld creates a world for a canvas of the given size with the player
// centred.
func NewWorld(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		Player: Player{X: width / 2, Y: height / 2, Color: palette.Red},
		byName: make(map[string]*Actor),
	}
}

// Width returns the world width in pixels.
func (w *World) Width() int {
	return w.width
}

// Height returns the world height in pixels.
func (w *World) Height() int {
	return w.height
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Rect {
	return core.NewRect(0, 0, w.width, w.height)
}

// AddActor registers an animation at (x, y). Names must be unique.
func (w *World) AddActor(name string, x, y int, anim *sprite.Animation) error {
	if anim == nil {
		return fmt.Errorf("engine: actor %q has no animation", name)
	}
	if _, exists := w.byName[name]; exists {
		return fmt.Errorf("engine: actor %q already registered", name)
	}

	a := &Actor{Name: name, X: x, Y: y, Anim: anim}
	w.actors = append(w.actors, a)
	w.byName[name] = a
	return nil
}

// Actors returns the actors in draw order.
func (w *World) Actors() []*Actor {
	return w.actors
}

// PlacePlayer moves the player to (x, y), clamped to the world.
func (w *World) PlacePlayer(x, y int) {
	w.Player.X = core.Clamp(x, 0, w.width-1)
	w.Player.Y = core.Clamp(y, 0, w.height-1)
}

// MovePlayer shifts the player, saturating at the world edges.
func (w *World) MovePlayer(dx, dy int) {
	w.PlacePlayer(w.Player.X+dx, w.Player.Y+dy)
}

// Advance steps every animation by dt.
func (w *World) Advance(dt time.Duration) {
	for _, a := range w.actors {
		a.Anim.Update(dt)
	}
}

// Paint redraws the world: background first, then actors, then the player.
func (w *World) Paint(c *canvas.Canvas) {
	c.Clear()

	if w.Ground != nil && palette.Visible(w.Ground.Color) {
		c.FillRow(w.Ground.Row, w.Ground.Color)
	}

	view := w.Bounds()
	for _, a := range w.actors {
		if !view.Intersects(a.Bounds()) {
			continue
		}
		c.DrawSprite(a.X, a.Y, a.Anim.Current())
	}

	if palette.Visible(w.Player.Color) && view.Contains(w.Player.X, w.Player.Y) {
		c.Set(w.Player.X, w.Player.Y, w.Player.Color)
	}
}

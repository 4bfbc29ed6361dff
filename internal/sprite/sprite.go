// Package sprite builds immutable pixel patterns from ASCII art and steps
// them through time as frame animations.
package sprite

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

// Sprite construction errors.
var (
	ErrEmptySprite = errors.New("sprite: pattern has no rows")
	ErrRaggedRows  = errors.New("sprite: rows have different widths")
)

// Sprite is a fixed grid of colors. Transparent cells are not painted.
// A Sprite never changes after New returns, so it can be shared freely.
type Sprite struct {
	width  int
	height int
	cells  [][]palette.Color
}

// New builds a sprite from ASCII art rows. Each rune is looked up in colors;
// runes missing from the map become transparent.
func New(rows []string, colors map[rune]palette.Color) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySprite
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrEmptySprite)
	}

	s := &Sprite{
		width:  width,
		height: len(rows),
		cells:  make([][]palette.Color, len(rows)),
	}

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d runes, expected %d", ErrRaggedRows, y, n, width)
		}

		line := make([]palette.Color, 0, width)
		for _, r := range row {
			color, ok := colors[r]
			if !ok {
				color = palette.Transparent
			}
			line = append(line, color)
		}
		s.cells[y] = line
	}

	return s, nil
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// At returns the color at (x, y), or Transparent outside the sprite.
func (s *Sprite) At(x, y int) palette.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return palette.Transparent
	}
	return s.cells[y][x]
}

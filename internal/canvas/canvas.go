// Package canvas provides the pixel buffer the renderer reads from.
// Games draw into it with simple color operations while the glyph renderer
// decides how pixels become terminal cells.
package canvas

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

// ErrInvalidSize is returned when a canvas dimension is not positive.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

// Pattern is a rectangular block of colors that can be composited onto a
// canvas. Transparent cells leave the canvas untouched.
type Pattern interface {
	Width() int
	Height() int
	At(x, y int) palette.Color
}

// Canvas is a 2D pixel grid addressed as pixels[row][col].
type Canvas struct {
	width  int
	height int
	empty  palette.Color
	pixels [][]palette.Color
}

// New creates a canvas filled with the given empty color.
func New(width, height int, empty palette.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, width, height)
	}

	c := &Canvas{
		width:  width,
		height: height,
		empty:  empty,
	}
	c.pixels = make([][]palette.Color, height)
	for y := range c.pixels {
		c.pixels[y] = make([]palette.Color, width)
	}
	c.Clear()
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Empty returns the color Clear resets pixels to.
func (c *Canvas) Empty() palette.Color {
	return c.empty
}

// Clear resets every pixel to the empty color in place.
func (c *Canvas) Clear() {
	for y := range c.pixels {
		row := c.pixels[y]
		for x := range row {
			row[x] = c.empty
		}
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set paints a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, color palette.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.pixels[y][x] = color
}

// Get returns the pixel at (x, y).
// Returns Transparent for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) palette.Color {
	if !c.InBounds(x, y) {
		return palette.Transparent
	}
	return c.pixels[y][x]
}

// FillRow paints an entire row. Rows outside the canvas are ignored.
func (c *Canvas) FillRow(y int, color palette.Color) {
	if y < 0 || y >= c.height {
		return
	}
	row := c.pixels[y]
	for x := range row {
		row[x] = color
	}
}

// DrawSprite composites p with its top-left corner at (x, y). Only visible
// pattern cells that land inside the canvas are written; there is no blending.
func (c *Canvas) DrawSprite(x, y int, p Pattern) {
	for py := 0; py < p.Height(); py++ {
		for px := 0; px < p.Width(); px++ {
			color := p.At(px, py)
			if !palette.Visible(color) {
				continue
			}
			c.Set(x+px, y+py, color)
		}
	}
}

package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/palette"
)

// upperHalfBlock shows its foreground in the top half of the cell and its
// background in the bottom half.
const upperHalfBlock = '▀'

// ErrOddHeight is returned when a half-block canvas has an odd pixel height.
var ErrOddHeight = errors.New("glyph: half-block canvas height must be even")

// HalfBlock packs two vertically stacked pixels into one cell: the top pixel
// is the foreground, the bottom pixel the background.
type HalfBlock struct {
	border border
}

// NewHalfBlock creates a half-block strategy with the given border color.
func NewHalfBlock(borderColor palette.Color) *HalfBlock {
	return &HalfBlock{border: border{color: borderColor}}
}

// Mode returns ModeHalfBlock.
func (h *HalfBlock) Mode() Mode {
	return ModeHalfBlock
}

// Validate requires a positive size and an even height.
func (h *HalfBlock) Validate(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	if height%2 != 0 {
		return fmt.Errorf("%w (got %d)", ErrOddHeight, height)
	}
	return nil
}

// Empty returns Black, which is also what transparent pixels render as.
func (h *HalfBlock) Empty() palette.Color {
	return palette.Black
}

// Cells returns one column per pixel and one row per pixel pair.
func (h *HalfBlock) Cells(width, height int) (cols, rows int) {
	return width, height / 2
}

// Render converts the canvas to bordered half-block lines.
func (h *HalfBlock) Render(c *canvas.Canvas) []Line {
	cols, rows := h.Cells(c.Width(), c.Height())

	interior := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		sb.Grow(cols * 48)
		for x := 0; x < cols; x++ {
			top := solid(c.Get(x, row*2))
			bottom := solid(c.Get(x, row*2+1))
			sb.WriteString(palette.Fg(top))
			sb.WriteString(palette.Bg(bottom))
			sb.WriteRune(upperHalfBlock)
			sb.WriteString(palette.Reset)
		}
		interior[row] = sb.String()
	}
	return h.border.frame(cols, interior)
}

// solid substitutes Black for transparent pixels so no transparent escape
// is ever produced.
func solid(c palette.Color) palette.Color {
	if !palette.Visible(c) {
		return palette.Black
	}
	return c
}

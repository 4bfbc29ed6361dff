package glyph

import (
	"strings"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/palette"
)

// Braille cell geometry.
const (
	brailleBase = 0x2800
	brailleW    = 2
	brailleH    = 4
)

// brailleBits maps a sub-pixel at [dy][dx] to its dot bit. Dots 1-3 run
// down the left column, 4-6 down the right, 7 and 8 form the bottom row.
var brailleBits = [brailleH][brailleW]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Braille packs 2x4 pixel blocks into braille characters. A glyph takes the
// color of its first lit sub-pixel in row-major order.
type Braille struct {
	border border
}

// NewBraille creates a braille strategy with the given border color.
func NewBraille(borderColor palette.Color) *Braille {
	return &Braille{border: border{color: borderColor}}
}

// Mode returns ModeBraille.
func (b *Braille) Mode() Mode {
	return ModeBraille
}

// Validate accepts any positive size. Partial trailing blocks render with
// their missing sub-pixels unlit.
func (b *Braille) Validate(width, height int) error {
	return validateSize(width, height)
}

// Empty returns Transparent: unlit dots are simply absent pixels.
func (b *Braille) Empty() palette.Color {
	return palette.Transparent
}

// Cells returns the glyph grid size for a canvas.
func (b *Braille) Cells(width, height int) (cols, rows int) {
	return (width + brailleW - 1) / brailleW, (height + brailleH - 1) / brailleH
}

// Render converts the canvas to bordered braille lines.
func (b *Braille) Render(c *canvas.Canvas) []Line {
	cols, rows := b.Cells(c.Width(), c.Height())

	interior := make([]string, rows)
	for by := 0; by < rows; by++ {
		interior[by] = b.renderRow(c, by, cols)
	}
	return b.border.frame(cols, interior)
}

// renderRow emits one row of glyphs. Neighbouring glyphs with the same color
// share one escape and reset; blank glyphs are bare spaces.
func (b *Braille) renderRow(c *canvas.Canvas, by, cols int) string {
	var sb strings.Builder
	sb.Grow(cols * 4)

	open := palette.Transparent
	for bx := 0; bx < cols; bx++ {
		ch, color := brailleCell(c, bx, by)
		if color != open {
			if open != palette.Transparent {
				sb.WriteString(palette.Reset)
			}
			sb.WriteString(palette.Fg(color))
			open = color
		}
		sb.WriteRune(ch)
	}
	if open != palette.Transparent {
		sb.WriteString(palette.Reset)
	}
	return sb.String()
}

// brailleCell packs the block at glyph position (bx, by). Pixels outside the
// canvas count as unlit.
func brailleCell(c *canvas.Canvas, bx, by int) (rune, palette.Color) {
	x0, y0 := bx*brailleW, by*brailleH

	var mask uint8
	color := palette.Transparent
	for dy := 0; dy < brailleH; dy++ {
		for dx := 0; dx < brailleW; dx++ {
			px := c.Get(x0+dx, y0+dy)
			if !palette.Visible(px) {
				continue
			}
			mask |= 1 << brailleBits[dy][dx]
			if color == palette.Transparent {
				color = px
			}
		}
	}

	if mask == 0 {
		return ' ', palette.Transparent
	}
	return rune(brailleBase + int(mask)), color
}

package glyph

import (
	"strings"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

// Box drawing characters for the playfield frame.
const (
	borderTopLeft     = '╔'
	borderTopRight    = '╗'
	borderBottomLeft  = '╚'
	borderBottomRight = '╝'
	borderHorizontal  = '═'
	borderVertical    = '║'
)

// border draws the double-line frame around the interior.
type border struct {
	color palette.Color
}

// paint wraps s in the border color. A transparent border is drawn
// without any escape.
func (b border) paint(s string) string {
	if !palette.Visible(b.color) {
		return s
	}
	return palette.Fg(b.color) + s + palette.Reset
}

func (b border) horizontal(left, right rune, cols int) string {
	var sb strings.Builder
	sb.Grow(cols*3 + 6)
	sb.WriteRune(left)
	for i := 0; i < cols; i++ {
		sb.WriteRune(borderHorizontal)
	}
	sb.WriteRune(right)
	return b.paint(sb.String())
}

// frame surrounds the interior rows with the border, assigning row numbers
// from 0 for the top edge.
func (b border) frame(cols int, interior []string) []Line {
	side := b.paint(string(borderVertical))

	lines := make([]Line, 0, len(interior)+2)
	lines = append(lines, Line{Y: 0, Text: b.horizontal(borderTopLeft, borderTopRight, cols)})
	for i, row := range interior {
		lines = append(lines, Line{Y: i + 1, Text: side + row + side})
	}
	lines = append(lines, Line{
		Y:    len(interior) + 1,
		Text: b.horizontal(borderBottomLeft, borderBottomRight, cols),
	})
	return lines
}

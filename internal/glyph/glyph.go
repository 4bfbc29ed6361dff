// Package glyph turns a pixel canvas into terminal lines by packing several
// pixels into each character cell.
//
// Two strategies are available: Braille packs a 2x4 block of pixels into one
// braille character with a single color, HalfBlock packs two stacked pixels
// into an upper-half-block character with independent foreground and
// background colors. Both wrap the playfield in a box-drawing border.
package glyph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/ansi"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/palette"
)

// Mode names a packing strategy.
type Mode string

const (
	ModeBraille   Mode = "braille"
	ModeHalfBlock Mode = "halfblock"
)

// ErrUnknownMode is returned by New for an unrecognized mode.
var ErrUnknownMode = errors.New("glyph: unknown render mode")

// Line is one whole terminal row of output. X is always 0; Y is the
// destination row relative to the top border.
type Line struct {
	X    int
	Y    int
	Text string
}

// Width returns the number of visible cells in the line, ignoring escapes.
func (l Line) Width() int {
	return ansi.PrintableRuneWidth(l.Text)
}

// Strategy converts a canvas into bordered terminal lines.
type Strategy interface {
	// Mode identifies the strategy.
	Mode() Mode

	// Validate reports whether a canvas of the given size can be rendered.
	Validate(width, height int) error

	// Empty is the color a cleared canvas should hold for this strategy.
	Empty() palette.Color

	// Cells returns the interior size in character cells for a canvas of
	// the given pixel size, excluding the border.
	Cells(width, height int) (cols, rows int)

	// Render produces the border and interior lines, top to bottom.
	Render(c *canvas.Canvas) []Line
}

// New returns the strategy for mode with the given border color.
func New(mode Mode, border palette.Color) (Strategy, error) {
	switch mode {
	case ModeBraille:
		return NewBraille(border), nil
	case ModeHalfBlock:
		return NewHalfBlock(border), nil
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrUnknownMode, mode, ModeBraille, ModeHalfBlock)
	}
}

// Modes lists the supported strategies.
func Modes() []Mode {
	return []Mode{ModeBraille, ModeHalfBlock}
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", canvas.ErrInvalidSize, width, height)
	}
	return nil
}

// Text joins lines into a single string, placing each at its row.
// Missing rows are left blank.
func Text(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}

	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	var sb strings.Builder
	row := sorted[0].Y
	for i, l := range sorted {
		if i > 0 {
			for ; row < l.Y; row++ {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(l.Text)
		row = l.Y
	}
	return sb.String()
}

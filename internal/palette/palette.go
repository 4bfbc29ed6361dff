// Package palette defines the fixed color palette used by the pixel canvas and
// the ANSI truecolor escapes that paint it.
//
// The palette is a closed table: every Color constant has exactly one entry,
// checked when the package initializes.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Color is an index into the palette.
type Color uint8

// Palette colors. Transparent marks "no paint" and is never drawn.
const (
	Black Color = iota
	DarkBlue
	DarkPurple
	DarkGreen
	Brown
	DarkGray
	LightGray
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Pink
	Peach
	Transparent

	count // Sentinel, number of table entries
)

// Reset clears every SGR attribute. It terminates each colored run.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

type entry struct {
	name string
	hex  string
}

// table is the single source of truth for names and RGB values.
var table = [count]entry{
	Black:       {"black", "#000000"},
	DarkBlue:    {"dark-blue", "#1D2B53"},
	DarkPurple:  {"dark-purple", "#7E2553"},
	DarkGreen:   {"dark-green", "#008751"},
	Brown:       {"brown", "#AB5236"},
	DarkGray:    {"dark-gray", "#5F574F"},
	LightGray:   {"light-gray", "#C2C3C7"},
	White:       {"white", "#FFF1E8"},
	Red:         {"red", "#FF004D"},
	Orange:      {"orange", "#FFA300"},
	Yellow:      {"yellow", "#FFEC27"},
	Green:       {"green", "#00E436"},
	Blue:        {"blue", "#29ADFF"},
	Indigo:      {"indigo", "#83769C"},
	Pink:        {"pink", "#FF77A8"},
	Peach:       {"peach", "#FFCCAA"},
	Transparent: {"transparent", "#000000"},
}

// Precomputed per color so rendering never formats escapes.
var (
	rgbs [count][3]uint8
	fgs  [count]string
	bgs  [count]string
)

func init() {
	for i, e := range table {
		if e.name == "" || e.hex == "" {
			panic(fmt.Sprintf("palette: color %d has no table entry", i))
		}
		col, err := colorful.Hex(e.hex)
		if err != nil {
			panic(fmt.Sprintf("palette: bad hex %q for %s: %v", e.hex, e.name, err))
		}
		r, g, b := col.RGB255()
		rgbs[i] = [3]uint8{r, g, b}

		if Color(i) == Transparent {
			continue
		}
		fgs[i] = sequence(termenv.Foreground, r, g, b)
		bgs[i] = sequence(termenv.Background, r, g, b)
	}
}

func sequence(layer string, r, g, b uint8) string {
	return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, layer, r, g, b)
}

// valid folds out-of-range values onto Transparent so every lookup is total.
func (c Color) valid() Color {
	if c >= count {
		return Transparent
	}
	return c
}

// RGB returns the color's red, green and blue components.
func RGB(c Color) (r, g, b uint8) {
	v := rgbs[c.valid()]
	return v[0], v[1], v[2]
}

// Hex returns the color as a #RRGGBB string.
func Hex(c Color) string {
	return table[c.valid()].hex
}

// Fg returns the truecolor foreground escape for c.
// Transparent has no escape; the empty string is returned.
func Fg(c Color) string {
	return fgs[c.valid()]
}

// Bg returns the truecolor background escape for c.
// Transparent has no escape; the empty string is returned.
func Bg(c Color) string {
	return bgs[c.valid()]
}

// Visible reports whether c paints anything.
func Visible(c Color) bool {
	return c.valid() != Transparent
}

// String returns the palette name of the color.
func (c Color) String() string {
	return table[c.valid()].name
}

// Parse converts a palette name to a Color. Matching ignores case, and
// underscores or spaces are accepted in place of dashes.
func Parse(name string) (Color, bool) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, e := range table {
		if e.name == norm {
			return Color(i), true
		}
	}
	return Transparent, false
}

// Opaque returns the drawable colors in palette order.
func Opaque() []Color {
	colors := make([]Color, 0, int(count)-1)
	for c := Black; c < Transparent; c++ {
		colors = append(colors, c)
	}
	return colors
}

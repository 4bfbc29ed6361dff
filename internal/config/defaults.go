package config

import (
	"embed"

	"github.com/vovakirdan/pixelterm/internal/glyph"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// DefaultConfig returns the hardcoded configuration used when a scene has
// no embedded YAML: the classic 40x20 braille playfield.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Mode:   string(glyph.ModeBraille),
			FPS:    60,
			Border: "green",
		},
		Canvas: CanvasConfig{
			Width:  40,
			Height: 20,
		},
		Player: PlayerConfig{
			Color:  "red",
			StartX: Centre,
			StartY: Centre,
		},
		Ground: GroundConfig{
			Enabled: false,
			Color:   "brown",
			Row:     Centre,
		},
	}
}

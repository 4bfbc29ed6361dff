package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/pixelterm/internal/palette"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

// SheetConfig is the YAML form of a sprite sheet.
type SheetConfig struct {
	Sprites []SpriteConfig `yaml:"sprites"`
}

// SpriteConfig is one named animation. Each frame is a list of ASCII rows;
// Colors maps single characters to palette names.
type SpriteConfig struct {
	Name    string            `yaml:"name"`
	FrameMS int               `yaml:"frame_ms"`
	Colors  map[string]string `yaml:"colors"`
	Frames  [][]string        `yaml:"frames"`
}

// BuildSheet converts the YAML sheet into animations.
func BuildSheet(cfg SheetConfig) (*sprite.Sheet, error) {
	sheet := sprite.NewSheet()

	for _, sc := range cfg.Sprites {
		colors, err := sc.colorMap()
		if err != nil {
			return nil, err
		}
		if sc.FrameMS <= 0 {
			return nil, fmt.Errorf("config: sprite %q: frame_ms must be positive", sc.Name)
		}

		frames := make([]*sprite.Sprite, 0, len(sc.Frames))
		for i, rows := range sc.Frames {
			s, err := sprite.New(rows, colors)
			if err != nil {
				return nil, fmt.Errorf("config: sprite %q frame %d: %w", sc.Name, i, err)
			}
			frames = append(frames, s)
		}

		if err := sheet.Add(sc.Name, frames, time.Duration(sc.FrameMS)*time.Millisecond); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return sheet, nil
}

func (sc SpriteConfig) colorMap() (map[rune]palette.Color, error) {
	colors := make(map[rune]palette.Color, len(sc.Colors))
	for key, name := range sc.Colors {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("config: sprite %q: color key %q must be one character", sc.Name, key)
		}
		color, ok := palette.Parse(name)
		if !ok {
			return nil, fmt.Errorf("config: sprite %q: unknown color %q", sc.Name, name)
		}
		r, _ := utf8.DecodeRuneInString(key)
		colors[r] = color
	}
	return colors, nil
}

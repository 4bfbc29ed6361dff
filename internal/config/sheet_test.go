package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

func TestLoadDefaultSheet(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadSheet("")
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", source)
	}

	sheet, err := BuildSheet(cfg)
	if err != nil {
		t.Fatalf("BuildSheet failed: %v", err)
	}
	for _, name := range []string{"walker", "heart", "flag"} {
		if !sheet.Has(name) {
			t.Errorf("default sheet is missing %q", name)
		}
	}

	walker, _ := sheet.Animation("walker")
	if walker.FrameCount() != 3 {
		t.Errorf("walker has %d frames, expected 3", walker.FrameCount())
	}
	if walker.FrameDuration() != 180*time.Millisecond {
		t.Errorf("walker frame duration = %v", walker.FrameDuration())
	}
	if walker.Current().At(2, 0) != palette.Peach {
		t.Errorf("walker (2, 0) = %s, expected peach", walker.Current().At(2, 0))
	}
}

func TestLoadCustomSheetReplacesDefault(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	data := `sprites:
  - name: dot
    frame_ms: 100
    colors: {X: orange}
    frames:
      - ["X"]
      - ["."]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadSheet(path)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}
	sheet, err := BuildSheet(cfg)
	if err != nil {
		t.Fatalf("BuildSheet failed: %v", err)
	}
	if names := sheet.Names(); len(names) != 1 || names[0] != "dot" {
		t.Errorf("Names() = %v, expected only [dot]", names)
	}
}

func TestBuildSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpriteConfig
	}{
		{"bad color", SpriteConfig{Name: "a", FrameMS: 10, Colors: map[string]string{"X": "mauve"}, Frames: [][]string{{"X"}}}},
		{"long key", SpriteConfig{Name: "a", FrameMS: 10, Colors: map[string]string{"XY": "red"}, Frames: [][]string{{"X"}}}},
		{"no duration", SpriteConfig{Name: "a", Frames: [][]string{{"X"}}}},
		{"ragged frame", SpriteConfig{Name: "a", FrameMS: 10, Frames: [][]string{{"XX", "X"}}}},
		{"no frames", SpriteConfig{Name: "a", FrameMS: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildSheet(SheetConfig{Sprites: []SpriteConfig{tc.cfg}}); err == nil {
				t.Error("expected BuildSheet to fail")
			}
		})
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pixelterm/internal/glyph"
	"github.com/vovakirdan/pixelterm/internal/palette"
)

// isolate points the user config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("dot", "")
	if err != nil {
		t.Fatalf("Load(dot) failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Mode() != glyph.ModeBraille {
		t.Errorf("Mode() = %q, expected braille", cfg.Mode())
	}
	if cfg.Canvas.Width != 40 || cfg.Canvas.Height != 20 {
		t.Errorf("canvas = %dx%d, expected 40x20", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.BorderColor() != palette.Green || cfg.PlayerColor() != palette.Red {
		t.Errorf("colors = %s/%s, expected green/red", cfg.BorderColor(), cfg.PlayerColor())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded dot config invalid: %v", err)
	}

	parade, _, err := Load("parade", "")
	if err != nil {
		t.Fatalf("Load(parade) failed: %v", err)
	}
	if err := parade.Validate(); err != nil {
		t.Errorf("embedded parade config invalid: %v", err)
	}
	if len(parade.Actors) == 0 {
		t.Error("parade should define actors")
	}
}

func TestLoadUnknownSceneFallsBackToBuiltin(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("nope", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != SourceBuiltin {
		t.Errorf("source = %q, expected %q", source, SourceBuiltin)
	}
	if cfg.Canvas != DefaultConfig().Canvas {
		t.Errorf("canvas = %+v, expected defaults", cfg.Canvas)
	}
}

func TestLoadCustomPathOverlays(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "render:\n  mode: halfblock\ncanvas:\n  height: 24\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("dot", path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Mode() != glyph.ModeHalfBlock {
		t.Errorf("Mode() = %q, expected halfblock", cfg.Mode())
	}
	// Keys not in the file keep their embedded values.
	if cfg.Canvas.Width != 40 || cfg.Canvas.Height != 24 || cfg.Render.FPS != 60 {
		t.Errorf("overlay lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, _, err := Load("dot", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("render: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load("dot", path); err == nil {
		t.Error("expected parse error for broken custom config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".pixelterm", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dot.yaml"), []byte("render:\n  fps: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("dot", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.HasPrefix(source, home) {
		t.Errorf("source = %q, expected the user config", source)
	}
	if cfg.Render.FPS != 24 {
		t.Errorf("fps = %d, expected 24", cfg.Render.FPS)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.Render.Mode = "halfblock"
	bad.Canvas.Height = 21
	bad.Render.FPS = 0
	bad.Player.Color = "magenta"
	bad.Actors = []ActorConfig{{Name: "a", Sprite: "walker"}, {Name: "a", Sprite: "walker"}, {}}

	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if !errors.Is(err, glyph.ErrOddHeight) {
		t.Errorf("error should include ErrOddHeight: %v", err)
	}
	for _, want := range []string{"fps", "magenta", "duplicate actor", "actors[2]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}

	unknown := DefaultConfig()
	unknown.Render.Mode = "sixel"
	if err := unknown.Validate(); !errors.Is(err, glyph.ErrUnknownMode) {
		t.Errorf("Validate() = %v, expected ErrUnknownMode", err)
	}
}

func TestSentinels(t *testing.T) {
	cfg := DefaultConfig()
	if x, y := cfg.PlayerStart(); x != 20 || y != 10 {
		t.Errorf("PlayerStart() = (%d, %d), expected (20, 10)", x, y)
	}
	if cfg.GroundRow() != 19 {
		t.Errorf("GroundRow() = %d, expected 19", cfg.GroundRow())
	}

	cfg.Player.StartX, cfg.Player.StartY = 3, 4
	cfg.Ground.Row = 7
	if x, y := cfg.PlayerStart(); x != 3 || y != 4 {
		t.Errorf("PlayerStart() = (%d, %d), expected (3, 4)", x, y)
	}
	if cfg.GroundRow() != 7 {
		t.Errorf("GroundRow() = %d, expected 7", cfg.GroundRow())
	}
}

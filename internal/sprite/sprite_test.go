package sprite

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

var testColors = map[rune]palette.Color{
	'R': palette.Red,
	'W': palette.White,
}

func mustSprite(t *testing.T, rows ...string) *Sprite {
	t.Helper()
	s, err := New(rows, testColors)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", rows, err)
	}
	return s
}

func TestNewSprite(t *testing.T) {
	s := mustSprite(t,
		".RR.",
		"RWWR",
		".RR.",
	)

	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.At(1, 0) != palette.Red {
		t.Errorf("At(1, 0) = %s, expected red", s.At(1, 0))
	}
	if s.At(1, 1) != palette.White {
		t.Errorf("At(1, 1) = %s, expected white", s.At(1, 1))
	}
	if s.At(0, 0) != palette.Transparent {
		t.Errorf("At(0, 0) = %s, unmapped rune should be transparent", s.At(0, 0))
	}
	if s.At(9, 9) != palette.Transparent {
		t.Error("At outside the sprite should be transparent")
	}
}

func TestNewSpriteCountsRunes(t *testing.T) {
	// Multi-byte runes count as one pixel each.
	s, err := New([]string{"é█", "ab"}, map[rune]palette.Color{'█': palette.Blue})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Width() != 2 {
		t.Errorf("Width() = %d, expected 2", s.Width())
	}
	if s.At(1, 0) != palette.Blue {
		t.Errorf("At(1, 0) = %s, expected blue", s.At(1, 0))
	}
}

func TestNewSpriteErrors(t *testing.T) {
	if _, err := New(nil, testColors); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("New(nil) error = %v, expected ErrEmptySprite", err)
	}
	if _, err := New([]string{""}, testColors); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("New(empty row) error = %v, expected ErrEmptySprite", err)
	}
	if _, err := New([]string{"RR", "R"}, testColors); !errors.Is(err, ErrRaggedRows) {
		t.Errorf("New(ragged) error = %v, expected ErrRaggedRows", err)
	}
}

func threeFrames(t *testing.T) []*Sprite {
	t.Helper()
	return []*Sprite{
		mustSprite(t, "R.."),
		mustSprite(t, ".R."),
		mustSprite(t, "..R"),
	}
}

func TestAnimationCatchUp(t *testing.T) {
	frame := 100 * time.Millisecond
	anim, err := NewAnimation("walk", threeFrames(t), frame)
	if err != nil {
		t.Fatalf("NewAnimation failed: %v", err)
	}

	anim.Update(frame*3 + frame/2)

	if anim.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0 after three advances", anim.Frame())
	}
	if anim.Accumulated() != frame/2 {
		t.Errorf("Accumulated() = %v, expected %v", anim.Accumulated(), frame/2)
	}
}

func TestAnimationStepwise(t *testing.T) {
	frame := 50 * time.Millisecond
	frames := threeFrames(t)
	anim, err := NewAnimation("walk", frames, frame)
	if err != nil {
		t.Fatalf("NewAnimation failed: %v", err)
	}

	anim.Update(frame / 2)
	if anim.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0 before a full duration", anim.Frame())
	}

	anim.Update(frame / 2)
	if anim.Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", anim.Frame())
	}
	if anim.Current() != frames[1] {
		t.Error("Current() should return the second frame")
	}

	anim.Update(0)
	anim.Update(-frame)
	if anim.Frame() != 1 {
		t.Errorf("non-positive elapsed changed the frame to %d", anim.Frame())
	}

	anim.Reset()
	if anim.Frame() != 0 || anim.Accumulated() != 0 {
		t.Error("Reset() should rewind to frame 0 with no accumulated time")
	}
}

func TestNewAnimationErrors(t *testing.T) {
	if _, err := NewAnimation("none", nil, time.Second); !errors.Is(err, ErrNoFrames) {
		t.Errorf("error = %v, expected ErrNoFrames", err)
	}
	if _, err := NewAnimation("zero", threeFrames(t), 0); !errors.Is(err, ErrFrameDuration) {
		t.Errorf("error = %v, expected ErrFrameDuration", err)
	}
	if _, err := NewAnimation("nil", []*Sprite{nil}, time.Second); err == nil {
		t.Error("expected error for nil frame")
	}
}

func TestSheetHandsOutIndependentAnimations(t *testing.T) {
	sheet := NewSheet()
	if err := sheet.Add("walk", threeFrames(t), 10*time.Millisecond); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := sheet.Add("walk", threeFrames(t), 10*time.Millisecond); err == nil {
		t.Error("expected duplicate Add to fail")
	}

	a, err := sheet.Animation("walk")
	if err != nil {
		t.Fatalf("Animation failed: %v", err)
	}
	b, _ := sheet.Animation("walk")

	a.Update(10 * time.Millisecond)
	if a.Frame() != 1 {
		t.Errorf("a.Frame() = %d, expected 1", a.Frame())
	}
	if b.Frame() != 0 {
		t.Errorf("b.Frame() = %d, instances must not share state", b.Frame())
	}

	if _, err := sheet.Animation("fly"); err == nil {
		t.Error("expected error for unknown animation")
	}
	if names := sheet.Names(); len(names) != 1 || names[0] != "walk" {
		t.Errorf("Names() = %v, expected [walk]", names)
	}
	if !sheet.Has("walk") || sheet.Has("fly") {
		t.Error("Has() mismatch")
	}
}

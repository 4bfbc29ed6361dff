package core

import "testing"

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
	}{
		{ActionLeft, -1, 0},
		{ActionRight, 1, 0},
		{ActionUp, 0, -1},
		{ActionDown, 0, 1},
		{ActionQuit, 0, 0},
		{ActionNone, 0, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.action.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.action, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestKeyEventString(t *testing.T) {
	if Key("left").String() != "left" {
		t.Errorf("Key(left).String() = %q", Key("left").String())
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameDuration() != 16666666 {
		t.Errorf("FrameDuration() at 60 fps = %v", cfg.FrameDuration())
	}

	cfg.TickRate = 0
	if cfg.FrameDuration() != DefaultConfig().FrameDuration() {
		t.Error("non-positive tick rate should fall back to 60 fps")
	}
}

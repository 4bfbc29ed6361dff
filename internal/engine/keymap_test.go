package engine

import (
	"testing"

	"github.com/vovakirdan/pixelterm/internal/core"
)

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		code string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"j", core.ActionDown},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"", core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.Action(core.Key(tc.code)); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.code, got, tc.want)
		}
	}
}

func TestDisabledBindingIgnored(t *testing.T) {
	km := DefaultKeyMap()
	km.Quit.SetEnabled(false)

	if got := km.Action(core.Key("q")); got != core.ActionNone {
		t.Errorf("Action(q) with quit disabled = %v, expected None", got)
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != 4 {
		t.Errorf("FullHelp() = %d groups, expected movement and quit", len(full))
	}
}

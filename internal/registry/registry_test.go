package registry

import (
	"testing"

	"github.com/vovakirdan/pixelterm/internal/config"
	"github.com/vovakirdan/pixelterm/internal/engine"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

type stubScene struct {
	id string
}

func (s stubScene) ID() string    { return s.id }
func (s stubScene) Title() string { return "Stub " + s.id }

func (s stubScene) Build(cfg config.Config, _ *sprite.Sheet) (*engine.World, error) {
	return engine.NewWorld(cfg.Canvas.Width, cfg.Canvas.Height), nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("registry-test-b", func() Scene { return stubScene{id: "registry-test-b"} })
	Register("registry-test-a", func() Scene { return stubScene{id: "registry-test-a"} })

	if !Exists("registry-test-a") {
		t.Fatal("Exists() = false after Register")
	}
	if Exists("registry-test-missing") {
		t.Error("Exists() = true for unregistered scene")
	}

	scene, err := Create("registry-test-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	world, err := scene.Build(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if world.Width() != 40 || world.Height() != 20 {
		t.Errorf("world = %dx%d, expected 40x20", world.Width(), world.Height())
	}

	if _, err := Create("registry-test-missing"); err == nil {
		t.Error("expected error creating unknown scene")
	}
}

func TestListSorted(t *testing.T) {
	Register("registry-list-z", func() Scene { return stubScene{id: "registry-list-z"} })
	Register("registry-list-m", func() Scene { return stubScene{id: "registry-list-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "registry-list-m" {
			found = true
			if info.Title != "Stub registry-list-m" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("registered scene missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-dup", func() Scene { return stubScene{id: "registry-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("registry-dup", func() Scene { return stubScene{id: "registry-dup"} })
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scene from an interactive menu",
	Long: `Start pixelterm in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
After a scene quits, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Q/Esc        - Quit

Examples:
  pixelterm menu
  pixelterm menu --fps 30
  pixelterm menu --backend raw`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend for scenes: tea or raw")
}

func runMenu(cmd *cobra.Command, _ []string) {
	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Menu loop
	last := ""
	for {
		result, err := tui.RunMenu(cfg, last)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		last = result.SceneID
		if err := playScene(cmd, result.SceneID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// pixelterm renders small pixel scenes in the terminal using braille or
// half-block glyphs with truecolor escapes.
//
// Usage:
//
//	pixelterm scenes             - List available scenes
//	pixelterm play <scene>       - Play a scene interactively
//	pixelterm menu               - Pick a scene from a menu
//	pixelterm snapshot <scene>   - Run a scene headless and print the frame
//	pixelterm sprites            - List (and preview) the sprite sheet
//	pixelterm palette            - Show the color palette
//
// Global flags:
//
//	--fps <rate>       - Override the scene's tick rate
//	--mode <mode>      - Override the glyph mode (braille, halfblock)
//	--config <path>    - Scene config YAML overlaid on the built-in one
//	--sprites <path>   - Sprite sheet YAML replacing the built-in one
//	--log-file <path>  - Write logs to a file (play discards them otherwise)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/pixelterm/internal/scenes/dot"
	_ "github.com/vovakirdan/pixelterm/internal/scenes/parade"
)

var (
	// Global flags
	flagFPS     int
	flagMode    string
	flagConfig  string
	flagSprites string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelterm",
	Short: "pixelterm - Pixel scenes rendered with terminal glyphs",
	Long: `pixelterm draws a pixel canvas in the terminal. Each character cell
packs either a 2x4 braille dot block or two half-block pixels, colored with
24-bit escapes.

Scene configs are looked up in this order: --config, then
~/.pixelterm/configs/<scene>.yaml, then ./configs/<scene>.yaml, then the
built-in defaults. Sprite sheets use sprites.yaml in the same places.

Available commands:
  scenes    - Show all available scenes
  play      - Play a scene
  menu      - Interactive scene picker
  snapshot  - Render a scene without a terminal
  sprites   - Show the sprite sheet
  palette   - Show the color palette

Examples:
  pixelterm scenes
  pixelterm play dot
  pixelterm play parade --backend raw
  pixelterm play dot --mode halfblock --fps 30
  pixelterm snapshot parade --ticks 10`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second), overrides the scene config")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Glyph mode: braille or halfblock, overrides the scene config")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(paletteCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/platform/rawterm"
	"github.com/vovakirdan/pixelterm/internal/platform/tui"
	"github.com/vovakirdan/pixelterm/internal/registry"
)

const (
	backendTea = "tea"
	backendRaw = "raw"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene",
	Long: `Start the frame loop for the specified scene.

Controls:
  Arrows/WASD/HJKL  - Move the pixel
  Ctrl+S            - Save a screenshot (tea backend)
  Q/Esc/Ctrl+C      - Quit

Backends:
  tea  - Bubble Tea program with a HUD and help footer (default)
  raw  - Raw-mode terminal, frames written with cursor moves

Examples:
  pixelterm play dot
  pixelterm play parade --backend raw
  pixelterm play dot --mode halfblock
  pixelterm play parade --config ./my-parade.yaml --log-file parade.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or raw")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'pixelterm scenes' to see available scenes.")
		os.Exit(1)
	}
	if flagBackend != backendTea && flagBackend != backendRaw {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want %q or %q)\n", flagBackend, backendTea, backendRaw)
		os.Exit(1)
	}

	if err := playScene(cmd, sceneID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playScene builds the scene and runs it on the selected backend until it
// quits or the process is interrupted.
func playScene(cmd *cobra.Command, sceneID string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := buildSession(cmd, sceneID, logger)
	if err != nil {
		return err
	}

	// Get terminal size to warn before taking over the screen
	rc := core.DefaultConfig()
	rc.TickRate = s.cfg.Render.FPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	cols, rows := s.driver.Strategy().Cells(s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	if cols+2 > rc.ScreenW || rows+2 > rc.ScreenH {
		logger.Warn("terminal smaller than the playfield",
			"need", fmt.Sprintf("%dx%d", cols+2, rows+2),
			"have", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))
	}
	rawterm.CheckProfile(os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch flagBackend {
	case backendRaw:
		runErr = s.driver.Run(ctx, rawterm.New(os.Stdin, os.Stdout, logger))
	default:
		runErr = tui.Run(ctx, s.driver, tui.Options{
			SceneID: s.scene.ID(),
			Title:   s.scene.Title(),
			Logger:  logger,
		})
	}
	logger.Info("session ended", "scene", sceneID, "ticks", s.driver.Ticks(), "reason", s.driver.StopReason())

	if runErr != nil {
		return fmt.Errorf("running scene: %w", runErr)
	}
	return nil
}

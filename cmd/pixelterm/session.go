package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelterm/internal/config"
	"github.com/vovakirdan/pixelterm/internal/engine"
	"github.com/vovakirdan/pixelterm/internal/glyph"
	"github.com/vovakirdan/pixelterm/internal/registry"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

// session is a scene ready to run.
type session struct {
	scene  registry.Scene
	cfg    config.Config
	driver *engine.Driver
}

// newLogger builds the CLI logger. Interactive commands own the terminal,
// so without --log-file their logs are discarded. The returned close
// function releases the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelterm",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSheet loads and builds the sprite sheet.
func loadSheet(logger *log.Logger) (*sprite.Sheet, error) {
	sheetCfg, source, err := config.LoadSheet(flagSprites)
	if err != nil {
		return nil, err
	}
	logger.Debug("sprite sheet loaded", "source", source, "sprites", len(sheetCfg.Sprites))

	return config.BuildSheet(sheetCfg)
}

// buildSession resolves the scene, merges config and flags, and creates the
// driver. Flags only override the config when given explicitly.
func buildSession(cmd *cobra.Command, sceneID string, logger *log.Logger) (*session, error) {
	scene, err := registry.Create(sceneID)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.Load(sceneID, flagConfig)
	if err != nil {
		return nil, err
	}
	if source == config.SourceBuiltin {
		logger.Warn("no config for scene, using built-in defaults", "scene", sceneID)
	} else {
		logger.Debug("config loaded", "scene", sceneID, "source", source)
	}

	if cmd.Flags().Changed("fps") {
		cfg.Render.FPS = flagFPS
	}
	if cmd.Flags().Changed("mode") {
		cfg.Render.Mode = flagMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for %s:\n%w", sceneID, err)
	}

	sheet, err := loadSheet(logger)
	if err != nil {
		return nil, err
	}

	world, err := scene.Build(cfg, sheet)
	if err != nil {
		return nil, err
	}

	strategy, err := glyph.New(cfg.Mode(), cfg.BorderColor())
	if err != nil {
		return nil, err
	}

	driver, err := engine.New(world, engine.Options{
		Strategy: strategy,
		TickRate: cfg.Render.FPS,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &session{scene: scene, cfg: cfg, driver: driver}, nil
}

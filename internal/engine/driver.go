// Package engine runs the fixed-timestep frame loop: it applies input to the
// world, advances animations, repaints the canvas and hands the rendered
// lines to a terminal.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/glyph"
)

// maxEventsPerTick bounds one input drain; the rest stay queued.
const maxEventsPerTick = 256

// State is the driver lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal is the I/O service the driver renders to.
type Terminal interface {
	// Enter switches the terminal into game mode (raw input, hidden cursor).
	Enter() error

	// Restore undoes Enter. Run calls it exactly once.
	Restore() error

	// Poll returns the next pending key event without blocking.
	// ok is false when nothing is pending.
	Poll() (ev core.KeyEvent, ok bool, err error)

	// WriteLines draws each line at its row.
	WriteLines(lines []glyph.Line) error
}

// Options configures a Driver.
type Options struct {
	Strategy glyph.Strategy
	TickRate int // Frames per second (default 60)
	Keys     *KeyMap
	Logger   *log.Logger

	// Clock and sleep hooks, replaced in tests.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Driver owns the world, canvas and glyph strategy for one session. It is
// not safe for concurrent use.
type Driver struct {
	world    *World
	canvas   *canvas.Canvas
	strategy glyph.Strategy
	keys     KeyMap
	frame    time.Duration
	logger   *log.Logger
	now      func() time.Time
	sleep    func(time.Duration)

	state  State
	reason string
	ticks  uint64
}

// New creates a driver for world. The canvas size is validated against the
// strategy here so rendering itself cannot fail.
func New(world *World, opts Options) (*Driver, error) {
	if world == nil {
		return nil, errors.New("engine: world is nil")
	}
	if opts.Strategy == nil {
		return nil, errors.New("engine: no glyph strategy")
	}
	if err := opts.Strategy.Validate(world.Width(), world.Height()); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	c, err := canvas.New(world.Width(), world.Height(), opts.Strategy.Empty())
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	d := &Driver{
		world:    world,
		canvas:   c,
		strategy: opts.Strategy,
		keys:     DefaultKeyMap(),
		frame:    core.RuntimeConfig{TickRate: opts.TickRate}.FrameDuration(),
		logger:   opts.Logger,
		now:      opts.Now,
		sleep:    opts.Sleep,
		state:    Running,
	}
	if opts.Keys != nil {
		d.keys = *opts.Keys
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	return d, nil
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// StopReason returns why the driver stopped, or "" while running.
func (d *Driver) StopReason() string {
	return d.reason
}

// Stop moves the driver to Stopped. The current frame still completes.
func (d *Driver) Stop(reason string) {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	d.reason = reason
	d.logger.Info("driver stopped", "reason", reason, "ticks", d.ticks)
}

// World returns the driven world.
func (d *Driver) World() *World {
	return d.world
}

// Canvas returns the canvas painted by the last Step.
func (d *Driver) Canvas() *canvas.Canvas {
	return d.canvas
}

// Strategy returns the glyph strategy.
func (d *Driver) Strategy() glyph.Strategy {
	return d.strategy
}

// Keys returns the active key bindings.
func (d *Driver) Keys() KeyMap {
	return d.keys
}

// FrameDuration returns the target frame time.
func (d *Driver) FrameDuration() time.Duration {
	return d.frame
}

// Ticks returns the number of completed steps.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// HandleKey applies one key event to the world.
func (d *Driver) HandleKey(ev core.KeyEvent) {
	action := d.keys.Action(ev)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		d.Stop("quit key " + ev.Code)
	default:
		d.world.MovePlayer(action.Delta())
	}
}

// Step runs one frame without any terminal I/O: apply input, advance
// animations by one nominal frame, repaint and render.
func (d *Driver) Step(events []core.KeyEvent) []glyph.Line {
	for _, ev := range events {
		d.HandleKey(ev)
	}

	d.world.Advance(d.frame)
	d.world.Paint(d.canvas)
	d.ticks++

	return d.strategy.Render(d.canvas)
}

// Run drives term until a quit key, an I/O failure or ctx cancellation.
// term.Restore is called exactly once, whatever the outcome.
func (d *Driver) Run(ctx context.Context, term Terminal) (err error) {
	if d.state != Running {
		return nil
	}

	defer func() {
		if rerr := term.Restore(); rerr != nil {
			d.logger.Error("terminal restore failed", "error", rerr)
			if err == nil {
				err = fmt.Errorf("engine: restore terminal: %w", rerr)
			}
		}
	}()

	if err := term.Enter(); err != nil {
		d.Stop("terminal setup failed")
		return fmt.Errorf("engine: enter terminal: %w", err)
	}

	d.logger.Info("driver started",
		"mode", d.strategy.Mode(),
		"canvas", fmt.Sprintf("%dx%d", d.world.Width(), d.world.Height()),
		"frame", d.frame,
		"actors", len(d.world.Actors()),
	)

	for d.state == Running {
		start := d.now()

		events, perr := d.drain(term)
		if perr != nil {
			d.Stop("input failure")
			d.logger.Error("poll failed", "error", perr)
			return fmt.Errorf("engine: poll input: %w", perr)
		}
		if ctx.Err() != nil {
			d.Stop("cancelled")
		}

		lines := d.Step(events)
		if werr := term.WriteLines(lines); werr != nil {
			d.Stop("output failure")
			d.logger.Error("write failed", "error", werr)
			return fmt.Errorf("engine: write frame: %w", werr)
		}

		if d.state != Running {
			break
		}

		// Overruns skip the sleep entirely.
		if wait := d.frame - d.now().Sub(start); wait > 0 {
			d.sleep(wait)
		}
	}

	return nil
}

// drain collects every pending event without blocking.
func (d *Driver) drain(term Terminal) ([]core.KeyEvent, error) {
	var events []core.KeyEvent
	for len(events) < maxEventsPerTick {
		ev, ok, err := term.Poll()
		if err != nil {
			return events, err
		}
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return events, nil
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/engine"
	"github.com/vovakirdan/pixelterm/internal/glyph"
)

// Options configures the Bubble Tea backend.
type Options struct {
	SceneID       string
	Title         string
	ScreenshotDir string // Defaults to ~/.pixelterm/screenshots
	Logger        *log.Logger
	Now           func() time.Time // Replaced in tests
}

// Model is the Bubble Tea model driving one engine.Driver. Every tick runs
// exactly one Driver.Step with the keys queued since the previous tick.
type Model struct {
	driver    *engine.Driver
	opts      Options
	keyMapper *KeyMapper
	theme     Theme
	help      help.Model

	queue  []core.KeyEvent
	lines  []glyph.Line
	width  int
	height int

	notice    string
	noticeBad bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given driver.
func NewModel(driver *engine.Driver, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = opts.SceneID
	}

	return Model{
		driver:    driver,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		theme:     DefaultTheme(),
		help:      help.New(),
	}
}

// Init starts the tick loop with an immediate first frame.
func (m Model) Init() tea.Cmd {
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, local := m.keyMapper.MapKey(msg)
	if local {
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
			m.notice, m.noticeBad = "screenshot failed: "+err.Error(), true
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
			m.notice, m.noticeBad = "saved "+path, false
		}
		return m, nil
	}

	m.queue = append(m.queue, ev)
	return m, nil
}

// handleTick runs one driver step and schedules the next tick for the
// remainder of the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.driver.State() != engine.Running {
		m.quitting = true
		return m, tea.Quit
	}

	start := m.opts.Now()
	m.lines = m.driver.Step(m.queue)
	m.queue = nil

	if m.driver.State() == engine.Stopped {
		m.quitting = true
		return m, tea.Quit
	}

	elapsed := m.opts.Now().Sub(start)
	return m, tickCmd(frameDelay(m.driver.FrameDuration(), elapsed))
}

// saveScreenshot writes the last rendered frame, escapes included, to a
// timestamped file.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".pixelterm", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := m.opts.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.opts.SceneID, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(glyph.Text(m.lines)+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the HUD, the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		cols, rows := m.required()
		return m.theme.Warning.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", cols, rows, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteByte('\n')
	b.WriteString(glyph.Text(m.lines))
	b.WriteByte('\n')
	if m.notice != "" {
		style := m.theme.Notice
		if m.noticeBad {
			style = m.theme.Warning
		}
		b.WriteString(style.Render(m.notice))
		b.WriteByte('\n')
	}
	b.WriteString(m.theme.Help.Render(m.help.View(m.driver.Keys())))
	return b.String()
}

func (m Model) hud() string {
	world := m.driver.World()
	sep := m.theme.HUDSeparator.Render(" │ ")
	fps := int(time.Second / m.driver.FrameDuration())

	parts := []string{
		m.theme.HUDTitle.Render(m.opts.Title),
		m.theme.HUDValue.Render(string(m.driver.Strategy().Mode())),
		m.theme.HUDValue.Render(fmt.Sprintf("%dx%d px", world.Width(), world.Height())),
		m.theme.HUDValue.Render(fmt.Sprintf("%d fps", fps)),
		m.theme.HUDValue.Render(fmt.Sprintf("player %d,%d", world.Player.X, world.Player.Y)),
		m.theme.HUDValue.Render(fmt.Sprintf("%d actors", len(world.Actors()))),
	}
	return strings.Join(parts, sep)
}

// required returns the terminal size needed for the HUD, the bordered
// playfield and the help line.
func (m Model) required() (cols, rows int) {
	world := m.driver.World()
	cols, rows = m.driver.Strategy().Cells(world.Width(), world.Height())
	return cols + 2, rows + 2 + 2
}

// tooSmall is false until the first WindowSizeMsg arrives.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	cols, rows := m.required()
	return m.width < cols || m.height < rows
}

// Run starts the Bubble Tea program for driver and blocks until the driver
// stops or ctx is cancelled. Bubble Tea restores the terminal on exit.
func Run(ctx context.Context, driver *engine.Driver, opts Options) error {
	model := NewModel(driver, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			driver.Stop("cancelled")
			return nil
		}
		driver.Stop("terminal failure")
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

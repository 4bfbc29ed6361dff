// Package rawterm implements engine.Terminal directly on a raw-mode TTY:
// golang.org/x/term switches the line discipline and termenv handles
// screen control. Frames are written with absolute cursor moves and one
// flush per frame.
package rawterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelterm/internal/core"
	"github.com/vovakirdan/pixelterm/internal/glyph"
)

// queueSize bounds reads buffered between two polls. The reader blocks
// when it is full, so no input is lost.
const queueSize = 256

// stopWait bounds how long Restore waits for the reader to return.
const stopWait = 100 * time.Millisecond

// ErrNotTerminal is returned by Enter when input is not a TTY.
var ErrNotTerminal = errors.New("rawterm: input is not a terminal")

// Terminal drives a TTY in raw mode with the alternate screen.
type Terminal struct {
	in     io.Reader
	fd     int
	buf    *bufio.Writer
	out    *termenv.Output
	logger *log.Logger

	// Replaced in tests.
	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
	now        func() time.Time

	reader  cancelreader.CancelReader
	chunks  chan []byte
	errs    chan error
	done    chan struct{}
	stopped chan struct{}

	// Owned by the Poll caller.
	dec       decoder
	queue     []core.KeyEvent
	lastInput time.Time
	readErr   error

	state    *term.State
	raw      bool
	screen   bool
	restored sync.Once
}

// New creates a terminal reading keys from in and writing frames to out.
func New(in *os.File, out io.Writer, logger *log.Logger) *Terminal {
	return newTerminal(in, int(in.Fd()), out, logger)
}

func newTerminal(in io.Reader, fd int, out io.Writer, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	buf := bufio.NewWriter(out)
	return &Terminal{
		in:         in,
		fd:         fd,
		buf:        buf,
		out:        termenv.NewOutput(buf, termenv.WithProfile(termenv.TrueColor)),
		logger:     logger,
		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
		now:        time.Now,
		chunks:     make(chan []byte, queueSize),
		errs:       make(chan error, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Enter puts the TTY in raw mode, switches to the alternate screen, hides
// the cursor and starts reading keys.
func (t *Terminal) Enter() error {
	if !t.isTerminal(t.fd) {
		return ErrNotTerminal
	}

	state, err := t.makeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("rawterm: raw mode: %w", err)
	}
	t.state = state
	t.raw = true

	t.out.AltScreen()
	t.out.HideCursor()
	t.out.ClearScreen()
	t.screen = true
	if err := t.buf.Flush(); err != nil {
		return fmt.Errorf("rawterm: flush: %w", err)
	}

	reader, err := cancelreader.NewReader(t.in)
	if err != nil {
		return fmt.Errorf("rawterm: input reader: %w", err)
	}
	t.reader = reader
	go t.readLoop()
	return nil
}

// Restore undoes whatever part of Enter succeeded. Later calls are no-ops.
func (t *Terminal) Restore() error {
	var errs []error
	t.restored.Do(func() {
		close(t.done)
		t.stopReader()

		if t.screen {
			t.out.ShowCursor()
			t.out.ExitAltScreen()
			if err := t.buf.Flush(); err != nil {
				errs = append(errs, fmt.Errorf("rawterm: flush: %w", err))
			}
		}
		if t.raw {
			if err := t.restore(t.fd, t.state); err != nil {
				errs = append(errs, fmt.Errorf("rawterm: restore mode: %w", err))
			}
		}
	})
	return errors.Join(errs...)
}

// Poll returns the next decoded key without blocking. A trailing ESC is
// held for escapeTimeout in case it starts a sequence. A read failure is
// reported once every key read before it has been returned.
func (t *Terminal) Poll() (core.KeyEvent, bool, error) {
	t.fill()

	if len(t.queue) > 0 {
		ev := t.queue[0]
		t.queue = t.queue[1:]
		return ev, true, nil
	}
	if t.readErr != nil {
		return core.KeyEvent{}, false, fmt.Errorf("rawterm: read input: %w", t.readErr)
	}
	return core.KeyEvent{}, false, nil
}

// fill decodes everything the reader has delivered so far.
func (t *Terminal) fill() {
	t.drainChunks()

	if t.readErr == nil {
		select {
		case err := <-t.errs:
			// Chunks sent before the error are already buffered.
			t.drainChunks()
			t.queue = append(t.queue, t.dec.flush()...)
			t.readErr = err
			return
		default:
		}
	}

	if t.dec.waiting() && t.now().Sub(t.lastInput) >= escapeTimeout {
		t.queue = append(t.queue, t.dec.flush()...)
	}
}

func (t *Terminal) drainChunks() {
	for {
		select {
		case p := <-t.chunks:
			t.queue = append(t.queue, t.dec.feed(p)...)
			t.lastInput = t.now()
		default:
			return
		}
	}
}

// WriteLines moves to each line's row and column and writes it, then
// flushes the whole frame at once.
func (t *Terminal) WriteLines(lines []glyph.Line) error {
	for _, l := range lines {
		t.out.MoveCursor(l.Y+1, l.X+1)
		if _, err := t.buf.WriteString(l.Text); err != nil {
			return fmt.Errorf("rawterm: write: %w", err)
		}
	}
	if err := t.buf.Flush(); err != nil {
		return fmt.Errorf("rawterm: flush: %w", err)
	}
	return nil
}

// readLoop forwards raw reads until a read fails or Restore cancels it.
// Decoding happens in Poll so split sequences can wait for their tail.
func (t *Terminal) readLoop() {
	defer close(t.stopped)

	for {
		p := make([]byte, 64)
		n, err := t.reader.Read(p)
		if n > 0 {
			select {
			case t.chunks <- p[:n]:
			case <-t.done:
				return
			}
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				return
			}
			select {
			case t.errs <- err:
			case <-t.done:
			}
			return
		}
	}
}

// stopReader cancels a pending read so no input is consumed after Restore.
// Readers that cannot be cancelled are abandoned after stopWait.
func (t *Terminal) stopReader() {
	if t.reader == nil {
		return
	}

	t.reader.Cancel()
	select {
	case <-t.stopped:
		// Closes the cancel pipe only; input stays open.
		_ = t.reader.Close()
	case <-time.After(stopWait):
		t.logger.Warn("input reader did not stop; it may consume further input")
	}
}

// CheckProfile warns when the terminal does not advertise truecolor, since
// every glyph is colored with 24-bit escapes.
func CheckProfile(out *os.File, logger *log.Logger) termenv.Profile {
	profile := termenv.NewOutput(out).EnvColorProfile()
	if profile != termenv.TrueColor {
		logger.Warn("terminal may not support truecolor; colors will be approximated or missing",
			"profile", profileName(profile))
	}
	return profile
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

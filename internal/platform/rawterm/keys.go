package rawterm

import (
	"bytes"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/pixelterm/internal/core"
)

const esc = 0x1b

// arrows maps the final byte of CSI and SS3 cursor sequences.
var arrows = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// controls names the C0 bytes that are not plain ctrl+letter.
var controls = map[byte]string{
	0x09: "tab",
	0x0d: "enter",
	0x7f: "backspace",
}

// decodeKeys splits one read from a raw-mode terminal into key events.
// Codes follow the names Bubble Tea uses, so one key map serves both
// backends. Unknown escape sequences are dropped whole.
func decodeKeys(p []byte) []core.KeyEvent {
	var events []core.KeyEvent

	for i := 0; i < len(p); {
		b := p[i]

		switch {
		case b == esc:
			code, n := decodeEscape(p[i:])
			if code != "" {
				events = append(events, core.Key(code))
			}
			i += n

		case controls[b] != "":
			events = append(events, core.Key(controls[b]))
			i++

		case b < 0x20:
			if b >= 0x01 && b <= 0x1a {
				events = append(events, core.Key("ctrl+"+string(rune('a'+b-1))))
			}
			i++

		default:
			r, size := utf8.DecodeRune(p[i:])
			if r != utf8.RuneError {
				events = append(events, core.Key(string(r)))
			}
			i += size
		}
	}

	return events
}

// decodeEscape reads a sequence starting at an ESC byte and returns its key
// code and length. A lone ESC is the escape key.
func decodeEscape(p []byte) (string, int) {
	if len(p) == 1 {
		return "esc", 1
	}

	switch p[1] {
	case '[':
		// CSI: parameters, then a final byte in 0x40..0x7e.
		for j := 2; j < len(p); j++ {
			if p[j] >= 0x40 && p[j] <= 0x7e {
				if j == 2 {
					return arrows[p[j]], j + 1
				}
				return "", j + 1
			}
		}
		return "", len(p)

	case 'O':
		if len(p) < 3 {
			return "", len(p)
		}
		return arrows[p[2]], 3

	case esc:
		return "esc", 1

	default:
		// Alt+key arrives as ESC followed by the key.
		r, size := utf8.DecodeRune(p[1:])
		if r == utf8.RuneError || r < 0x20 {
			return "esc", 1
		}
		return "alt+" + string(r), 1 + size
	}
}

// escapeTimeout is how long a trailing ESC or unfinished sequence waits for
// the rest of its bytes before being decoded as typed.
const escapeTimeout = 50 * time.Millisecond

// decoder assembles keys across reads. A sequence split between two reads
// stays pending until its tail arrives or flush is called.
type decoder struct {
	pending []byte
}

// feed decodes every complete key in the pending bytes plus p.
func (d *decoder) feed(p []byte) []core.KeyEvent {
	d.pending = append(d.pending, p...)
	n := completeLen(d.pending)
	events := decodeKeys(d.pending[:n])
	d.pending = append(d.pending[:0], d.pending[n:]...)
	return events
}

// waiting reports whether bytes are held back for a possible continuation.
func (d *decoder) waiting() bool {
	return len(d.pending) > 0
}

// flush decodes the held bytes as they are: a lone ESC becomes the escape
// key and an unfinished CSI is dropped.
func (d *decoder) flush() []core.KeyEvent {
	events := decodeKeys(d.pending)
	d.pending = d.pending[:0]
	return events
}

// completeLen returns the length of the prefix of p that holds only whole
// keys. The rest is a started escape sequence or UTF-8 rune.
func completeLen(p []byte) int {
	if i := bytes.LastIndexByte(p, esc); i >= 0 && !escapeComplete(p[i:]) {
		return i
	}

	// A multi-byte rune cut at the end of the read.
	for j := len(p) - 1; j >= 0 && j >= len(p)-utf8.UTFMax; j-- {
		if utf8.RuneStart(p[j]) {
			if p[j] >= utf8.RuneSelf && !utf8.FullRune(p[j:]) {
				return j
			}
			break
		}
	}
	return len(p)
}

// escapeComplete reports whether the sequence starting with ESC needs no
// more bytes.
func escapeComplete(p []byte) bool {
	if len(p) == 1 {
		return false
	}

	switch p[1] {
	case '[':
		for _, b := range p[2:] {
			if b >= 0x40 && b <= 0x7e {
				return true
			}
		}
		return false
	case 'O':
		return len(p) >= 3
	default:
		return utf8.FullRune(p[1:])
	}
}

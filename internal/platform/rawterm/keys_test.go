package rawterm

import (
	"reflect"
	"testing"
)

func codes(in string) []string {
	var out []string
	for _, ev := range decodeKeys([]byte(in)) {
		out = append(out, ev.Code)
	}
	return out
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"runes", "wasd", []string{"w", "a", "s", "d"}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"up", "down", "right", "left"}},
		{"ss3 arrows", "\x1bOA\x1bOD", []string{"up", "left"}},
		{"lone esc", "\x1b", []string{"esc"}},
		{"double esc", "\x1b\x1b", []string{"esc", "esc"}},
		{"ctrl+c", "\x03", []string{"ctrl+c"}},
		{"enter and tab", "\r\t", []string{"enter", "tab"}},
		{"backspace", "\x7f", []string{"backspace"}},
		{"alt", "\x1bx", []string{"alt+x"}},
		{"unknown csi dropped", "\x1b[1;5Aq", []string{"q"}},
		{"utf8", "é", []string{"é"}},
		{"mixed", "q\x1b[Cx", []string{"q", "right", "x"}},
		{"truncated csi", "\x1b[", nil},
		{"invalid utf8", "\xff", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := codes(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("decodeKeys(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecoderSplitReads(t *testing.T) {
	tests := []struct {
		name  string
		reads []string
		want  []string
	}{
		{"arrow after lone esc", []string{"\x1b", "[A"}, []string{"up"}},
		{"arrow split in csi", []string{"\x1b[", "D"}, []string{"left"}},
		{"ss3 split", []string{"\x1bO", "A"}, []string{"up"}},
		{"csi parameters split", []string{"q\x1b[", "1;5", "Aw"}, []string{"q", "w"}},
		{"utf8 split", []string{"\xc3", "\xa9"}, []string{"é"}},
		{"esc then rune", []string{"\x1b", "x"}, []string{"alt+x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d decoder
			var got []string
			for i, r := range tc.reads {
				for _, ev := range d.feed([]byte(r)) {
					got = append(got, ev.Code)
				}
				if i < len(tc.reads)-1 && !d.waiting() {
					t.Fatalf("read %d: expected bytes to be held", i)
				}
			}
			if d.waiting() {
				t.Errorf("bytes still pending after %q", tc.reads)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("decoded %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestDecoderFlush(t *testing.T) {
	var d decoder
	if evs := d.feed([]byte("a\x1b")); len(evs) != 1 || evs[0].Code != "a" {
		t.Fatalf("feed() = %v, expected only a", evs)
	}
	if !d.waiting() {
		t.Fatal("trailing esc should be held")
	}

	evs := d.flush()
	if len(evs) != 1 || evs[0].Code != "esc" {
		t.Fatalf("flush() = %v, expected esc", evs)
	}
	if d.waiting() {
		t.Error("flush should empty the decoder")
	}

	d.feed([]byte("\x1b["))
	if evs := d.flush(); len(evs) != 0 {
		t.Errorf("flush() of an unfinished csi = %v, expected nothing", evs)
	}
}

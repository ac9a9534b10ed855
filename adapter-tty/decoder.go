package tty_adapter

import (
	"unicode/utf8"

	"github.com/ionut-t/goreadline/core"
)

// decode turns raw terminal bytes into key events. Incomplete trailing
// sequences (a split escape or UTF-8 rune) are returned as rest, to be
// retried once more bytes arrive.
func decode(buf []byte) ([]core.RawEvent, []byte) {
	var events []core.RawEvent
	for len(buf) > 0 {
		key, size, ok := decodeOne(buf)
		if !ok {
			return events, buf
		}
		buf = buf[size:]
		if key.Key == core.KeyUnknown && key.Rune == 0 && key.Modifiers == 0 {
			continue
		}
		events = append(events, core.RawEvent{Kind: core.RawKey, Key: key})
	}
	return events, nil
}

func decodeOne(buf []byte) (core.KeyEvent, int, bool) {
	b := buf[0]

	switch {
	case b == 0x1b:
		return decodeEscape(buf)
	case b == '\r' || b == '\n':
		return core.Special(core.KeyEnter), 1, true
	case b == '\t':
		return core.Special(core.KeyTab), 1, true
	case b == 0x7f || b == 0x08:
		return core.Special(core.KeyBackspace), 1, true
	case b < 0x20:
		// C0 control codes map onto ctrl chords.
		return core.Ctrl(rune('a' + b - 1)), 1, true
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && !utf8.FullRune(buf) {
		return core.KeyEvent{}, 0, false
	}
	return core.Char(r), size, true
}

func decodeEscape(buf []byte) (core.KeyEvent, int, bool) {
	if len(buf) == 1 {
		// A lone ESC in the chunk is the escape key itself; a split
		// sequence would have arrived with its continuation within the
		// same burst.
		return core.Special(core.KeyEscape), 1, true
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return core.KeyEvent{}, 0, false
		}
		switch buf[2] {
		case 'A':
			return core.Special(core.KeyUp), 3, true
		case 'B':
			return core.Special(core.KeyDown), 3, true
		case 'C':
			return core.Special(core.KeyRight), 3, true
		case 'D':
			return core.Special(core.KeyLeft), 3, true
		case 'H':
			return core.Special(core.KeyHome), 3, true
		case 'F':
			return core.Special(core.KeyEnd), 3, true
		}
		return core.KeyEvent{}, 3, true
	}

	// ESC-prefixed character: an alt chord.
	r, size := utf8.DecodeRune(buf[1:])
	if r == utf8.RuneError && !utf8.FullRune(buf[1:]) {
		return core.KeyEvent{}, 0, false
	}
	return core.Alt(r), 1 + size, true
}

func decodeCSI(buf []byte) (core.KeyEvent, int, bool) {
	// Find the final byte (0x40-0x7e) after "ESC [".
	end := -1
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		return core.KeyEvent{}, 0, false
	}
	size := end + 1
	params := string(buf[2:end])

	switch buf[end] {
	case 'A':
		return core.Special(core.KeyUp), size, true
	case 'B':
		return core.Special(core.KeyDown), size, true
	case 'C':
		return core.Special(core.KeyRight), size, true
	case 'D':
		return core.Special(core.KeyLeft), size, true
	case 'H':
		return core.Special(core.KeyHome), size, true
	case 'F':
		return core.Special(core.KeyEnd), size, true
	case 'Z':
		return core.KeyEvent{Key: core.KeyTab, Modifiers: core.ModShift}, size, true
	case '~':
		switch params {
		case "1", "7":
			return core.Special(core.KeyHome), size, true
		case "2":
			return core.Special(core.KeyInsert), size, true
		case "3":
			return core.Special(core.KeyDelete), size, true
		case "4", "8":
			return core.Special(core.KeyEnd), size, true
		case "5":
			return core.Special(core.KeyPageUp), size, true
		case "6":
			return core.Special(core.KeyPageDown), size, true
		}
	}

	// Unrecognized sequences are consumed and dropped.
	return core.KeyEvent{}, size, true
}

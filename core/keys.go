package core

import (
	"fmt"
	"strings"
	"unicode"
)

// --- KeyCode, KeyModifiers, KeyEvent ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent represents a single decoded keyboard input event. It is produced
// by an EventSource and translated into an Event by the active EditMode.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Char builds a plain character key event.
func Char(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Ctrl builds a Ctrl-modified character key event. The rune is lowercased
// so that Ctrl('A') and Ctrl('a') describe the same chord.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Rune: unicode.ToLower(r), Modifiers: ModCtrl}
}

// Alt builds an Alt-modified character key event.
func Alt(r rune) KeyEvent {
	return KeyEvent{Rune: unicode.ToLower(r), Modifiers: ModAlt}
}

// Special builds a key event for a non-character key.
func Special(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// String returns a readable representation of a key chord
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyTab:
			parts = append(parts, "Tab")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyHome:
			parts = append(parts, "Home")
		case KeyEnd:
			parts = append(parts, "End")
		case KeyPageUp:
			parts = append(parts, "PageUp")
		case KeyPageDown:
			parts = append(parts, "PageDown")
		case KeyDelete:
			parts = append(parts, "Delete")
		case KeyInsert:
			parts = append(parts, "Insert")
		case KeyUnknown:
			parts = append(parts, "Unknown")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}

	return strings.Join(parts, "+")
}

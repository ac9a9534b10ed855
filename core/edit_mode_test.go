package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmacsBindings(t *testing.T) {
	emacs := NewEmacs()

	t.Run("plain characters insert themselves", func(t *testing.T) {
		event := emacs.ParseEvent(Char('q'))

		require.Equal(t, EventEdit, event.Kind)
		require.Len(t, event.Commands, 1)
		assert.Equal(t, InsertChar('q'), event.Commands[0])
	})

	t.Run("control chords", func(t *testing.T) {
		cases := map[rune]Event{
			'a': EditEvent(MoveToLineStart()),
			'e': EditEvent(MoveToLineEnd()),
			'b': EditEvent(MoveLeft()),
			'f': EditEvent(MoveRight()),
			'c': CtrlCEvent(),
			'd': CtrlDEvent(),
			'l': ClearScreenEvent(),
			'p': PreviousHistoryEvent(),
			'n': NextHistoryEvent(),
			'r': SearchHistoryEvent(),
			'w': EditEvent(CutWordLeft()),
			'k': EditEvent(CutToLineEnd()),
			'u': EditEvent(CutFromLineStart()),
			'y': EditEvent(PasteCutBufferBefore()),
			't': EditEvent(SwapGraphemes()),
			'z': EditEvent(Undo()),
			'g': EditEvent(Redo()),
			'h': EditEvent(Backspace()),
		}
		for r, want := range cases {
			assert.Equal(t, want, emacs.ParseEvent(Ctrl(r)), "ctrl-%c", r)
		}
	})

	t.Run("alt chords", func(t *testing.T) {
		cases := map[rune]Event{
			'b': EditEvent(MoveWordLeft()),
			'f': EditEvent(MoveWordRight()),
			'd': EditEvent(CutWordRight()),
			'u': EditEvent(UppercaseWord()),
			'l': EditEvent(LowercaseWord()),
			'c': EditEvent(CapitalizeChar()),
			't': EditEvent(SwapWords()),
		}
		for r, want := range cases {
			assert.Equal(t, want, emacs.ParseEvent(Alt(r)), "alt-%c", r)
		}
	})

	t.Run("special keys", func(t *testing.T) {
		cases := map[KeyCode]Event{
			KeyEnter:     EnterEvent(),
			KeyTab:       HandleTabEvent(),
			KeyBackspace: EditEvent(Backspace()),
			KeyDelete:    EditEvent(Delete()),
			KeyUp:        UpEvent(),
			KeyDown:      DownEvent(),
			KeyLeft:      EditEvent(MoveLeft()),
			KeyRight:     EditEvent(MoveRight()),
			KeyHome:      EditEvent(MoveToLineStart()),
			KeyEnd:       EditEvent(MoveToLineEnd()),
		}
		for code, want := range cases {
			assert.Equal(t, want, emacs.ParseEvent(Special(code)))
		}
	})

	t.Run("unbound chords are no-ops", func(t *testing.T) {
		assert.Equal(t, NoneEvent(), emacs.ParseEvent(Ctrl('q')))
		assert.Equal(t, NoneEvent(), emacs.ParseEvent(Alt('z')))
		assert.Equal(t, NoneEvent(), emacs.ParseEvent(Special(KeyPageUp)))
	})

	t.Run("reports the emacs prompt mode", func(t *testing.T) {
		assert.Equal(t, PromptEmacsMode, emacs.PromptMode())
	})
}

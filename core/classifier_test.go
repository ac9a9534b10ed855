package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawKeys(s string) []RawEvent {
	raw := make([]RawEvent, 0, len(s))
	for _, r := range s {
		raw = append(raw, RawEvent{Kind: RawKey, Key: Char(r)})
	}
	return raw
}

func TestClassifyEventsPasteDetection(t *testing.T) {
	parse := NewEmacs().ParseEvent

	t.Run("a burst above the threshold becomes one paste", func(t *testing.T) {
		events := classifyEvents(rawKeys("hello world"), parse) // 11 keys

		require.Len(t, events, 1)
		require.Equal(t, EventPaste, events[0].Kind)
		assert.Len(t, events[0].Events, 11)
		for _, sub := range events[0].Events {
			assert.Equal(t, EventEdit, sub.Kind)
		}
	})

	t.Run("a burst at the threshold stays regular input", func(t *testing.T) {
		events := classifyEvents(rawKeys("hello worl"), parse) // 10 keys

		require.Len(t, events, 1)
		assert.Equal(t, EventEdit, events[0].Kind)
	})

	t.Run("pasted newlines keep their enter events", func(t *testing.T) {
		raw := rawKeys("line one s") // 10 keys
		raw = append(raw, RawEvent{Kind: RawKey, Key: Special(KeyEnter)})

		events := classifyEvents(raw, parse)

		require.Len(t, events, 1)
		require.Equal(t, EventPaste, events[0].Kind)
		assert.Equal(t, EventEnter, events[0].Events[10].Kind)
	})
}

func TestClassifyEventsEditMerging(t *testing.T) {
	parse := NewEmacs().ParseEvent

	t.Run("consecutive edits merge into one batch", func(t *testing.T) {
		events := classifyEvents(rawKeys("abc"), parse)

		require.Len(t, events, 1)
		require.Equal(t, EventEdit, events[0].Kind)
		require.Len(t, events[0].Commands, 3)
		assert.Equal(t, 'a', events[0].Commands[0].Char)
		assert.Equal(t, 'c', events[0].Commands[2].Char)
	})

	t.Run("a non-edit event breaks the merge", func(t *testing.T) {
		raw := rawKeys("ab")
		raw = append(raw, RawEvent{Kind: RawKey, Key: Special(KeyEnter)})
		raw = append(raw, rawKeys("cd")...)

		events := classifyEvents(raw, parse)

		require.Len(t, events, 3)
		assert.Equal(t, EventEdit, events[0].Kind)
		assert.Len(t, events[0].Commands, 2)
		assert.Equal(t, EventEnter, events[1].Kind)
		assert.Equal(t, EventEdit, events[2].Kind)
		assert.Len(t, events[2].Commands, 2)
	})
}

func TestClassifyEventsResizeCoalescing(t *testing.T) {
	parse := NewEmacs().ParseEvent

	t.Run("only the latest resize survives and comes first", func(t *testing.T) {
		raw := []RawEvent{
			{Kind: RawResize, Width: 80, Height: 24},
			{Kind: RawKey, Key: Char('x')},
			{Kind: RawResize, Width: 90, Height: 28},
			{Kind: RawResize, Width: 100, Height: 30},
		}

		events := classifyEvents(raw, parse)

		require.Len(t, events, 2)
		assert.Equal(t, EventResize, events[0].Kind)
		assert.Equal(t, 100, events[0].Width)
		assert.Equal(t, 30, events[0].Height)
		assert.Equal(t, EventEdit, events[1].Kind)
	})

	t.Run("resizes do not count towards the paste threshold", func(t *testing.T) {
		raw := rawKeys("hello worl") // 10 keys
		for i := 0; i < 5; i++ {
			raw = append(raw, RawEvent{Kind: RawResize, Width: 100, Height: 30})
		}

		events := classifyEvents(raw, parse)

		require.Len(t, events, 2)
		assert.Equal(t, EventResize, events[0].Kind)
		assert.Equal(t, EventEdit, events[1].Kind)
	})
}

func TestClassifyEventsMouse(t *testing.T) {
	parse := NewEmacs().ParseEvent

	events := classifyEvents([]RawEvent{{Kind: RawMouse}}, parse)

	require.Len(t, events, 1)
	assert.Equal(t, EventMouse, events[0].Kind)
}

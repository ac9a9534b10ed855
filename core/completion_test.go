package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	t.Run("valid spans", func(t *testing.T) {
		assert.Equal(t, Span{Start: 1, End: 3}, NewSpan(1, 3))
		assert.Equal(t, Span{Start: 2, End: 2}, NewSpan(2, 2))
	})

	t.Run("end before start panics", func(t *testing.T) {
		assert.Panics(t, func() { NewSpan(3, 1) })
	})
}

func TestDefaultCompleter(t *testing.T) {
	t.Run("completes a prefix to all indexed words", func(t *testing.T) {
		c := NewDefaultCompleter([]string{"batch", "batman", "bank"})

		suggestions := c.Complete("bat", 3)

		require.Len(t, suggestions, 2)
		assert.Equal(t, "batch", suggestions[0].Value)
		assert.Equal(t, "batman", suggestions[1].Value)
		assert.Equal(t, NewSpan(0, 3), suggestions[0].Span)
	})

	t.Run("completes the word under the cursor, not the whole line", func(t *testing.T) {
		c := NewDefaultCompleter([]string{"status"})

		suggestions := c.Complete("git sta", 7)

		require.Len(t, suggestions, 1)
		assert.Equal(t, "status", suggestions[0].Value)
		assert.Equal(t, NewSpan(4, 7), suggestions[0].Span)
	})

	t.Run("suggestions must extend the span", func(t *testing.T) {
		c := NewDefaultCompleter([]string{"go"})

		assert.Empty(t, c.Complete("go", 2))
	})

	t.Run("words below the minimum length are not indexed", func(t *testing.T) {
		c := NewDefaultCompleterWithWordLen([]string{"a", "abc"}, 2)

		assert.Equal(t, 1, c.WordCount())
	})

	t.Run("inclusions whitelist extra runes", func(t *testing.T) {
		c := NewDefaultCompleterWithInclusions([]rune{'-'})
		c.Insert([]string{"cherry-pick"})

		suggestions := c.Complete("cherry-", 7)

		require.Len(t, suggestions, 1)
		assert.Equal(t, "cherry-pick", suggestions[0].Value)
	})

	t.Run("clear drops the index", func(t *testing.T) {
		c := NewDefaultCompleter([]string{"word"})
		c.Clear()

		assert.Zero(t, c.WordCount())
		assert.Empty(t, c.Complete("wo", 2))
	})
}

func TestHistoryCompleter(t *testing.T) {
	t.Run("returns the most recent matching entry", func(t *testing.T) {
		c := NewHistoryCompleter([]string{"ls -la", "ls -lh"})

		suggestions := c.Complete("ls", 2)

		require.Len(t, suggestions, 1)
		assert.Equal(t, " -lh", suggestions[0].Value)
		assert.Equal(t, NewSpan(2, 2), suggestions[0].Span)
	})

	t.Run("no match yields nothing", func(t *testing.T) {
		c := NewHistoryCompleter([]string{"make"})

		assert.Empty(t, c.Complete("ls", 2))
	})

	t.Run("empty line yields nothing", func(t *testing.T) {
		c := NewHistoryCompleter([]string{"make"})

		assert.Empty(t, c.Complete("", 0))
	})
}

func TestCircularCompletionHandler(t *testing.T) {
	t.Run("cycles through the candidates and wraps around", func(t *testing.T) {
		handler := NewCircularCompletionHandler(NewDefaultCompleter([]string{"batch", "batman"}))
		lb := NewLineBuffer()
		lb.InsertString("bat")

		handler.Handle(lb)
		assert.Equal(t, "batch", lb.Get())

		handler.Handle(lb)
		assert.Equal(t, "batman", lb.Get())

		handler.Handle(lb)
		assert.Equal(t, "batch", lb.Get())
	})

	t.Run("new typing restarts the cycle", func(t *testing.T) {
		handler := NewCircularCompletionHandler(NewDefaultCompleter([]string{"batch", "batman"}))
		lb := NewLineBuffer()
		lb.InsertString("bat")

		handler.Handle(lb)
		require.Equal(t, "batch", lb.Get())

		lb.InsertString("x") // diverge from the cycle's line
		handler.Handle(lb)
		assert.Equal(t, "batchx", lb.Get(), "no candidate for the new line")
	})

	t.Run("no suggestions leaves the buffer alone", func(t *testing.T) {
		handler := NewCircularCompletionHandler(NewDefaultCompleter([]string{"unrelated"}))
		lb := NewLineBuffer()
		lb.InsertString("xyz")

		handler.Handle(lb)
		assert.Equal(t, "xyz", lb.Get())
	})
}

package core

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyledText(t *testing.T) {
	style := lipgloss.NewStyle()

	t.Run("raw concatenates all segments", func(t *testing.T) {
		var st StyledText
		st.Push(style, "one ")
		st.Push(style, "two")

		assert.Equal(t, "one two", st.Raw())
	})

	t.Run("renders split at the insertion point", func(t *testing.T) {
		var st StyledText
		st.Push(style, "hello world")

		before, after := st.RenderAroundInsertionPoint(5, "::: ", false)

		assert.Equal(t, "hello", before)
		assert.Equal(t, " world", after)
	})

	t.Run("split point between segments", func(t *testing.T) {
		var st StyledText
		st.Push(style, "ab")
		st.Push(style, "cd")

		before, after := st.RenderAroundInsertionPoint(2, "", false)

		assert.Equal(t, "ab", before)
		assert.Equal(t, "cd", after)
	})

	t.Run("newlines become crlf plus the multiline indicator", func(t *testing.T) {
		var st StyledText
		st.Push(style, "one\ntwo")

		before, after := st.RenderAroundInsertionPoint(7, "::: ", false)

		assert.Equal(t, "one\r\n::: two", before)
		assert.Empty(t, after)
	})
}

func TestDefaultHighlighter(t *testing.T) {
	h := NewDefaultHighlighter([]string{"select", "from"})

	t.Run("splits keywords into their own segments", func(t *testing.T) {
		styled := h.Highlight("select x from y")

		require.Len(t, styled.Buffer, 4)
		assert.Equal(t, "select", styled.Buffer[0].Text)
		assert.Equal(t, " x ", styled.Buffer[1].Text)
		assert.Equal(t, "from", styled.Buffer[2].Text)
		assert.Equal(t, " y", styled.Buffer[3].Text)
		assert.Equal(t, "select x from y", styled.Raw())
	})

	t.Run("no keywords yields a single neutral segment", func(t *testing.T) {
		styled := h.Highlight("plain text")

		require.Len(t, styled.Buffer, 1)
		assert.Equal(t, "plain text", styled.Buffer[0].Text)
	})

	t.Run("empty line still renders", func(t *testing.T) {
		styled := h.Highlight("")

		assert.Equal(t, "", styled.Raw())
	})
}

package bubble_adapter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/goreadline/core"
)

func keyMsg(runes string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return m
}

// collectMsg evaluates a command tree and returns the adapter's own
// message, skipping cursor-blink noise.
func collectMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	if msg := findAdapterMsg(cmd); msg != nil {
		return msg
	}
	t.Fatal("no adapter message produced")
	return nil
}

func findAdapterMsg(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if found := findAdapterMsg(sub); found != nil {
				return found
			}
		}
		return nil
	}
	switch msg.(type) {
	case SubmitMsg, InterruptMsg, EndOfInputMsg, ClearScreenMsg:
		return msg
	}
	return nil
}

func TestConvertKey(t *testing.T) {
	t.Run("runes become character events", func(t *testing.T) {
		raw := convertKey(keyMsg("ab"))

		require.Len(t, raw, 2)
		assert.Equal(t, core.Char('a'), raw[0].Key)
		assert.Equal(t, core.Char('b'), raw[1].Key)
	})

	t.Run("alt runes become alt chords", func(t *testing.T) {
		raw := convertKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true})

		require.Len(t, raw, 1)
		assert.Equal(t, core.Alt('b'), raw[0].Key)
	})

	t.Run("control keys become ctrl chords", func(t *testing.T) {
		raw := convertKey(tea.KeyMsg{Type: tea.KeyCtrlR})

		require.Len(t, raw, 1)
		assert.Equal(t, core.Ctrl('r'), raw[0].Key)
	})

	t.Run("special keys map across", func(t *testing.T) {
		cases := map[tea.KeyType]core.KeyCode{
			tea.KeyEnter:     core.KeyEnter,
			tea.KeyTab:       core.KeyTab,
			tea.KeyBackspace: core.KeyBackspace,
			tea.KeyUp:        core.KeyUp,
			tea.KeyDown:      core.KeyDown,
			tea.KeyHome:      core.KeyHome,
			tea.KeyEnd:       core.KeyEnd,
			tea.KeyDelete:    core.KeyDelete,
		}
		for teaKey, want := range cases {
			raw := convertKey(tea.KeyMsg{Type: teaKey})
			require.Len(t, raw, 1)
			assert.Equal(t, core.Special(want), raw[0].Key)
		}
	})

	t.Run("unbound keys yield nothing", func(t *testing.T) {
		assert.Empty(t, convertKey(tea.KeyMsg{Type: tea.KeyF1}))
	})
}

func TestModelTyping(t *testing.T) {
	m := New()
	m = typeString(m, "hello")

	assert.Equal(t, "hello", m.Value())
	assert.Contains(t, m.View(), "hello")
}

func TestModelSubmit(t *testing.T) {
	m := New()
	m = typeString(m, "ls")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := collectMsg(t, cmd)
	assert.Equal(t, SubmitMsg("ls"), msg)
	assert.Equal(t, "", m.Value())
}

func TestModelInterrupt(t *testing.T) {
	m := New()
	m = typeString(m, "half")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	msg := collectMsg(t, cmd)
	assert.Equal(t, InterruptMsg{}, msg)
	assert.Equal(t, "", m.Value())
}

func TestModelEndOfInput(t *testing.T) {
	m := New()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	msg := collectMsg(t, cmd)
	assert.Equal(t, EndOfInputMsg{}, msg)
	assert.Equal(t, "", m.Value())
}

func TestModelBlurIgnoresKeys(t *testing.T) {
	m := New()
	m.Blur()
	m = typeString(m, "ignored")

	assert.Equal(t, "", m.Value())
}

func TestModelHistorySearchView(t *testing.T) {
	history := core.NewInMemoryHistory()
	history.Append("git status")

	m := New(core.WithHistory(history))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = typeString(m, "git")

	view := m.View()
	assert.True(t, strings.Contains(view, "reverse-search"), "view: %q", view)
	assert.Contains(t, view, "git status")
}

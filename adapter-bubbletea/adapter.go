// Package bubble_adapter embeds the line editor in a bubbletea program.
// The engine runs headless behind an in-memory painter; key messages are
// fed through its dispatcher and terminal signals surface as tea messages.
package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/goreadline/core"
)

// Theme styles the rendered prompt line.
type Theme struct {
	IndicatorStyle lipgloss.Style
	TextStyle      lipgloss.Style
	HintStyle      lipgloss.Style
	SearchStyle    lipgloss.Style
	FailingStyle   lipgloss.Style
}

var DefaultTheme = Theme{
	IndicatorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	TextStyle:      lipgloss.NewStyle(),
	HintStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	SearchStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	FailingStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// SubmitMsg carries a submitted line.
type SubmitMsg string

// InterruptMsg reports an aborted line (Ctrl-C).
type InterruptMsg struct{}

// EndOfInputMsg reports end of input on an empty buffer (Ctrl-D).
type EndOfInputMsg struct{}

// ClearScreenMsg asks the host to clear its view (Ctrl-L).
type ClearScreenMsg struct{}

// Model is the bubbletea-facing line editor component.
type Model struct {
	engine  *core.LineEditor
	painter *memoryPainter
	prompt  core.Prompt
	cursor  cursor.Model
	theme   Theme

	focused bool
	width   int
	height  int
	err     error
}

// New creates the component. Engine options are applied on top of the
// adapter's defaults (in-memory painter, clipboard cut buffer, unstyled
// engine output so the theme can style the view).
func New(opts ...core.Option) Model {
	painter := newMemoryPainter()

	defaults := []core.Option{
		core.WithPainter(painter),
		core.WithCutBuffer(NewClipboardCutBuffer()),
		core.WithoutAnsiColors(),
	}

	c := cursor.New()
	c.Focus()

	return Model{
		engine:  core.New(append(defaults, opts...)...),
		painter: painter,
		prompt:  core.DefaultPrompt{},
		cursor:  c,
		theme:   DefaultTheme,
		focused: true,
		width:   80,
		height:  24,
	}
}

// WithPrompt replaces the default prompt.
func (m Model) WithPrompt(prompt core.Prompt) Model {
	m.prompt = prompt
	return m
}

// WithTheme replaces the default theme.
func (m Model) WithTheme(theme Theme) Model {
	m.theme = theme
	return m
}

// Value returns the in-progress buffer content.
func (m Model) Value() string {
	return m.engine.Buffer()
}

// Err returns the last dispatch error, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) Focus() { m.focused = true; m.cursor.Focus() }
func (m *Model) Blur()  { m.focused = false; m.cursor.Blur() }

func (m Model) Init() tea.Cmd {
	return m.cursor.BlinkCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if cmd := m.dispatch(core.RawEvent{Kind: core.RawResize, Width: msg.Width, Height: msg.Height}); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if cmd := m.dispatch(core.RawEvent{Kind: core.RawMouse}); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if !m.focused {
			break
		}
		if raw := convertKey(msg); len(raw) > 0 {
			if cmd := m.dispatch(raw...); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	var cursorCmd tea.Cmd
	m.cursor, cursorCmd = m.cursor.Update(msg)
	cmds = append(cmds, cursorCmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) dispatch(raw ...core.RawEvent) tea.Cmd {
	signal, err := m.engine.Dispatch(raw, m.prompt)
	if err != nil {
		m.err = err
		return nil
	}

	switch signal := signal.(type) {
	case core.SuccessSignal:
		return func() tea.Msg { return SubmitMsg(signal.Value()) }
	case core.InterruptSignal:
		return func() tea.Msg { return InterruptMsg{} }
	case core.EndOfInputSignal:
		return func() tea.Msg { return EndOfInputMsg{} }
	case core.ClearScreenSignal:
		return func() tea.Msg { return ClearScreenMsg{} }
	}
	return nil
}

func (m Model) View() string {
	if search := m.painter.search; search != nil {
		return m.viewSearch(search)
	}

	lines := m.painter.lines

	indicator := m.theme.IndicatorStyle.Render(
		m.prompt.RenderPromptIndicator(core.PromptEmacsMode))

	// The cursor overlays the first grapheme after the insertion point.
	under, rest := firstGrapheme(lines.AfterCursor)
	if under == "" || strings.ContainsRune(under, '\n') {
		under, rest = " ", lines.AfterCursor
	}
	cur := m.cursor
	cur.SetChar(under)

	var b strings.Builder
	b.WriteString(indicator)
	b.WriteString(m.theme.TextStyle.Render(crlfToLf(lines.BeforeCursor)))
	b.WriteString(cur.View())
	b.WriteString(m.theme.TextStyle.Render(crlfToLf(rest)))
	if lines.Hint != "" {
		b.WriteString(m.theme.HintStyle.Render(crlfToLf(lines.Hint)))
	}
	return b.String()
}

func (m Model) viewSearch(search *searchState) string {
	style := m.theme.SearchStyle
	if search.search.Status == core.PromptHistorySearchFailing {
		style = m.theme.FailingStyle
	}

	indicator := m.prompt.RenderPromptHistorySearchIndicator(search.search)
	return style.Render(indicator) + m.theme.TextStyle.Render(search.result)
}

func firstGrapheme(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, rest
}

// crlfToLf strips the carriage returns the engine emits for raw terminals;
// bubbletea handles line breaks itself.
func crlfToLf(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

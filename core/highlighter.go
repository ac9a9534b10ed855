package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyledSegment is a run of text sharing one style.
type StyledSegment struct {
	Style lipgloss.Style
	Text  string
}

// StyledText is the styled form of the buffer produced by a Highlighter.
type StyledText struct {
	Buffer []StyledSegment
}

// Push appends a styled run.
func (st *StyledText) Push(style lipgloss.Style, text string) {
	st.Buffer = append(st.Buffer, StyledSegment{Style: style, Text: text})
}

// Raw returns the unstyled text.
func (st StyledText) Raw() string {
	var b strings.Builder
	for _, segment := range st.Buffer {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// RenderAroundInsertionPoint renders the styled text split at the cursor's
// byte offset, so the painter can position the cursor between the two
// halves. Newlines are converted to CRLF followed by the multiline
// indicator. With ansi disabled the raw text is returned.
func (st StyledText) RenderAroundInsertionPoint(pos int, multilineIndicator string, ansi bool) (string, string) {
	var before, after strings.Builder
	offset := 0

	render := func(segment StyledSegment, text string) string {
		text = strings.ReplaceAll(text, "\n", "\r\n"+multilineIndicator)
		if !ansi {
			return text
		}
		return segment.Style.Render(text)
	}

	for _, segment := range st.Buffer {
		end := offset + len(segment.Text)
		switch {
		case end <= pos:
			before.WriteString(render(segment, segment.Text))
		case offset >= pos:
			after.WriteString(render(segment, segment.Text))
		default:
			cut := pos - offset
			before.WriteString(render(segment, segment.Text[:cut]))
			after.WriteString(render(segment, segment.Text[cut:]))
		}
		offset = end
	}

	return before.String(), after.String()
}

// Highlighter computes the styled form of the buffer. It is re-run from
// scratch before every paint; results are never cached across edits.
type Highlighter interface {
	Highlight(line string) StyledText
}

// DefaultHighlighter styles known keywords and leaves the rest neutral.
// A chroma-backed source-code highlighter lives in the highlighter
// package.
type DefaultHighlighter struct {
	keywords     []string
	matchStyle   lipgloss.Style
	neutralStyle lipgloss.Style
}

// NewDefaultHighlighter creates a highlighter recognizing the given
// keywords.
func NewDefaultHighlighter(keywords []string) *DefaultHighlighter {
	return &DefaultHighlighter{
		keywords:     keywords,
		matchStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		neutralStyle: lipgloss.NewStyle(),
	}
}

// WithStyles overrides the match and neutral styles.
func (h *DefaultHighlighter) WithStyles(match, neutral lipgloss.Style) *DefaultHighlighter {
	h.matchStyle = match
	h.neutralStyle = neutral
	return h
}

func (h *DefaultHighlighter) Highlight(line string) StyledText {
	var styled StyledText

	rest := line
	for rest != "" {
		idx, length := -1, 0
		for _, keyword := range h.keywords {
			if keyword == "" {
				continue
			}
			if found := strings.Index(rest, keyword); found >= 0 && (idx < 0 || found < idx) {
				idx, length = found, len(keyword)
			}
		}
		if idx < 0 {
			styled.Push(h.neutralStyle, rest)
			break
		}
		if idx > 0 {
			styled.Push(h.neutralStyle, rest[:idx])
		}
		styled.Push(h.matchStyle, rest[idx:idx+length])
		rest = rest[idx+length:]
	}

	if len(styled.Buffer) == 0 {
		styled.Push(h.neutralStyle, line)
	}
	return styled
}

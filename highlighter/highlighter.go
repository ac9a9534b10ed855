// Package highlighter provides a chroma-backed source-code highlighter for
// the line editor. It maps chroma tokens onto lipgloss styles, so the same
// highlighting works in the tty painter and in bubbletea hosts.
package highlighter

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/goreadline/core"
)

// Highlighter tokenizes the buffer with a chroma lexer on every paint.
// Token-type styles are cached; the token stream itself is not, since the
// buffer changes between paints.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu         sync.Mutex
	styleCache map[chroma.TokenType]lipgloss.Style
}

// New creates a highlighter for the given language and chroma theme.
// Unknown languages fall back to plain-text tokenization, unknown themes to
// chroma's default.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	return &Highlighter{
		lexer:      lexer,
		style:      styles.Get(theme),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

func (h *Highlighter) Highlight(line string) core.StyledText {
	var styled core.StyledText
	if line == "" {
		return styled
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		styled.Push(lipgloss.NewStyle(), line)
		return styled
	}

	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		styled.Push(h.styleFor(token.Type), token.Value)
	}
	return styled
}

func (h *Highlighter) styleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}

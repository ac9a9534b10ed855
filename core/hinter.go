package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hinter computes the inline ghost text shown after the cursor. It runs
// only in regular mode, and only when the cursor sits at the end of the
// line unless inside-line hinting is enabled.
type Hinter interface {
	// Handle recomputes the hint for the current line and returns it,
	// styled when ansi is enabled.
	Handle(line string, pos int, history History, ansi bool) string

	// CurrentHint returns the unstyled hint from the last Handle call,
	// used for hint acceptance on tab.
	CurrentHint() string
}

// DefaultHinter hints from a completer, or from history when configured.
type DefaultHinter struct {
	completer   Completer
	useHistory  bool
	style       lipgloss.Style
	insideLine  bool
	currentHint string
}

// NewDefaultHinter creates a hinter with no suggestion source; combine
// with WithCompleter or WithHistory.
func NewDefaultHinter() *DefaultHinter {
	return &DefaultHinter{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// WithCompleter sets the completion source for hints.
func (h *DefaultHinter) WithCompleter(completer Completer) *DefaultHinter {
	h.completer = completer
	return h
}

// WithHistory hints from the most recent matching history entry.
func (h *DefaultHinter) WithHistory() *DefaultHinter {
	h.useHistory = true
	return h
}

// WithInsideLine also hints when the cursor is mid-line.
func (h *DefaultHinter) WithInsideLine() *DefaultHinter {
	h.insideLine = true
	return h
}

// WithStyle sets the ghost-text style.
func (h *DefaultHinter) WithStyle(style lipgloss.Style) *DefaultHinter {
	h.style = style
	return h
}

func (h *DefaultHinter) Handle(line string, pos int, history History, ansi bool) string {
	if pos != len(line) && !h.insideLine {
		h.currentHint = ""
		return ""
	}

	var completions []Suggestion
	if h.completer != nil {
		completions = h.completer.Complete(line, pos)
	} else if h.useHistory && history != nil {
		completions = NewHistoryCompleter(history.IterChronologic()).Complete(line, pos)
	}

	if len(completions) == 0 {
		h.currentHint = ""
		return ""
	}

	hint := completions[0].Value
	span := completions[0].Span
	if cut := span.End - span.Start; cut < len(hint) {
		hint = hint[cut:]
	} else {
		hint = ""
	}
	h.currentHint = hint

	display := strings.ReplaceAll(hint, "\n", "\r\n")
	if !ansi || display == "" {
		return display
	}
	return h.style.Render(display)
}

func (h *DefaultHinter) CurrentHint() string {
	return h.currentHint
}

package core

import (
	"fmt"
	"os"
	"time"
)

// PromptEditMode selects the prompt indicator matching the active
// key-binding style.
type PromptEditMode int

const (
	PromptDefaultMode PromptEditMode = iota
	PromptEmacsMode
	PromptViInsertMode
	PromptViNormalMode
)

// PromptHistorySearchStatus reports whether the interactive search needle
// currently matches an entry.
type PromptHistorySearchStatus int

const (
	PromptHistorySearchPassing PromptHistorySearchStatus = iota
	PromptHistorySearchFailing
)

// PromptHistorySearch is the state rendered by the history-search
// indicator.
type PromptHistorySearch struct {
	Status PromptHistorySearchStatus
	Term   string
}

// Prompt renders the static parts around the edit buffer. Implementations
// must not write to the terminal themselves; the painter places the
// rendered strings.
type Prompt interface {
	// RenderPrompt renders the left prompt for the given terminal width.
	RenderPrompt(width int) string

	// RenderPromptIndicator renders the marker between prompt and buffer.
	RenderPromptIndicator(mode PromptEditMode) string

	// RenderPromptMultilineIndicator renders the continuation marker shown
	// on wrapped/continued lines.
	RenderPromptMultilineIndicator() string

	// RenderPromptHistorySearchIndicator renders the reverse-search
	// prompt.
	RenderPromptHistorySearchIndicator(search PromptHistorySearch) string
}

// DefaultPrompt shows the working directory and a clock. The clock is what
// the periodic repaint keeps current when animation is enabled.
type DefaultPrompt struct{}

func (DefaultPrompt) RenderPrompt(width int) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "no path"
	}
	clock := time.Now().Format("15:04:05")

	padding := width - len(wd) - len(clock) - 1
	if padding < 1 {
		return wd
	}
	return fmt.Sprintf("%s%*s", wd, padding+len(clock), clock)
}

func (DefaultPrompt) RenderPromptIndicator(mode PromptEditMode) string {
	switch mode {
	case PromptViInsertMode:
		return ": "
	case PromptViNormalMode:
		return "> "
	default:
		return "〉"
	}
}

func (DefaultPrompt) RenderPromptMultilineIndicator() string {
	return "::: "
}

func (DefaultPrompt) RenderPromptHistorySearchIndicator(search PromptHistorySearch) string {
	prefix := ""
	if search.Status == PromptHistorySearchFailing {
		prefix = "failing "
	}
	return fmt.Sprintf("(%sreverse-search: %s) ", prefix, search.Term)
}

package bubble_adapter

import (
	"github.com/atotto/clipboard"

	"github.com/ionut-t/goreadline/core"
)

// clipboardCutBuffer backs the kill ring with the system clipboard, so cut
// text survives the process and external copies can be pasted with the
// usual chords. When no clipboard is available (headless sessions) it
// degrades to a process-local buffer.
type clipboardCutBuffer struct {
	fallback string
}

// NewClipboardCutBuffer creates a system-clipboard cut buffer.
func NewClipboardCutBuffer() core.CutBuffer {
	return &clipboardCutBuffer{}
}

func (c *clipboardCutBuffer) Set(content string) {
	c.fallback = content
	_ = clipboard.WriteAll(content)
}

func (c *clipboardCutBuffer) Get() string {
	content, err := clipboard.ReadAll()
	if err != nil {
		return c.fallback
	}
	return content
}

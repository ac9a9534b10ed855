package bubble_adapter

import "github.com/ionut-t/goreadline/core"

// searchState is the last history-search paint, kept for the view.
type searchState struct {
	search core.PromptHistorySearch
	result string
	found  bool
}

// memoryPainter satisfies the engine's painter contract by recording what
// would be drawn. The bubbletea runtime owns the actual terminal, so the
// view renders from this record instead of escape codes.
type memoryPainter struct {
	lines  core.PaintedLines
	search *searchState
	width  int
	height int
}

func newMemoryPainter() *memoryPainter {
	return &memoryPainter{width: 80, height: 24}
}

func (p *memoryPainter) Initialize() error { return nil }

func (p *memoryPainter) RepaintEverything(_ core.Prompt, _ core.PromptEditMode, lines core.PaintedLines, _ bool) error {
	p.lines = lines
	p.search = nil
	return nil
}

func (p *memoryPainter) PaintBuffer(lines core.PaintedLines) error {
	p.lines = lines
	p.search = nil
	return nil
}

func (p *memoryPainter) PaintHistorySearch(_ core.Prompt, search core.PromptHistorySearch, result string, found bool, _ bool) error {
	p.search = &searchState{search: search, result: result, found: found}
	return nil
}

// RequireWrapping is always false: the host viewport soft-wraps.
func (p *memoryPainter) RequireWrapping(*core.LineBuffer) bool { return false }

func (p *memoryPainter) Wrap(lines core.PaintedLines) error {
	return p.PaintBuffer(lines)
}

func (p *memoryPainter) AdjustPromptPosition(*core.LineBuffer) error { return nil }

func (p *memoryPainter) HandleResize(width, height int) {
	p.width, p.height = width, height
}

func (p *memoryPainter) ClearScreen() error { return nil }

func (p *memoryPainter) PaintLine(string) error { return nil }

func (p *memoryPainter) PrintCrlf() error { return nil }

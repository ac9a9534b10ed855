package core

// PaintedLines is the pre-rendered content handed to the painter: the
// highlighted buffer split at the cursor, plus the styled hint.
type PaintedLines struct {
	BeforeCursor string
	AfterCursor  string
	Hint         string
}

// Painter performs the physical drawing. The engine decides *when* and
// *what* to paint; cursor math, wrapping cells, and escape output are the
// painter's concern.
type Painter interface {
	// Initialize queries the terminal size and records where the prompt
	// begins. Called once at the start of each read.
	Initialize() error

	// RepaintEverything redraws prompt, mode indicator, buffer, and hint.
	RepaintEverything(prompt Prompt, mode PromptEditMode, lines PaintedLines, ansi bool) error

	// PaintBuffer redraws only the buffer region.
	PaintBuffer(lines PaintedLines) error

	// PaintHistorySearch redraws the search indicator and the current
	// match; found is false when the needle matches nothing.
	PaintHistorySearch(prompt Prompt, search PromptHistorySearch, result string, found bool, ansi bool) error

	// RequireWrapping reports whether the buffer now extends past the last
	// column and needs wrap handling before the next paint.
	RequireWrapping(buffer *LineBuffer) bool

	// Wrap redraws accounting for a line that crossed the terminal edge.
	Wrap(lines PaintedLines) error

	// AdjustPromptPosition makes room when the buffer grew new lines.
	AdjustPromptPosition(buffer *LineBuffer) error

	// HandleResize records the final dimensions of a resize burst.
	HandleResize(width, height int)

	// ClearScreen clears and homes the cursor.
	ClearScreen() error

	// PaintLine writes msg followed by CRLF, outside the prompt block.
	PaintLine(msg string) error

	// PrintCrlf terminates the prompt block after a submit.
	PrintCrlf() error
}

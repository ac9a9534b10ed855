package tty_adapter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/ionut-t/goreadline/core"
)

// Painter draws the prompt block with ANSI escapes. All positioning is
// relative to the cursor, so terminal scrolling never invalidates it: each
// paint moves back to the start of the edited region, clears downwards,
// and rewrites.
type Painter struct {
	out io.Writer
	fd  int

	width  int
	height int

	// cursorRow is how many rows the cursor sits below the indicator row.
	// Partial paints rewrite from there; full repaints additionally climb
	// promptRows to redraw the prompt above it.
	cursorRow  int
	promptRows int

	// lastIndicator is re-used by partial paints, which do not touch the
	// prompt region.
	lastIndicator  string
	indicatorWidth int
}

// NewPainter creates a painter writing to stdout.
func NewPainter() *Painter {
	return &Painter{out: os.Stdout, fd: int(os.Stdout.Fd()), width: 80, height: 24}
}

// NewPainterTo creates a painter writing to the given terminal.
func NewPainterTo(out *os.File) *Painter {
	return &Painter{out: out, fd: int(out.Fd()), width: 80, height: 24}
}

func (p *Painter) Initialize() error {
	width, height, err := term.GetSize(p.fd)
	if err == nil && width > 0 {
		p.width, p.height = width, height
	}
	p.cursorRow = 0
	p.promptRows = 0
	return nil
}

func (p *Painter) HandleResize(width, height int) {
	if width > 0 {
		p.width = width
	}
	if height > 0 {
		p.height = height
	}
}

func (p *Painter) RepaintEverything(prompt core.Prompt, mode core.PromptEditMode, lines core.PaintedLines, ansi bool) error {
	p.moveUpAndClear(p.cursorRow + p.promptRows)

	rendered := prompt.RenderPrompt(p.width)
	if _, err := fmt.Fprintf(p.out, "%s\r\n", rendered); err != nil {
		return err
	}
	p.promptRows = strings.Count(rendered, "\n") + 1

	p.lastIndicator = prompt.RenderPromptIndicator(mode)
	p.indicatorWidth = lipgloss.Width(p.lastIndicator)

	return p.paintBlock(lines)
}

func (p *Painter) PaintBuffer(lines core.PaintedLines) error {
	p.moveUpAndClear(p.cursorRow)
	return p.paintBlock(lines)
}

// Wrap is a paint that accounts for content crossing the terminal edge.
// The row arithmetic in paintBlock already divides by the terminal width,
// so wrapping needs no separate path beyond a fresh rewrite.
func (p *Painter) Wrap(lines core.PaintedLines) error {
	return p.PaintBuffer(lines)
}

func (p *Painter) RequireWrapping(buffer *core.LineBuffer) bool {
	available := p.width - p.indicatorWidth
	if available <= 0 {
		return true
	}
	for _, line := range strings.Split(buffer.Get(), "\n") {
		if runewidth.StringWidth(line) >= available {
			return true
		}
	}
	return false
}

// AdjustPromptPosition runs after the buffer grows a new line. Relative
// positioning makes explicit room unnecessary: the next paint writes past
// the bottom and lets the terminal scroll.
func (p *Painter) AdjustPromptPosition(*core.LineBuffer) error {
	return nil
}

func (p *Painter) PaintHistorySearch(prompt core.Prompt, search core.PromptHistorySearch, result string, found bool, ansi bool) error {
	p.moveUpAndClear(p.cursorRow)

	indicator := prompt.RenderPromptHistorySearchIndicator(search)
	if _, err := fmt.Fprintf(p.out, "%s%s", indicator, result); err != nil {
		return err
	}

	p.cursorRow, _ = p.position(indicator+result, 0)
	return nil
}

func (p *Painter) ClearScreen() error {
	p.cursorRow = 0
	p.promptRows = 0
	_, err := fmt.Fprint(p.out, "\x1b[2J\x1b[H")
	return err
}

func (p *Painter) PaintLine(msg string) error {
	_, err := fmt.Fprintf(p.out, "%s\r\n", msg)
	p.cursorRow = 0
	p.promptRows = 0
	return err
}

func (p *Painter) PrintCrlf() error {
	_, err := fmt.Fprint(p.out, "\r\n")
	p.cursorRow = 0
	p.promptRows = 0
	return err
}

// moveUpAndClear climbs the given number of rows and clears everything
// from there to the end of the screen.
func (p *Painter) moveUpAndClear(rows int) {
	if rows > 0 {
		fmt.Fprintf(p.out, "\x1b[%dA", rows)
	}
	fmt.Fprint(p.out, "\r\x1b[J")
}

// paintBlock writes indicator, buffer, and hint, then parks the cursor at
// the split point.
func (p *Painter) paintBlock(lines core.PaintedLines) error {
	if _, err := fmt.Fprintf(p.out, "%s%s%s%s",
		p.lastIndicator, lines.BeforeCursor, lines.AfterCursor, lines.Hint); err != nil {
		return err
	}

	cursorRow, cursorCol := p.position(p.lastIndicator+lines.BeforeCursor, 0)
	totalRow, _ := p.position(p.lastIndicator+lines.BeforeCursor+lines.AfterCursor+lines.Hint, 0)

	if up := totalRow - cursorRow; up > 0 {
		fmt.Fprintf(p.out, "\x1b[%dA", up)
	}
	fmt.Fprint(p.out, "\r")
	if cursorCol > 0 {
		fmt.Fprintf(p.out, "\x1b[%dC", cursorCol)
	}

	p.cursorRow = cursorRow
	return nil
}

// position computes the row and column where text ends, starting from
// startCol, wrapping at the terminal width. Rows are separated by CRLF.
func (p *Painter) position(text string, startCol int) (int, int) {
	row, col := 0, startCol
	for i, line := range strings.Split(text, "\r\n") {
		if i > 0 {
			row++
			col = 0
		}
		col += lipgloss.Width(line)
		if p.width > 0 && col >= p.width {
			row += col / p.width
			col = col % p.width
		}
	}
	return row, col
}

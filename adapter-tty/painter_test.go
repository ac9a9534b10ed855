package tty_adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/goreadline/core"
)

func newTestPainter(width int) (*Painter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Painter{out: buf, width: width, height: 24}, buf
}

func TestPainterRepaintEverything(t *testing.T) {
	p, buf := newTestPainter(40)

	err := p.RepaintEverything(
		core.DefaultPrompt{},
		core.PromptEmacsMode,
		core.PaintedLines{BeforeCursor: "make te", AfterCursor: "st"},
		false,
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "〉make test")
	assert.Contains(t, out, "\r\x1b[J", "clears the block before drawing")
}

func TestPainterPartialPaintKeepsPromptRegion(t *testing.T) {
	p, buf := newTestPainter(40)

	require.NoError(t, p.RepaintEverything(
		core.DefaultPrompt{}, core.PromptEmacsMode, core.PaintedLines{}, false))

	buf.Reset()
	require.NoError(t, p.PaintBuffer(core.PaintedLines{BeforeCursor: "x"}))

	// A partial paint stays on the indicator row and never climbs into the
	// prompt line above it.
	assert.False(t, strings.Contains(buf.String(), "\x1b[1A"))
	assert.Contains(t, buf.String(), "〉x")
}

func TestPainterCursorRepositioning(t *testing.T) {
	p, buf := newTestPainter(40)
	p.lastIndicator = "> "
	p.indicatorWidth = 2

	require.NoError(t, p.PaintBuffer(core.PaintedLines{
		BeforeCursor: "ab",
		AfterCursor:  "cd",
	}))

	// Cursor parks at column indicator+before: "\r" then 4 columns right.
	assert.Contains(t, buf.String(), "\x1b[4C")
}

func TestPainterMultilineCursorRow(t *testing.T) {
	p, _ := newTestPainter(40)
	p.lastIndicator = "> "

	require.NoError(t, p.PaintBuffer(core.PaintedLines{
		BeforeCursor: "first\r\n::: sec",
		AfterCursor:  "ond",
	}))

	assert.Equal(t, 1, p.cursorRow, "cursor sits on the second block row")
}

func TestPainterRequireWrapping(t *testing.T) {
	p, _ := newTestPainter(10)
	p.indicatorWidth = 2

	short := core.NewLineBuffer()
	short.InsertString("abc")
	assert.False(t, p.RequireWrapping(short))

	long := core.NewLineBuffer()
	long.InsertString("abcdefghijk")
	assert.True(t, p.RequireWrapping(long))
}

func TestPainterHistorySearchPaint(t *testing.T) {
	p, buf := newTestPainter(60)

	err := p.PaintHistorySearch(
		core.DefaultPrompt{},
		core.PromptHistorySearch{Status: core.PromptHistorySearchFailing, Term: "zzz"},
		"",
		false,
		false,
	)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(failing reverse-search: zzz) ")
}

func TestPainterPrintCrlfResetsTracking(t *testing.T) {
	p, buf := newTestPainter(40)
	p.cursorRow = 3
	p.promptRows = 1

	require.NoError(t, p.PrintCrlf())

	assert.Equal(t, "\r\n", buf.String())
	assert.Zero(t, p.cursorRow)
	assert.Zero(t, p.promptRows)
}

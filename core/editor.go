package core

// CutBuffer is the kill-ring slot used by the cut and paste commands.
// The default is process-local; adapters may provide a system-clipboard
// backed implementation.
type CutBuffer interface {
	Set(content string)
	Get() string
}

type localCutBuffer struct {
	content string
}

// NewLocalCutBuffer creates an in-process cut buffer.
func NewLocalCutBuffer() CutBuffer {
	return &localCutBuffer{}
}

func (b *localCutBuffer) Set(content string) { b.content = content }
func (b *localCutBuffer) Get() string        { return b.content }

// Editor couples the line buffer with the cut buffer and the undo stack.
// It is exclusively owned by the engine for the session's duration.
type Editor struct {
	*LineBuffer
	cutBuffer CutBuffer
	undo      *undoStack
}

// NewEditor creates an editor with an empty buffer and a local cut buffer.
func NewEditor() *Editor {
	return &Editor{
		LineBuffer: NewLineBuffer(),
		cutBuffer:  NewLocalCutBuffer(),
		undo:       newUndoStack(0),
	}
}

// SetCutBuffer swaps the kill-ring implementation.
func (e *Editor) SetCutBuffer(cutBuffer CutBuffer) {
	if cutBuffer != nil {
		e.cutBuffer = cutBuffer
	}
}

func (e *Editor) snapshot() snapshot {
	return snapshot{content: e.lines, insertionPoint: e.insertionPoint}
}

func (e *Editor) restore(snap snapshot) {
	e.lines = snap.content
	e.insertionPoint = snap.insertionPoint
	if e.insertionPoint > len(e.lines) {
		e.insertionPoint = len(e.lines)
	}
}

// RememberUndoState checkpoints the current state. A full checkpoint opens
// a new undo step; otherwise the state coalesces into the open step.
func (e *Editor) RememberUndoState(full bool) {
	e.undo.Remember(e.snapshot(), full)
}

// CloseUndoGroup ends the open coalescing group without checkpointing.
func (e *Editor) CloseUndoGroup() {
	e.undo.CloseGroup()
}

// ResetUndoStack clears all checkpoints, keeping only the current state.
func (e *Editor) ResetUndoStack() {
	e.undo.Reset(e.snapshot())
}

// Undo restores the previous checkpoint.
func (e *Editor) Undo() error {
	snap, err := e.undo.Undo()
	if err != nil {
		return err
	}
	e.restore(snap)
	return nil
}

// Redo restores the next checkpoint.
func (e *Editor) Redo() error {
	snap, err := e.undo.Redo()
	if err != nil {
		return err
	}
	e.restore(snap)
	return nil
}

// --- Cut and paste ---

// cut removes lines[start:end] into the cut buffer and leaves the cursor
// at start. Empty ranges leave the cut buffer untouched.
func (e *Editor) cut(start, end int) {
	if start >= end {
		return
	}
	e.cutBuffer.Set(e.lines[start:end])
	e.lines = e.lines[:start] + e.lines[end:]
	e.insertionPoint = start
}

// CutFromStart cuts from the beginning of the buffer to the cursor.
func (e *Editor) CutFromStart() {
	e.cut(0, e.insertionPoint)
}

// CutFromLineStart cuts from the start of the current line to the cursor.
func (e *Editor) CutFromLineStart() {
	e.cut(e.currentLineStart(), e.insertionPoint)
}

// CutToEnd cuts from the cursor to the end of the buffer.
func (e *Editor) CutToEnd() {
	e.cut(e.insertionPoint, len(e.lines))
}

// CutToLineEnd cuts the rest of the current line.
func (e *Editor) CutToLineEnd() {
	e.cut(e.insertionPoint, e.currentLineEnd())
}

// CutCurrentLine cuts the whole current line including its newline.
func (e *Editor) CutCurrentLine() {
	start := e.currentLineStart()
	end := e.currentLineEnd()
	if end < len(e.lines) {
		end++ // take the trailing newline with the line
	}
	e.cut(start, end)
}

// CutWordLeft cuts from the start of the previous word to the cursor.
func (e *Editor) CutWordLeft() {
	e.cut(e.wordLeftIndex(), e.insertionPoint)
}

// CutWordRight cuts from the cursor to the end of the next word.
func (e *Editor) CutWordRight() {
	e.cut(e.insertionPoint, e.wordRightIndex())
}

// CutRightUntilChar cuts from the cursor through the next occurrence of c,
// or up to it when before is set. No-op if c does not occur.
func (e *Editor) CutRightUntilChar(c rune, before bool) {
	idx, ok := e.findCharRight(c)
	if !ok {
		return
	}
	end := idx
	if !before {
		end += len(string(c))
	}
	e.cut(e.insertionPoint, end)
}

// CutLeftUntilChar mirrors CutRightUntilChar, scanning backwards.
func (e *Editor) CutLeftUntilChar(c rune, before bool) {
	idx, ok := e.findCharLeft(c)
	if !ok {
		return
	}
	start := idx
	if before {
		start += len(string(c))
	}
	e.cut(start, e.insertionPoint)
}

// InsertCutBufferBefore pastes the cut buffer at the cursor.
func (e *Editor) InsertCutBufferBefore() {
	e.InsertString(e.cutBuffer.Get())
}

// InsertCutBufferAfter pastes the cut buffer after the grapheme under the
// cursor.
func (e *Editor) InsertCutBufferAfter() {
	e.MoveRight()
	e.InsertString(e.cutBuffer.Get())
}

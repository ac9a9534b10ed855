package core

import (
	"fmt"
	"time"

	"github.com/rivo/uniseg"
)

// inputMode is the engine's interaction state. Regular dispatches edit
// commands, history search routes keystrokes into the live needle, and
// history traversal overlays history entries on the buffer until the next
// real edit demotes back to regular.
type inputMode int

const (
	inputModeRegular inputMode = iota
	inputModeHistorySearch
	inputModeHistoryTraversal
)

// LineEditor orchestrates one line of interactive input: it drains event
// bursts from the source, classifies them, routes them through the mode
// state machine, and coordinates repainting. Collaborators are swappable;
// the zero configuration is a plain emacs-bound editor with in-memory
// history.
type LineEditor struct {
	editor      *Editor
	history     History
	validator   Validator
	painter     Painter
	editMode    EditMode
	tabHandler  CompletionActionHandler
	highlighter Highlighter
	hinter      Hinter
	source      EventSource

	mode            inputMode
	animate         bool
	useAnsiColoring bool

	// needFullRepaint is set by handlers whose effect changes the prompt
	// block geometry (history overlays, tab expansion); Dispatch consumes
	// it after the burst.
	needFullRepaint bool
}

// Option configures a LineEditor.
type Option func(*LineEditor)

// WithEventSource sets the terminal event source used by ReadLine.
func WithEventSource(source EventSource) Option {
	return func(e *LineEditor) { e.source = source }
}

// WithPainter sets the output side.
func WithPainter(painter Painter) Option {
	return func(e *LineEditor) { e.painter = painter }
}

// WithHistory replaces the default in-memory history store.
func WithHistory(history History) Option {
	return func(e *LineEditor) { e.history = history }
}

// WithValidator replaces the bracket/quote continuation validator.
func WithValidator(validator Validator) Option {
	return func(e *LineEditor) { e.validator = validator }
}

// WithEditMode replaces the emacs key bindings.
func WithEditMode(mode EditMode) Option {
	return func(e *LineEditor) { e.editMode = mode }
}

// WithHinter enables inline ghost-text hints.
func WithHinter(hinter Hinter) Option {
	return func(e *LineEditor) { e.hinter = hinter }
}

// WithCompletionActionHandler sets the tab handler used when no hint is
// active.
func WithCompletionActionHandler(handler CompletionActionHandler) Option {
	return func(e *LineEditor) { e.tabHandler = handler }
}

// WithHighlighter enables buffer highlighting.
func WithHighlighter(highlighter Highlighter) Option {
	return func(e *LineEditor) { e.highlighter = highlighter }
}

// WithCutBuffer replaces the process-local kill ring, e.g. with a system
// clipboard.
func WithCutBuffer(cutBuffer CutBuffer) Option {
	return func(e *LineEditor) { e.editor.SetCutBuffer(cutBuffer) }
}

// WithAnimation repaints on poll timeouts so live prompt content (like a
// clock) stays current.
func WithAnimation() Option {
	return func(e *LineEditor) { e.animate = true }
}

// WithoutAnsiColors renders everything unstyled.
func WithoutAnsiColors() Option {
	return func(e *LineEditor) { e.useAnsiColoring = false }
}

// New creates a line editor. Without options it has emacs bindings,
// in-memory history, bracket/quote validation, and no terminal attached;
// attach an EventSource and a Painter before calling ReadLine.
func New(opts ...Option) *LineEditor {
	e := &LineEditor{
		editor:          NewEditor(),
		history:         NewInMemoryHistory(),
		validator:       DefaultValidator{},
		editMode:        NewEmacs(),
		painter:         noopPainter{},
		useAnsiColoring: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the current in-progress content.
func (e *LineEditor) Buffer() string {
	return e.editor.Get()
}

// InsertionPoint returns the cursor's byte offset into the buffer.
func (e *LineEditor) InsertionPoint() int {
	return e.editor.InsertionPoint()
}

// ReadLine runs one blocking interaction and returns its terminal signal.
// The event source's raw-mode guard brackets the whole read, including
// error paths.
func (e *LineEditor) ReadLine(prompt Prompt) (Signal, error) {
	if e.source == nil {
		return nil, ErrNoEventSource
	}
	if err := e.source.Enter(); err != nil {
		return nil, err
	}
	defer e.source.Exit()

	return e.readLineHelper(prompt)
}

func (e *LineEditor) readLineHelper(prompt Prompt) (Signal, error) {
	if err := e.painter.Initialize(); err != nil {
		return nil, err
	}
	if err := e.fullRepaint(prompt); err != nil {
		return nil, err
	}

	for {
		ok, err := e.source.Poll(time.Second)
		if err != nil {
			return nil, err
		}
		if !ok {
			if e.animate && e.mode == inputModeRegular {
				if err := e.fullRepaint(prompt); err != nil {
					return nil, err
				}
			}
			continue
		}

		raw, err := e.drainBurst()
		if err != nil {
			return nil, err
		}

		signal, err := e.Dispatch(raw, prompt)
		if err != nil {
			return nil, err
		}
		if signal != nil {
			return signal, nil
		}
	}
}

// drainBurst reads every event that arrives within pollWait of the
// previous one, so pastes and resize storms land in one batch.
func (e *LineEditor) drainBurst() ([]RawEvent, error) {
	var raw []RawEvent
	for {
		event, err := e.source.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		raw = append(raw, event)

		more, err := e.source.Poll(pollWait)
		if err != nil {
			return nil, err
		}
		if !more {
			return raw, nil
		}
	}
}

// Dispatch classifies one drained burst and runs it through the mode state
// machine, repainting afterwards. It is the non-blocking entry point for
// hosts that own their own event loop (e.g. a bubbletea program); ReadLine
// uses it internally.
func (e *LineEditor) Dispatch(raw []RawEvent, prompt Prompt) (Signal, error) {
	events := classifyEvents(raw, e.editMode.ParseEvent)
	modeBefore := e.mode

	for _, event := range events {
		signal, err := e.handleEvent(prompt, event)
		if err != nil {
			return nil, err
		}
		if signal != nil {
			return signal, nil
		}
	}

	if e.mode == inputModeHistorySearch {
		return nil, e.historySearchPaint(prompt)
	}
	if e.needFullRepaint || e.mode != modeBefore {
		e.needFullRepaint = false
		if err := e.painter.AdjustPromptPosition(e.editor.LineBuffer); err != nil {
			return nil, err
		}
		return nil, e.fullRepaint(prompt)
	}
	return nil, e.repaint(prompt)
}

func (e *LineEditor) handleEvent(prompt Prompt, event Event) (Signal, error) {
	if e.mode == inputModeHistorySearch {
		return e.handleHistorySearchEvent(prompt, event)
	}
	return e.handleEditorEvent(prompt, event)
}

// --- History search mode ---

func (e *LineEditor) handleHistorySearchEvent(prompt Prompt, event Event) (Signal, error) {
	switch event.Kind {
	case EventEdit:
		e.runHistorySearchCommands(event.Commands)

	case EventEnter, EventHandleTab:
		// Commit the match into the buffer and resume editing it.
		if entry, ok := e.history.StringAtCursor(); ok {
			e.editor.SetBuffer(entry)
			e.editor.RememberUndoState(true)
		}
		e.mode = inputModeRegular

	case EventCtrlC:
		e.mode = inputModeRegular

	case EventCtrlD:
		e.mode = inputModeRegular
		if q := e.history.GetNavigation(); q.Kind == NavigationSubstringSearch && q.Substring == "" {
			e.editor.ResetUndoStack()
			return EndOfInputSignal{}, nil
		}

	case EventClearScreen:
		return ClearScreenSignal{}, nil

	case EventSearchHistory, EventPreviousHistory, EventUp:
		e.history.Back()

	case EventNextHistory, EventDown:
		// Never park on the dead position past the newest match.
		e.history.Forward()
		if _, ok := e.history.StringAtCursor(); !ok {
			e.history.Back()
		}

	case EventResize:
		e.painter.HandleResize(event.Width, event.Height)

	case EventMouse, EventNone, EventRepaint:
		// Ignored in search mode.

	case EventPaste, EventMultiple:
		// Bursts are not routed into the needle; leave the search as is.

	default:
		e.mode = inputModeRegular
	}
	return nil, nil
}

// runHistorySearchCommands edits the live needle. Insertions and
// backspaces re-run the query from the newest entry; anything else leaves
// search mode.
func (e *LineEditor) runHistorySearchCommands(commands []EditCommand) {
	for _, cmd := range commands {
		switch cmd.Kind {
		case EditInsertChar:
			needle := e.history.GetNavigation().Substring + string(cmd.Char)
			e.history.SetNavigation(SubstringSearchNavigation(needle))
			e.history.Back()

		case EditBackspace:
			needle := trimLastGrapheme(e.history.GetNavigation().Substring)
			e.history.SetNavigation(SubstringSearchNavigation(needle))
			e.history.Back()

		default:
			e.mode = inputModeRegular
			return
		}
	}
}

func trimLastGrapheme(s string) string {
	last := 0
	offset := 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = offset
		offset += len(cluster)
	}
	return s[:last]
}

// --- Regular and traversal modes ---

func (e *LineEditor) handleEditorEvent(prompt Prompt, event Event) (Signal, error) {
	switch event.Kind {
	case EventNone, EventMouse:
		return nil, nil

	case EventResize:
		e.painter.HandleResize(event.Width, event.Height)
		return nil, e.fullRepaint(prompt)

	case EventRepaint:
		return nil, nil

	case EventClearScreen:
		return ClearScreenSignal{}, nil

	case EventCtrlC:
		e.editor.Clear()
		e.editor.ResetUndoStack()
		e.mode = inputModeRegular
		return InterruptSignal{}, nil

	case EventCtrlD:
		if e.editor.IsEmpty() {
			e.editor.ResetUndoStack()
			e.mode = inputModeRegular
			return EndOfInputSignal{}, nil
		}
		e.runEditCommands([]EditCommand{Delete()})
		return nil, nil

	case EventEnter:
		return e.submit(prompt)

	case EventHandleTab:
		e.handleTab()
		return nil, nil

	case EventPreviousHistory:
		e.previousHistory()
		return nil, nil

	case EventNextHistory:
		e.nextHistory()
		return nil, nil

	case EventUp:
		if e.editor.IsCursorAtFirstLine() {
			e.previousHistory()
		} else {
			e.runEditCommands([]EditCommand{MoveLineUp()})
		}
		return nil, nil

	case EventDown:
		if e.editor.IsCursorAtLastLine() {
			e.nextHistory()
		} else {
			e.runEditCommands([]EditCommand{MoveLineDown()})
		}
		return nil, nil

	case EventSearchHistory:
		e.editor.RememberUndoState(true)
		e.mode = inputModeHistorySearch
		e.history.SetNavigation(SubstringSearchNavigation(""))
		return nil, nil

	case EventEdit:
		e.runEditCommands(event.Commands)
		return nil, nil

	case EventPaste, EventMultiple:
		e.needFullRepaint = true
		for _, sub := range event.Events {
			signal, err := e.handleEvent(prompt, sub)
			if err != nil {
				return nil, err
			}
			if signal != nil {
				return signal, nil
			}
		}
		return nil, nil
	}
	return nil, nil
}

func (e *LineEditor) submit(prompt Prompt) (Signal, error) {
	content := e.editor.Get()

	if e.validator != nil && e.validator.Validate(content) == ValidationIncomplete {
		e.runEditCommands([]EditCommand{InsertChar('\n')})
		if err := e.painter.AdjustPromptPosition(e.editor.LineBuffer); err != nil {
			return nil, err
		}
		return nil, e.fullRepaint(prompt)
	}

	if e.mode == inputModeHistoryTraversal {
		e.materializeHistoryEntry()
		e.mode = inputModeRegular
		content = e.editor.Get()
	}

	e.history.Append(content)
	e.editor.Clear()
	e.editor.ResetUndoStack()
	if err := e.painter.PrintCrlf(); err != nil {
		return nil, err
	}
	return SuccessSignal{content: content}, nil
}

// handleTab accepts the current hint when one is showing, otherwise runs
// the completion action handler. Hints only exist in regular mode; while
// traversing history the recalled entry is materialized first so the
// handler edits real content.
func (e *LineEditor) handleTab() {
	e.needFullRepaint = true

	if e.mode == inputModeRegular && e.hinter != nil {
		if hint := e.hinter.CurrentHint(); hint != "" {
			e.editor.ClearToEnd()
			e.editor.InsertString(hint)
			e.editor.RememberUndoState(true)
			return
		}
	}

	if e.mode == inputModeHistoryTraversal {
		e.materializeHistoryEntry()
		e.mode = inputModeRegular
	}
	if e.tabHandler != nil {
		e.tabHandler.Handle(e.editor.LineBuffer)
		e.editor.RememberUndoState(true)
	}
}

// --- History traversal ---

func (e *LineEditor) previousHistory() {
	if e.mode != inputModeHistoryTraversal {
		e.mode = inputModeHistoryTraversal
		e.setHistoryNavigationBasedOnLineBuffer()
	}
	e.history.Back()
	e.updateBufferFromHistory()
	e.needFullRepaint = true
}

func (e *LineEditor) nextHistory() {
	if e.mode != inputModeHistoryTraversal {
		e.mode = inputModeHistoryTraversal
		e.setHistoryNavigationBasedOnLineBuffer()
	}
	e.history.Forward()
	e.updateBufferFromHistory()
	e.needFullRepaint = true
}

// setHistoryNavigationBasedOnLineBuffer chooses the traversal query: an
// empty buffer or a mid-line cursor walks chronologically, a cursor at the
// end of a non-empty line walks prefix matches of it.
func (e *LineEditor) setHistoryNavigationBasedOnLineBuffer() {
	buffer := e.editor.Get()
	if buffer == "" || e.editor.InsertionPoint() != len(buffer) {
		e.history.SetNavigation(NormalNavigation(e.editor.Clone()))
		return
	}
	e.history.SetNavigation(PrefixSearchNavigation(buffer))
}

// updateBufferFromHistory overlays the entry under the cursor, restoring
// the user's original input (or the prefix) when the cursor walks past the
// newest match.
func (e *LineEditor) updateBufferFromHistory() {
	navigation := e.history.GetNavigation()
	switch navigation.Kind {
	case NavigationNormal:
		if entry, ok := e.history.StringAtCursor(); ok {
			e.editor.SetBuffer(entry)
		} else {
			*e.editor.LineBuffer = navigation.Original
		}
	case NavigationPrefixSearch:
		if entry, ok := e.history.StringAtCursor(); ok {
			e.editor.SetBuffer(entry)
		} else {
			e.editor.SetBuffer(navigation.Prefix)
		}
	case NavigationSubstringSearch:
		// Substring queries belong to search mode, which paints straight
		// from the history cursor; nothing to materialize.
	}
}

// materializeHistoryEntry pins the traversal overlay into the buffer, so
// subsequent edits work on real content.
func (e *LineEditor) materializeHistoryEntry() {
	e.updateBufferFromHistory()
}

// --- Edit dispatch ---

// runEditCommands applies a batch of commands. Arriving here while
// traversing history first materializes the overlaid entry and demotes to
// regular mode. Each command checkpoints per its undo policy.
func (e *LineEditor) runEditCommands(commands []EditCommand) {
	if e.mode == inputModeHistoryTraversal {
		e.materializeHistoryEntry()
		e.mode = inputModeRegular
	}

	for _, cmd := range commands {
		e.applyEditCommand(cmd)

		switch cmd.UndoBehavior() {
		case UndoIgnore:
			e.editor.CloseUndoGroup()
		case UndoFull:
			e.editor.RememberUndoState(true)
		case UndoCoalesce:
			e.editor.RememberUndoState(false)
		}
	}
}

func (e *LineEditor) applyEditCommand(cmd EditCommand) {
	switch cmd.Kind {
	case EditMoveToStart:
		e.editor.MoveToStart()
	case EditMoveToEnd:
		e.editor.MoveToEnd()
	case EditMoveToLineStart:
		e.editor.MoveToLineStart()
	case EditMoveToLineEnd:
		e.editor.MoveToLineEnd()
	case EditMoveLeft:
		e.editor.MoveLeft()
	case EditMoveRight:
		e.editor.MoveRight()
	case EditMoveWordLeft:
		e.editor.MoveWordLeft()
	case EditMoveWordRight:
		e.editor.MoveWordRight()
	case EditMoveLineUp:
		e.editor.MoveLineUp()
	case EditMoveLineDown:
		e.editor.MoveLineDown()
	case EditInsertChar:
		e.editor.InsertChar(cmd.Char)
	case EditInsertString:
		e.editor.InsertString(cmd.Text)
	case EditBackspace:
		e.editor.Backspace()
	case EditDelete:
		e.editor.Delete()
	case EditBackspaceWord:
		e.editor.BackspaceWord()
	case EditDeleteWord:
		e.editor.DeleteWord()
	case EditClear:
		e.editor.Clear()
	case EditClearToLineEnd:
		e.editor.ClearToLineEnd()
	case EditCutCurrentLine:
		e.editor.CutCurrentLine()
	case EditCutFromStart:
		e.editor.CutFromStart()
	case EditCutFromLineStart:
		e.editor.CutFromLineStart()
	case EditCutToEnd:
		e.editor.CutToEnd()
	case EditCutToLineEnd:
		e.editor.CutToLineEnd()
	case EditCutWordLeft:
		e.editor.CutWordLeft()
	case EditCutWordRight:
		e.editor.CutWordRight()
	case EditPasteCutBufferBefore:
		e.editor.InsertCutBufferBefore()
	case EditPasteCutBufferAfter:
		e.editor.InsertCutBufferAfter()
	case EditUppercaseWord:
		e.editor.UppercaseWord()
	case EditLowercaseWord:
		e.editor.LowercaseWord()
	case EditCapitalizeChar:
		e.editor.CapitalizeChar()
	case EditSwapWords:
		e.editor.SwapWords()
	case EditSwapGraphemes:
		e.editor.SwapGraphemes()
	case EditUndo:
		_ = e.editor.Undo()
	case EditRedo:
		_ = e.editor.Redo()
	case EditCutRightUntil:
		e.editor.CutRightUntilChar(cmd.Char, false)
	case EditCutRightBefore:
		e.editor.CutRightUntilChar(cmd.Char, true)
	case EditMoveRightUntil:
		e.editor.MoveRightUntilChar(cmd.Char, false)
	case EditMoveRightBefore:
		e.editor.MoveRightUntilChar(cmd.Char, true)
	case EditCutLeftUntil:
		e.editor.CutLeftUntilChar(cmd.Char, false)
	case EditCutLeftBefore:
		e.editor.CutLeftUntilChar(cmd.Char, true)
	case EditMoveLeftUntil:
		e.editor.MoveLeftUntilChar(cmd.Char, false)
	case EditMoveLeftBefore:
		e.editor.MoveLeftUntilChar(cmd.Char, true)
	}
}

// --- Painting ---

func (e *LineEditor) prepareBufferContent(prompt Prompt) PaintedLines {
	buffer := e.editor.Get()

	highlighter := e.highlighter
	if highlighter == nil {
		highlighter = NewDefaultHighlighter(nil)
	}
	styled := highlighter.Highlight(buffer)

	before, after := styled.RenderAroundInsertionPoint(
		e.editor.InsertionPoint(),
		prompt.RenderPromptMultilineIndicator(),
		e.useAnsiColoring,
	)

	hint := ""
	if e.mode == inputModeRegular && e.hinter != nil {
		hint = e.hinter.Handle(buffer, e.editor.InsertionPoint(), e.history, e.useAnsiColoring)
	}

	return PaintedLines{BeforeCursor: before, AfterCursor: after, Hint: hint}
}

func (e *LineEditor) repaint(prompt Prompt) error {
	lines := e.prepareBufferContent(prompt)
	if e.painter.RequireWrapping(e.editor.LineBuffer) {
		return e.painter.Wrap(lines)
	}
	return e.painter.PaintBuffer(lines)
}

func (e *LineEditor) fullRepaint(prompt Prompt) error {
	return e.painter.RepaintEverything(
		prompt,
		e.editMode.PromptMode(),
		e.prepareBufferContent(prompt),
		e.useAnsiColoring,
	)
}

func (e *LineEditor) historySearchPaint(prompt Prompt) error {
	needle := e.history.GetNavigation().Substring
	result, found := e.history.StringAtCursor()

	status := PromptHistorySearchPassing
	if needle != "" && !found {
		status = PromptHistorySearchFailing
	}

	return e.painter.PaintHistorySearch(
		prompt,
		PromptHistorySearch{Status: status, Term: needle},
		result,
		found,
		e.useAnsiColoring,
	)
}

// PrintLine writes a message below the prompt block, outside the edited
// region.
func (e *LineEditor) PrintLine(msg string) error {
	return e.painter.PaintLine(msg)
}

// PrintHistory writes the numbered history, oldest first.
func (e *LineEditor) PrintHistory() error {
	for i, entry := range e.history.IterChronologic() {
		if err := e.painter.PaintLine(fmt.Sprintf("%d\t%s", i+1, entry)); err != nil {
			return err
		}
	}
	return nil
}

// ClearScreen clears the terminal and redraws nothing; callers typically
// follow up with the next ReadLine.
func (e *LineEditor) ClearScreen() error {
	return e.painter.ClearScreen()
}

// noopPainter keeps a painterless engine (tests, headless hosts driving
// Dispatch) from nil-checking every paint site.
type noopPainter struct{}

func (noopPainter) Initialize() error { return nil }
func (noopPainter) RepaintEverything(Prompt, PromptEditMode, PaintedLines, bool) error {
	return nil
}
func (noopPainter) PaintBuffer(PaintedLines) error { return nil }
func (noopPainter) PaintHistorySearch(Prompt, PromptHistorySearch, string, bool, bool) error {
	return nil
}
func (noopPainter) RequireWrapping(*LineBuffer) bool  { return false }
func (noopPainter) Wrap(PaintedLines) error           { return nil }
func (noopPainter) AdjustPromptPosition(*LineBuffer) error { return nil }
func (noopPainter) HandleResize(int, int)             {}
func (noopPainter) ClearScreen() error                { return nil }
func (noopPainter) PaintLine(string) error            { return nil }
func (noopPainter) PrintCrlf() error                  { return nil }

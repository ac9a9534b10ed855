package core

// EventKind enumerates the device-independent events the engine reacts to.
// They are produced by the active EditMode (or synthesized by the event
// classifier) and consumed by the mode state machine.
type EventKind int

const (
	// EventNone is a no-op placeholder for unbound keys.
	EventNone EventKind = iota
	// EventEdit carries a batch of EditCommands for the dispatcher.
	EventEdit
	// EventEnter submits the buffer, subject to validation.
	EventEnter
	// EventCtrlC aborts the current line.
	EventCtrlC
	// EventCtrlD signals end of input on an empty buffer, otherwise a
	// forward delete.
	EventCtrlD
	// EventClearScreen asks the caller to clear the screen (Ctrl-L).
	EventClearScreen
	// EventRepaint is synthesized when the poll times out and animation
	// is enabled, keeping live prompt content (e.g. a clock) current.
	EventRepaint
	// EventResize carries the final terminal dimensions of a burst.
	EventResize
	// EventPreviousHistory and EventNextHistory step the history store.
	EventPreviousHistory
	EventNextHistory
	// EventUp and EventDown move inside a multiline buffer, falling back
	// to history stepping on the first/last line.
	EventUp
	EventDown
	// EventSearchHistory enters interactive substring search.
	EventSearchHistory
	// EventHandleTab accepts the current hint or runs the completion
	// action handler.
	EventHandleTab
	// EventMouse is accepted and ignored.
	EventMouse
	// EventPaste wraps the parsed sub-events of a burst classified as a
	// paste, to be dispatched atomically.
	EventPaste
	// EventMultiple wraps an ordered sequence of events dispatched in one
	// pass, e.g. from count-prefixed bindings.
	EventMultiple
)

// Event is the tagged union consumed by the mode state machine. Only the
// fields implied by Kind are meaningful.
type Event struct {
	Kind EventKind

	// Commands is populated for EventEdit.
	Commands []EditCommand

	// Width and Height are populated for EventResize.
	Width  int
	Height int

	// Events is populated for EventPaste and EventMultiple.
	Events []Event
}

func NoneEvent() Event                  { return Event{Kind: EventNone} }
func EditEvent(cmds ...EditCommand) Event { return Event{Kind: EventEdit, Commands: cmds} }
func EnterEvent() Event                 { return Event{Kind: EventEnter} }
func CtrlCEvent() Event                 { return Event{Kind: EventCtrlC} }
func CtrlDEvent() Event                 { return Event{Kind: EventCtrlD} }
func ClearScreenEvent() Event           { return Event{Kind: EventClearScreen} }
func RepaintEvent() Event               { return Event{Kind: EventRepaint} }
func PreviousHistoryEvent() Event       { return Event{Kind: EventPreviousHistory} }
func NextHistoryEvent() Event           { return Event{Kind: EventNextHistory} }
func UpEvent() Event                    { return Event{Kind: EventUp} }
func DownEvent() Event                  { return Event{Kind: EventDown} }
func SearchHistoryEvent() Event         { return Event{Kind: EventSearchHistory} }
func HandleTabEvent() Event             { return Event{Kind: EventHandleTab} }
func MouseEvent() Event                 { return Event{Kind: EventMouse} }

func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

func PasteEvent(events []Event) Event {
	return Event{Kind: EventPaste, Events: events}
}

func MultipleEvent(events []Event) Event {
	return Event{Kind: EventMultiple, Events: events}
}

// EditKind enumerates the primitive buffer mutations.
type EditKind int

const (
	EditMoveToStart EditKind = iota
	EditMoveToEnd
	EditMoveToLineStart
	EditMoveToLineEnd
	EditMoveLeft
	EditMoveRight
	EditMoveWordLeft
	EditMoveWordRight
	EditMoveLineUp
	EditMoveLineDown
	EditInsertChar
	EditInsertString
	EditBackspace
	EditDelete
	EditBackspaceWord
	EditDeleteWord
	EditClear
	EditClearToLineEnd
	EditCutCurrentLine
	EditCutFromStart
	EditCutFromLineStart
	EditCutToEnd
	EditCutToLineEnd
	EditCutWordLeft
	EditCutWordRight
	EditPasteCutBufferBefore
	EditPasteCutBufferAfter
	EditUppercaseWord
	EditLowercaseWord
	EditCapitalizeChar
	EditSwapWords
	EditSwapGraphemes
	EditUndo
	EditRedo
	EditCutRightUntil
	EditCutRightBefore
	EditMoveRightUntil
	EditMoveRightBefore
	EditCutLeftUntil
	EditCutLeftBefore
	EditMoveLeftUntil
	EditMoveLeftBefore
)

// EditCommand is one atomic buffer mutation with a fixed undo policy.
// Char is meaningful for InsertChar and the Until/Before variants, Text for
// InsertString.
type EditCommand struct {
	Kind EditKind
	Char rune
	Text string
}

func MoveToStart() EditCommand      { return EditCommand{Kind: EditMoveToStart} }
func MoveToEnd() EditCommand        { return EditCommand{Kind: EditMoveToEnd} }
func MoveToLineStart() EditCommand  { return EditCommand{Kind: EditMoveToLineStart} }
func MoveToLineEnd() EditCommand    { return EditCommand{Kind: EditMoveToLineEnd} }
func MoveLeft() EditCommand         { return EditCommand{Kind: EditMoveLeft} }
func MoveRight() EditCommand        { return EditCommand{Kind: EditMoveRight} }
func MoveWordLeft() EditCommand     { return EditCommand{Kind: EditMoveWordLeft} }
func MoveWordRight() EditCommand    { return EditCommand{Kind: EditMoveWordRight} }
func MoveLineUp() EditCommand       { return EditCommand{Kind: EditMoveLineUp} }
func MoveLineDown() EditCommand     { return EditCommand{Kind: EditMoveLineDown} }
func Backspace() EditCommand        { return EditCommand{Kind: EditBackspace} }
func Delete() EditCommand           { return EditCommand{Kind: EditDelete} }
func BackspaceWord() EditCommand    { return EditCommand{Kind: EditBackspaceWord} }
func DeleteWord() EditCommand       { return EditCommand{Kind: EditDeleteWord} }
func Clear() EditCommand            { return EditCommand{Kind: EditClear} }
func ClearToLineEnd() EditCommand   { return EditCommand{Kind: EditClearToLineEnd} }
func CutCurrentLine() EditCommand   { return EditCommand{Kind: EditCutCurrentLine} }
func CutFromStart() EditCommand     { return EditCommand{Kind: EditCutFromStart} }
func CutFromLineStart() EditCommand { return EditCommand{Kind: EditCutFromLineStart} }
func CutToEnd() EditCommand         { return EditCommand{Kind: EditCutToEnd} }
func CutToLineEnd() EditCommand     { return EditCommand{Kind: EditCutToLineEnd} }
func CutWordLeft() EditCommand      { return EditCommand{Kind: EditCutWordLeft} }
func CutWordRight() EditCommand     { return EditCommand{Kind: EditCutWordRight} }
func UppercaseWord() EditCommand    { return EditCommand{Kind: EditUppercaseWord} }
func LowercaseWord() EditCommand    { return EditCommand{Kind: EditLowercaseWord} }
func CapitalizeChar() EditCommand   { return EditCommand{Kind: EditCapitalizeChar} }
func SwapWords() EditCommand        { return EditCommand{Kind: EditSwapWords} }
func SwapGraphemes() EditCommand    { return EditCommand{Kind: EditSwapGraphemes} }
func Undo() EditCommand             { return EditCommand{Kind: EditUndo} }
func Redo() EditCommand             { return EditCommand{Kind: EditRedo} }

func PasteCutBufferBefore() EditCommand { return EditCommand{Kind: EditPasteCutBufferBefore} }
func PasteCutBufferAfter() EditCommand  { return EditCommand{Kind: EditPasteCutBufferAfter} }

func InsertChar(c rune) EditCommand   { return EditCommand{Kind: EditInsertChar, Char: c} }
func InsertString(s string) EditCommand { return EditCommand{Kind: EditInsertString, Text: s} }

func CutRightUntil(c rune) EditCommand  { return EditCommand{Kind: EditCutRightUntil, Char: c} }
func CutRightBefore(c rune) EditCommand { return EditCommand{Kind: EditCutRightBefore, Char: c} }
func MoveRightUntil(c rune) EditCommand { return EditCommand{Kind: EditMoveRightUntil, Char: c} }
func MoveRightBefore(c rune) EditCommand {
	return EditCommand{Kind: EditMoveRightBefore, Char: c}
}
func CutLeftUntil(c rune) EditCommand  { return EditCommand{Kind: EditCutLeftUntil, Char: c} }
func CutLeftBefore(c rune) EditCommand { return EditCommand{Kind: EditCutLeftBefore, Char: c} }
func MoveLeftUntil(c rune) EditCommand { return EditCommand{Kind: EditMoveLeftUntil, Char: c} }
func MoveLeftBefore(c rune) EditCommand {
	return EditCommand{Kind: EditMoveLeftBefore, Char: c}
}

// UndoBehavior governs how a command interacts with the undo checkpoint
// stack.
type UndoBehavior int

const (
	// UndoIgnore performs no checkpoint; pure navigation. It still closes
	// the open coalescing group.
	UndoIgnore UndoBehavior = iota
	// UndoFull always records a new checkpoint.
	UndoFull
	// UndoCoalesce merges into the currently open checkpoint group,
	// opening one if none is open.
	UndoCoalesce
)

// undoBehaviors is the single place mapping command tags to undo policy.
var undoBehaviors = map[EditKind]UndoBehavior{
	EditMoveToStart:     UndoIgnore,
	EditMoveToEnd:       UndoIgnore,
	EditMoveToLineStart: UndoIgnore,
	EditMoveToLineEnd:   UndoIgnore,
	EditMoveLeft:        UndoIgnore,
	EditMoveRight:       UndoIgnore,
	EditMoveWordLeft:    UndoIgnore,
	EditMoveWordRight:   UndoIgnore,
	EditMoveLineUp:      UndoIgnore,
	EditMoveLineDown:    UndoIgnore,
	EditMoveRightUntil:  UndoIgnore,
	EditMoveRightBefore: UndoIgnore,
	EditMoveLeftUntil:   UndoIgnore,
	EditMoveLeftBefore:  UndoIgnore,
	EditUndo:            UndoIgnore,
	EditRedo:            UndoIgnore,

	EditInsertChar:   UndoCoalesce,
	EditInsertString: UndoCoalesce,
	EditBackspace:    UndoCoalesce,
	EditDelete:       UndoCoalesce,

	EditBackspaceWord:        UndoFull,
	EditDeleteWord:           UndoFull,
	EditClear:                UndoFull,
	EditClearToLineEnd:       UndoFull,
	EditCutCurrentLine:       UndoFull,
	EditCutFromStart:         UndoFull,
	EditCutFromLineStart:     UndoFull,
	EditCutToEnd:             UndoFull,
	EditCutToLineEnd:         UndoFull,
	EditCutWordLeft:          UndoFull,
	EditCutWordRight:         UndoFull,
	EditPasteCutBufferBefore: UndoFull,
	EditPasteCutBufferAfter:  UndoFull,
	EditUppercaseWord:        UndoFull,
	EditLowercaseWord:        UndoFull,
	EditCapitalizeChar:       UndoFull,
	EditSwapWords:            UndoFull,
	EditSwapGraphemes:        UndoFull,
	EditCutRightUntil:        UndoFull,
	EditCutRightBefore:       UndoFull,
	EditCutLeftUntil:         UndoFull,
	EditCutLeftBefore:        UndoFull,
}

// UndoBehavior returns the undo policy attached to the command tag.
func (c EditCommand) UndoBehavior() UndoBehavior {
	if behavior, ok := undoBehaviors[c.Kind]; ok {
		return behavior
	}
	return UndoFull
}

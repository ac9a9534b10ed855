package core

// EditMode is the key-binding parser turning decoded keys into engine
// events. Implementations may keep internal state (pending counts, modal
// submodes) but must not touch the buffer.
type EditMode interface {
	ParseEvent(key KeyEvent) Event

	// PromptMode returns the indicator style matching the binding set.
	PromptMode() PromptEditMode
}

// Emacs is the default binding set.
type Emacs struct{}

// NewEmacs creates the default emacs-style edit mode.
func NewEmacs() *Emacs {
	return &Emacs{}
}

func (*Emacs) PromptMode() PromptEditMode {
	return PromptEmacsMode
}

func (*Emacs) ParseEvent(key KeyEvent) Event {
	switch {
	case key.Modifiers&ModCtrl != 0:
		return parseEmacsCtrl(key.Rune)
	case key.Modifiers&ModAlt != 0:
		return parseEmacsAlt(key.Rune)
	}

	switch key.Key {
	case KeyEnter:
		return EnterEvent()
	case KeyTab:
		return HandleTabEvent()
	case KeyBackspace:
		return EditEvent(Backspace())
	case KeyDelete:
		return EditEvent(Delete())
	case KeyUp:
		return UpEvent()
	case KeyDown:
		return DownEvent()
	case KeyLeft:
		return EditEvent(MoveLeft())
	case KeyRight:
		return EditEvent(MoveRight())
	case KeyHome:
		return EditEvent(MoveToLineStart())
	case KeyEnd:
		return EditEvent(MoveToLineEnd())
	}

	if key.Rune != 0 {
		return EditEvent(InsertChar(key.Rune))
	}
	return NoneEvent()
}

func parseEmacsCtrl(r rune) Event {
	switch r {
	case 'a':
		return EditEvent(MoveToLineStart())
	case 'b':
		return EditEvent(MoveLeft())
	case 'c':
		return CtrlCEvent()
	case 'd':
		return CtrlDEvent()
	case 'e':
		return EditEvent(MoveToLineEnd())
	case 'f':
		return EditEvent(MoveRight())
	case 'g':
		return EditEvent(Redo())
	case 'h':
		return EditEvent(Backspace())
	case 'k':
		return EditEvent(CutToLineEnd())
	case 'l':
		return ClearScreenEvent()
	case 'n':
		return NextHistoryEvent()
	case 'p':
		return PreviousHistoryEvent()
	case 'r':
		return SearchHistoryEvent()
	case 't':
		return EditEvent(SwapGraphemes())
	case 'u':
		return EditEvent(CutFromLineStart())
	case 'w':
		return EditEvent(CutWordLeft())
	case 'y':
		return EditEvent(PasteCutBufferBefore())
	case 'z':
		return EditEvent(Undo())
	}
	return NoneEvent()
}

func parseEmacsAlt(r rune) Event {
	switch r {
	case 'b':
		return EditEvent(MoveWordLeft())
	case 'f':
		return EditEvent(MoveWordRight())
	case 'd':
		return EditEvent(CutWordRight())
	case 'u':
		return EditEvent(UppercaseWord())
	case 'l':
		return EditEvent(LowercaseWord())
	case 'c':
		return EditEvent(CapitalizeChar())
	case 't':
		return EditEvent(SwapWords())
	}
	return NoneEvent()
}

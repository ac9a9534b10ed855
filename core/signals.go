package core

// Signal is the terminal outcome of one completed ReadLine cycle.
// Exactly one signal is returned per interaction; receiving it ends the
// session until the caller starts the next read.
type Signal any

// SuccessSignal carries the submitted buffer content.
type SuccessSignal struct {
	content string
}

func (s SuccessSignal) Value() string {
	return s.content
}

// InterruptSignal reports that the user aborted the current line (Ctrl-C).
type InterruptSignal struct{}

// EndOfInputSignal reports end of input on an empty buffer (Ctrl-D).
type EndOfInputSignal struct{}

// ClearScreenSignal asks the caller to clear the screen and read again
// (Ctrl-L). The engine does not clear on its own so that hosts can redraw
// surrounding UI first.
type ClearScreenSignal struct{}

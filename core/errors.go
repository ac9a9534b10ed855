package core

import "errors"

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrNoEventSource = errors.New("no event source configured")
	ErrReadFailed    = errors.New("reading terminal input failed")
)

package core

// snapshot is one undo checkpoint: buffer content plus cursor.
type snapshot struct {
	content        string
	insertionPoint int
}

// undoStack records buffer snapshots with coalescing groups. The entry at
// index always equals the live buffer state after the most recent
// checkpointing command, so Undo restores the entry below it.
type undoStack struct {
	edits []snapshot
	index int

	// groupOpen marks that the top entry is an open coalescing group and
	// may be overwritten by the next coalescing command. Any non-coalescing
	// command closes the group.
	groupOpen bool

	maxEntries int
}

func newUndoStack(maxEntries int) *undoStack {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &undoStack{
		edits:      []snapshot{{}},
		maxEntries: maxEntries,
	}
}

// Reset discards all checkpoints and re-seeds the stack with the current
// state.
func (s *undoStack) Reset(current snapshot) {
	s.edits = []snapshot{current}
	s.index = 0
	s.groupOpen = false
}

// Remember records the post-command state. A full checkpoint always creates
// a new entry and closes the group; a coalescing checkpoint overwrites the
// open group or opens a new one.
func (s *undoStack) Remember(current snapshot, full bool) {
	// Any new edit invalidates the redo range.
	s.edits = s.edits[:s.index+1]

	if !full && s.groupOpen {
		s.edits[s.index] = current
		return
	}

	s.edits = append(s.edits, current)
	s.index++
	s.groupOpen = !full

	if len(s.edits) > s.maxEntries {
		excess := len(s.edits) - s.maxEntries
		s.edits = s.edits[excess:]
		s.index -= excess
	}
}

// CloseGroup ends the open coalescing group, if any. Navigation commands
// call this so a later insert starts a fresh undo step.
func (s *undoStack) CloseGroup() {
	s.groupOpen = false
}

// Undo returns the previous checkpoint.
func (s *undoStack) Undo() (snapshot, error) {
	if s.index == 0 {
		return snapshot{}, ErrNothingToUndo
	}
	s.index--
	s.groupOpen = false
	return s.edits[s.index], nil
}

// Redo returns the next checkpoint.
func (s *undoStack) Redo() (snapshot, error) {
	if s.index >= len(s.edits)-1 {
		return snapshot{}, ErrNothingToRedo
	}
	s.index++
	s.groupOpen = false
	return s.edits[s.index], nil
}

package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// LineBuffer owns the in-progress line content and the insertion point.
// Content may span multiple lines when the validator requests multi-line
// continuation. The insertion point is a byte offset and always sits on a
// grapheme cluster boundary.
type LineBuffer struct {
	lines          string
	insertionPoint int
}

// NewLineBuffer creates an empty line buffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// Get returns the buffer content.
func (lb *LineBuffer) Get() string {
	return lb.lines
}

// SetBuffer replaces the content and moves the insertion point to the end.
func (lb *LineBuffer) SetBuffer(buffer string) {
	lb.lines = buffer
	lb.insertionPoint = len(buffer)
}

// InsertionPoint returns the cursor position as a byte offset.
func (lb *LineBuffer) InsertionPoint() int {
	return lb.insertionPoint
}

// SetInsertionPoint moves the cursor, clamping to the content bounds.
func (lb *LineBuffer) SetInsertionPoint(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(lb.lines) {
		pos = len(lb.lines)
	}
	lb.insertionPoint = pos
}

// IsEmpty reports whether the buffer holds no content.
func (lb *LineBuffer) IsEmpty() bool {
	return lb.lines == ""
}

// Clone returns an independent copy, used to snapshot the user's
// in-progress input before history traversal.
func (lb *LineBuffer) Clone() LineBuffer {
	return *lb
}

// --- Grapheme and word boundaries ---

// graphemeRightIndex returns the byte offset just past the grapheme cluster
// under the insertion point.
func (lb *LineBuffer) graphemeRightIndex() int {
	rest := lb.lines[lb.insertionPoint:]
	if rest == "" {
		return lb.insertionPoint
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
	return lb.insertionPoint + len(cluster)
}

// graphemeLeftIndex returns the byte offset of the grapheme cluster left of
// the insertion point.
func (lb *LineBuffer) graphemeLeftIndex() int {
	head := lb.lines[:lb.insertionPoint]
	last := 0
	offset := 0
	state := -1
	for head != "" {
		var cluster string
		cluster, head, _, state = uniseg.FirstGraphemeClusterInString(head, state)
		last = offset
		offset += len(cluster)
	}
	return last
}

// wordLeftIndex returns the byte offset of the start of the word left of
// the insertion point.
func (lb *LineBuffer) wordLeftIndex() int {
	head := lb.lines[:lb.insertionPoint]
	last := 0
	offset := 0
	state := -1
	for head != "" {
		var word string
		word, head, state = uniseg.FirstWordInString(head, state)
		if strings.TrimSpace(word) != "" {
			last = offset
		}
		offset += len(word)
	}
	return last
}

// wordRightIndex returns the byte offset just past the end of the word
// right of the insertion point.
func (lb *LineBuffer) wordRightIndex() int {
	rest := lb.lines[lb.insertionPoint:]
	offset := lb.insertionPoint
	state := -1
	for rest != "" {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		offset += len(word)
		if strings.TrimSpace(word) != "" {
			return offset
		}
	}
	return len(lb.lines)
}

// --- Movement ---

func (lb *LineBuffer) MoveToStart() {
	lb.insertionPoint = 0
}

func (lb *LineBuffer) MoveToEnd() {
	lb.insertionPoint = len(lb.lines)
}

// MoveToLineStart moves to the first byte of the current logical line.
func (lb *LineBuffer) MoveToLineStart() {
	lb.insertionPoint = lb.currentLineStart()
}

// MoveToLineEnd moves past the last byte of the current logical line.
func (lb *LineBuffer) MoveToLineEnd() {
	lb.insertionPoint = lb.currentLineEnd()
}

func (lb *LineBuffer) MoveLeft() {
	lb.insertionPoint = lb.graphemeLeftIndex()
}

func (lb *LineBuffer) MoveRight() {
	lb.insertionPoint = lb.graphemeRightIndex()
}

func (lb *LineBuffer) MoveWordLeft() {
	lb.insertionPoint = lb.wordLeftIndex()
}

func (lb *LineBuffer) MoveWordRight() {
	lb.insertionPoint = lb.wordRightIndex()
}

// MoveRightUntilChar moves onto the next occurrence of c, or just before it
// when before is set. The cursor does not move if c does not occur.
func (lb *LineBuffer) MoveRightUntilChar(c rune, before bool) {
	idx, ok := lb.findCharRight(c)
	if !ok {
		return
	}
	lb.insertionPoint = idx
	if before {
		lb.insertionPoint = lb.graphemeLeftIndex()
	}
}

// MoveLeftUntilChar mirrors MoveRightUntilChar, scanning backwards.
func (lb *LineBuffer) MoveLeftUntilChar(c rune, before bool) {
	idx, ok := lb.findCharLeft(c)
	if !ok {
		return
	}
	lb.insertionPoint = idx
	if before {
		lb.insertionPoint = lb.graphemeRightIndex()
	}
}

// --- Logical lines ---

func (lb *LineBuffer) currentLineStart() int {
	if idx := strings.LastIndexByte(lb.lines[:lb.insertionPoint], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

func (lb *LineBuffer) currentLineEnd() int {
	if idx := strings.IndexByte(lb.lines[lb.insertionPoint:], '\n'); idx >= 0 {
		return lb.insertionPoint + idx
	}
	return len(lb.lines)
}

// IsCursorAtFirstLine reports whether no newline precedes the cursor.
func (lb *LineBuffer) IsCursorAtFirstLine() bool {
	return !strings.ContainsRune(lb.lines[:lb.insertionPoint], '\n')
}

// IsCursorAtLastLine reports whether no newline follows the cursor.
func (lb *LineBuffer) IsCursorAtLastLine() bool {
	return !strings.ContainsRune(lb.lines[lb.insertionPoint:], '\n')
}

// MoveLineUp moves the cursor to the same column of the previous logical
// line, clamped to that line's length.
func (lb *LineBuffer) MoveLineUp() {
	if lb.IsCursorAtFirstLine() {
		return
	}
	lineStart := lb.currentLineStart()
	column := lb.insertionPoint - lineStart
	prevStart := 0
	if idx := strings.LastIndexByte(lb.lines[:lineStart-1], '\n'); idx >= 0 {
		prevStart = idx + 1
	}
	prevLen := lineStart - 1 - prevStart
	lb.insertionPoint = prevStart + min(column, prevLen)
}

// MoveLineDown moves the cursor to the same column of the next logical
// line, clamped to that line's length.
func (lb *LineBuffer) MoveLineDown() {
	if lb.IsCursorAtLastLine() {
		return
	}
	lineStart := lb.currentLineStart()
	column := lb.insertionPoint - lineStart
	nextStart := lb.currentLineEnd() + 1
	nextEnd := len(lb.lines)
	if idx := strings.IndexByte(lb.lines[nextStart:], '\n'); idx >= 0 {
		nextEnd = nextStart + idx
	}
	lb.insertionPoint = nextStart + min(column, nextEnd-nextStart)
}

// --- Mutation ---

// InsertChar inserts a single rune at the insertion point.
func (lb *LineBuffer) InsertChar(c rune) {
	lb.InsertString(string(c))
}

// InsertString inserts text at the insertion point and moves the cursor
// past it.
func (lb *LineBuffer) InsertString(s string) {
	point := lb.insertionPoint
	lb.lines = lb.lines[:point] + s + lb.lines[point:]
	lb.insertionPoint = point + len(s)
}

// Backspace removes the grapheme cluster left of the cursor.
func (lb *LineBuffer) Backspace() {
	left := lb.graphemeLeftIndex()
	if left < lb.insertionPoint {
		lb.lines = lb.lines[:left] + lb.lines[lb.insertionPoint:]
		lb.insertionPoint = left
	}
}

// Delete removes the grapheme cluster under the cursor.
func (lb *LineBuffer) Delete() {
	right := lb.graphemeRightIndex()
	if right > lb.insertionPoint {
		lb.lines = lb.lines[:lb.insertionPoint] + lb.lines[right:]
	}
}

// BackspaceWord removes from the start of the previous word to the cursor.
func (lb *LineBuffer) BackspaceWord() {
	left := lb.wordLeftIndex()
	lb.lines = lb.lines[:left] + lb.lines[lb.insertionPoint:]
	lb.insertionPoint = left
}

// DeleteWord removes from the cursor to the end of the next word.
func (lb *LineBuffer) DeleteWord() {
	right := lb.wordRightIndex()
	lb.lines = lb.lines[:lb.insertionPoint] + lb.lines[right:]
}

// Clear empties the buffer.
func (lb *LineBuffer) Clear() {
	lb.lines = ""
	lb.insertionPoint = 0
}

// ClearToEnd truncates everything after the cursor.
func (lb *LineBuffer) ClearToEnd() {
	lb.lines = lb.lines[:lb.insertionPoint]
}

// ClearToLineEnd truncates the rest of the current logical line.
func (lb *LineBuffer) ClearToLineEnd() {
	lb.lines = lb.lines[:lb.insertionPoint] + lb.lines[lb.currentLineEnd():]
}

// --- Case transforms and swaps ---

// UppercaseWord uppercases from the cursor to the end of the current word.
func (lb *LineBuffer) UppercaseWord() {
	right := lb.wordRightIndex()
	if right > lb.insertionPoint {
		lb.lines = lb.lines[:lb.insertionPoint] +
			strings.ToUpper(lb.lines[lb.insertionPoint:right]) +
			lb.lines[right:]
		lb.insertionPoint = right
	}
}

// LowercaseWord lowercases from the cursor to the end of the current word.
func (lb *LineBuffer) LowercaseWord() {
	right := lb.wordRightIndex()
	if right > lb.insertionPoint {
		lb.lines = lb.lines[:lb.insertionPoint] +
			strings.ToLower(lb.lines[lb.insertionPoint:right]) +
			lb.lines[right:]
		lb.insertionPoint = right
	}
}

// CapitalizeChar uppercases the rune under the cursor and moves past it.
func (lb *LineBuffer) CapitalizeChar() {
	if lb.insertionPoint >= len(lb.lines) {
		return
	}
	r, size := utf8.DecodeRuneInString(lb.lines[lb.insertionPoint:])
	upper := string(unicode.ToUpper(r))
	lb.lines = lb.lines[:lb.insertionPoint] + upper + lb.lines[lb.insertionPoint+size:]
	lb.insertionPoint += len(upper)
}

// SwapWords exchanges the word left of the cursor with the word right of
// it; no-op if there are not two words around the cursor.
func (lb *LineBuffer) SwapWords() {
	leftStart := lb.wordLeftIndex()
	leftEnd := leftStart
	{
		save := lb.insertionPoint
		lb.insertionPoint = leftStart
		leftEnd = lb.wordRightIndex()
		lb.insertionPoint = save
	}
	rightEnd := lb.wordRightIndex()
	rightStart := rightEnd
	{
		save := lb.insertionPoint
		lb.insertionPoint = rightEnd
		rightStart = lb.wordLeftIndex()
		lb.insertionPoint = save
	}
	if leftEnd >= rightStart || leftStart >= leftEnd || rightStart >= rightEnd {
		return
	}
	lb.lines = lb.lines[:leftStart] +
		lb.lines[rightStart:rightEnd] +
		lb.lines[leftEnd:rightStart] +
		lb.lines[leftStart:leftEnd] +
		lb.lines[rightEnd:]
	lb.insertionPoint = rightEnd
}

// SwapGraphemes exchanges the grapheme clusters on either side of the
// cursor. At the buffer edges the cursor first steps inward.
func (lb *LineBuffer) SwapGraphemes() {
	if lb.insertionPoint == 0 {
		lb.MoveRight()
	} else if lb.insertionPoint == len(lb.lines) {
		lb.MoveLeft()
	}
	point := lb.insertionPoint
	left := lb.graphemeLeftIndex()
	right := lb.graphemeRightIndex()
	if left == point || right == point {
		return
	}
	lb.lines = lb.lines[:left] +
		lb.lines[point:right] +
		lb.lines[left:point] +
		lb.lines[right:]
	lb.insertionPoint = point
}

// --- Character search ---

// findCharRight locates the next occurrence of c after the grapheme under
// the cursor.
func (lb *LineBuffer) findCharRight(c rune) (int, bool) {
	start := lb.graphemeRightIndex()
	idx := strings.IndexRune(lb.lines[start:], c)
	if idx < 0 {
		return 0, false
	}
	return start + idx, true
}

// findCharLeft locates the last occurrence of c before the cursor.
func (lb *LineBuffer) findCharLeft(c rune) (int, bool) {
	idx := strings.LastIndex(lb.lines[:lb.insertionPoint], string(c))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Span is a byte-offset interval of the line, describing the region a
// completion replaces.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span. end must be greater than or equal to start;
// violating that is a programmer error and panics.
func NewSpan(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("can't create a Span whose end < start, start=%d, end=%d", start, end))
	}
	return Span{Start: start, End: end}
}

// Suggestion is one completion candidate: the span to replace and its
// replacement text.
type Suggestion struct {
	Span  Span
	Value string
}

// Completer converts a line and cursor position into an ordered list of
// completion candidates.
type Completer interface {
	Complete(line string, pos int) []Suggestion
}

// CompletionActionHandler reacts to an explicit completion request (tab)
// when no inline hint is active.
type CompletionActionHandler interface {
	Handle(lineBuffer *LineBuffer)
}

// --- History completer ---

// HistoryCompleter completes whole lines from history by prefix.
type HistoryCompleter struct {
	history []string
}

func NewHistoryCompleter(history []string) *HistoryCompleter {
	return &HistoryCompleter{history: history}
}

// Complete returns at most one suggestion: the most recent history entry
// extending the line.
func (c *HistoryCompleter) Complete(line string, pos int) []Suggestion {
	if line == "" {
		return nil
	}
	var last *Suggestion
	for _, entry := range c.history {
		if strings.HasPrefix(entry, line[:pos]) {
			last = &Suggestion{
				Span:  NewSpan(pos, len(line)),
				Value: entry[pos:],
			}
		}
	}
	if last == nil {
		return nil
	}
	return []Suggestion{*last}
}

// --- Default trie completer ---

// DefaultCompleter completes keywords from a rune trie. Only alphanumeric
// and whitespace runes are indexed unless whitelisted via inclusions.
type DefaultCompleter struct {
	root       *completionNode
	inclusions map[rune]struct{}
	minWordLen int
}

// NewDefaultCompleter creates a completer seeded with the given keywords.
func NewDefaultCompleter(words []string) *DefaultCompleter {
	c := newDefaultCompleter(nil)
	c.Insert(words)
	return c
}

// NewDefaultCompleterWithWordLen creates a completer that ignores words
// shorter than minWordLen.
func NewDefaultCompleterWithWordLen(words []string, minWordLen int) *DefaultCompleter {
	c := newDefaultCompleter(nil)
	c.minWordLen = minWordLen
	c.Insert(words)
	return c
}

// NewDefaultCompleterWithInclusions whitelists additional runes, e.g. '-'
// and '_' for flag-like keywords.
func NewDefaultCompleterWithInclusions(inclusions []rune) *DefaultCompleter {
	return newDefaultCompleter(inclusions)
}

func newDefaultCompleter(inclusions []rune) *DefaultCompleter {
	set := make(map[rune]struct{}, len(inclusions))
	for _, r := range inclusions {
		set[r] = struct{}{}
	}
	return &DefaultCompleter{
		root:       newCompletionNode(set),
		inclusions: set,
		minWordLen: 2,
	}
}

// Insert adds keywords to the trie; words shorter than the minimum word
// length are skipped.
func (c *DefaultCompleter) Insert(words []string) {
	for _, word := range words {
		if len(word) >= c.minWordLen {
			c.root.insert([]rune(word))
		}
	}
}

// Clear drops all indexed words.
func (c *DefaultCompleter) Clear() {
	c.root = newCompletionNode(c.inclusions)
}

// WordCount returns the number of completable words in the trie.
func (c *DefaultCompleter) WordCount() int {
	return c.root.wordCount()
}

// MinWordLen returns the minimum indexed word length.
func (c *DefaultCompleter) MinWordLen() int {
	return c.minWordLen
}

// SetMinWordLen changes the minimum word length for future inserts.
func (c *DefaultCompleter) SetMinWordLen(length int) *DefaultCompleter {
	c.minWordLen = length
	return c
}

// Complete walks backwards through the words left of the cursor, matching
// progressively longer suffixes of the line against the trie. Candidates
// that do not extend past their span are dropped.
func (c *DefaultCompleter) Complete(line string, pos int) []Suggestion {
	if line == "" {
		return nil
	}

	var completions []Suggestion
	splitted := strings.Split(line[:pos], " ")
	spanLine := ""
	whitespaces := 0

	for i := len(splitted) - 1; i >= 0; i-- {
		part := splitted[i]
		if part == "" {
			whitespaces++
			continue
		}
		if spanLine == "" {
			spanLine = part
		} else {
			spanLine = part + " " + spanLine
		}

		extensions, ok := c.root.complete([]rune(spanLine))
		if !ok {
			continue
		}
		sort.Strings(extensions)
		for _, ext := range extensions {
			suggestion := Suggestion{
				Span:  NewSpan(pos-len(spanLine)-whitespaces, pos),
				Value: spanLine + ext,
			}
			if len(suggestion.Value) > suggestion.Span.End-suggestion.Span.Start {
				completions = append(completions, suggestion)
			}
		}
	}

	return dedupSuggestions(completions)
}

func dedupSuggestions(in []Suggestion) []Suggestion {
	out := in[:0]
	for i, s := range in {
		if i > 0 && s == in[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}

type completionNode struct {
	subnodes   map[rune]*completionNode
	leaf       bool
	inclusions map[rune]struct{}
}

func newCompletionNode(inclusions map[rune]struct{}) *completionNode {
	return &completionNode{
		subnodes:   make(map[rune]*completionNode),
		inclusions: inclusions,
	}
}

func (n *completionNode) indexable(r rune) bool {
	if _, ok := n.inclusions[r]; ok {
		return true
	}
	return isAlphanumeric(r) || isWhitespace(r)
}

func (n *completionNode) insert(word []rune) {
	if len(word) == 0 {
		n.leaf = true
		return
	}
	r := word[0]
	if !n.indexable(r) {
		n.leaf = true
		return
	}
	subnode, ok := n.subnodes[r]
	if !ok {
		subnode = newCompletionNode(n.inclusions)
		n.subnodes[r] = subnode
	}
	subnode.insert(word[1:])
}

func (n *completionNode) complete(prefix []rune) ([]string, bool) {
	if len(prefix) == 0 {
		return n.collect(""), true
	}
	subnode, ok := n.subnodes[prefix[0]]
	if !ok {
		return nil, false
	}
	return subnode.complete(prefix[1:])
}

func (n *completionNode) collect(partial string) []string {
	var completions []string
	if n.leaf {
		completions = append(completions, partial)
	}
	runes := make([]rune, 0, len(n.subnodes))
	for r := range n.subnodes {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		completions = append(completions, n.subnodes[r].collect(partial+string(r))...)
	}
	return completions
}

func (n *completionNode) wordCount() int {
	count := 0
	if n.leaf {
		count++
	}
	for _, sub := range n.subnodes {
		count += sub.wordCount()
	}
	return count
}

func isAlphanumeric(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r > 127
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// --- Circular completion handler ---

// CircularCompletionHandler cycles through the completer's suggestions on
// repeated requests, replacing the span with the next candidate each time.
type CircularCompletionHandler struct {
	completer Completer

	initialLine string
	initialPos  int
	index       int
}

// NewCircularCompletionHandler wraps a completer in a cycling tab handler.
func NewCircularCompletionHandler(completer Completer) *CircularCompletionHandler {
	return &CircularCompletionHandler{completer: completer}
}

func (h *CircularCompletionHandler) Handle(lineBuffer *LineBuffer) {
	if h.completer == nil {
		return
	}

	line := lineBuffer.Get()
	pos := lineBuffer.InsertionPoint()

	// A fresh completion request restarts the cycle; repeated requests on
	// the line produced by the previous cycle continue it.
	if line != h.completedLine() || pos != h.completedPos() {
		h.initialLine = line
		h.initialPos = pos
		h.index = 0
	}

	suggestions := h.completer.Complete(h.initialLine, h.initialPos)
	if len(suggestions) == 0 {
		return
	}

	suggestion := suggestions[h.index%len(suggestions)]
	h.index++

	replaced := h.initialLine[:suggestion.Span.Start] +
		suggestion.Value +
		h.initialLine[suggestion.Span.End:]
	lineBuffer.SetBuffer(replaced)
	lineBuffer.SetInsertionPoint(suggestion.Span.Start + len(suggestion.Value))
}

// completedLine reconstructs the line produced by the previous cycle step,
// so the handler can tell "tab again" apart from new typing.
func (h *CircularCompletionHandler) completedLine() string {
	if h.index == 0 {
		return h.initialLine
	}
	suggestions := h.completer.Complete(h.initialLine, h.initialPos)
	if len(suggestions) == 0 {
		return h.initialLine
	}
	s := suggestions[(h.index-1)%len(suggestions)]
	return h.initialLine[:s.Span.Start] + s.Value + h.initialLine[s.Span.End:]
}

func (h *CircularCompletionHandler) completedPos() int {
	if h.index == 0 {
		return h.initialPos
	}
	suggestions := h.completer.Complete(h.initialLine, h.initialPos)
	if len(suggestions) == 0 {
		return h.initialPos
	}
	s := suggestions[(h.index-1)%len(suggestions)]
	return s.Span.Start + len(s.Value)
}

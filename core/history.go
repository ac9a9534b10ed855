package core

import "strings"

// NavigationKind tags the active history query semantics.
type NavigationKind int

const (
	// NavigationNormal walks entries chronologically.
	NavigationNormal NavigationKind = iota
	// NavigationPrefixSearch only visits entries starting with a prefix
	// captured once at traversal entry.
	NavigationPrefixSearch
	// NavigationSubstringSearch visits entries containing a live-edited
	// needle; used only by the interactive history search mode.
	NavigationSubstringSearch
)

// HistoryNavigationQuery is the active query over the history store.
// Exactly one query is active at a time; the engine replaces it wholesale
// on every traversal or search entry.
type HistoryNavigationQuery struct {
	Kind NavigationKind

	// Original preserves the in-progress buffer for NavigationNormal so
	// that walking back past the newest entry restores the user's typing.
	Original LineBuffer

	// Prefix is set for NavigationPrefixSearch.
	Prefix string

	// Substring is set for NavigationSubstringSearch.
	Substring string
}

// NormalNavigation builds a plain chronological query preserving the
// user's in-progress buffer.
func NormalNavigation(original LineBuffer) HistoryNavigationQuery {
	return HistoryNavigationQuery{Kind: NavigationNormal, Original: original}
}

// PrefixSearchNavigation builds a prefix query.
func PrefixSearchNavigation(prefix string) HistoryNavigationQuery {
	return HistoryNavigationQuery{Kind: NavigationPrefixSearch, Prefix: prefix}
}

// SubstringSearchNavigation builds a substring query.
func SubstringSearchNavigation(substring string) HistoryNavigationQuery {
	return HistoryNavigationQuery{Kind: NavigationSubstringSearch, Substring: substring}
}

// History is the append-only chronological store with a navigation cursor.
type History interface {
	// Append adds an entry after a successful submit.
	Append(entry string)

	// Back and Forward step the navigation cursor under the active query.
	// Stepping past the oldest or newest match leaves the cursor in place.
	Back()
	Forward()

	// SetNavigation replaces the active query and rewinds the cursor to
	// the newest position.
	SetNavigation(navigation HistoryNavigationQuery)
	GetNavigation() HistoryNavigationQuery

	// StringAtCursor returns the entry under the cursor, or false when the
	// cursor sits past the newest entry.
	StringAtCursor() (string, bool)

	// IterChronologic returns the entries oldest first.
	IterChronologic() []string
}

// InMemoryHistory is the default History backed by a bounded slice.
// Persistence formats are deliberately out of scope; file- or
// database-backed stores implement the same interface.
type InMemoryHistory struct {
	entries  []string
	capacity int

	// cursor indexes entries; len(entries) means "past the newest entry",
	// i.e. the user's own in-progress line.
	cursor     int
	navigation HistoryNavigationQuery
}

const defaultHistoryCapacity = 1000

// NewInMemoryHistory creates an empty history with the default capacity.
func NewInMemoryHistory() *InMemoryHistory {
	return NewInMemoryHistoryWithCapacity(defaultHistoryCapacity)
}

// NewInMemoryHistoryWithCapacity creates an empty history holding at most
// capacity entries; the oldest entries are dropped first.
func NewInMemoryHistoryWithCapacity(capacity int) *InMemoryHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCapacity
	}
	return &InMemoryHistory{capacity: capacity}
}

func (h *InMemoryHistory) Append(entry string) {
	if entry == "" {
		return
	}
	// Suppress immediate duplicates.
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		h.cursor = len(h.entries)
		return
	}
	if len(h.entries) == h.capacity {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, entry)
	h.cursor = len(h.entries)
}

// matches reports whether an entry satisfies the active query.
func (h *InMemoryHistory) matches(entry string) bool {
	switch h.navigation.Kind {
	case NavigationPrefixSearch:
		return strings.HasPrefix(entry, h.navigation.Prefix)
	case NavigationSubstringSearch:
		return strings.Contains(entry, h.navigation.Substring)
	default:
		return true
	}
}

func (h *InMemoryHistory) Back() {
	for i := h.cursor - 1; i >= 0; i-- {
		if h.matches(h.entries[i]) {
			h.cursor = i
			return
		}
	}
}

func (h *InMemoryHistory) Forward() {
	for i := h.cursor + 1; i < len(h.entries); i++ {
		if h.matches(h.entries[i]) {
			h.cursor = i
			return
		}
	}
	// No newer match: park past the newest entry so the engine restores
	// the original buffer or search needle.
	if h.cursor < len(h.entries) {
		h.cursor = len(h.entries)
	}
}

func (h *InMemoryHistory) SetNavigation(navigation HistoryNavigationQuery) {
	h.navigation = navigation
	h.cursor = len(h.entries)
}

func (h *InMemoryHistory) GetNavigation() HistoryNavigationQuery {
	return h.navigation
}

func (h *InMemoryHistory) StringAtCursor() (string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return "", false
	}
	return h.entries[h.cursor], true
}

func (h *InMemoryHistory) IterChronologic() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Package accordion implements the exclusive-open selection of an accordion list.
//
// A Selection is either closed or open at exactly one index, so the
// "at most one entry expanded" rule holds by construction. Toggle is a pure
// reducer; Effects derives the visual transitions a renderer should play when
// moving from one selection to the next.
package accordion

import (
	"strconv"
	"strings"
)

// none is the wire form of a closed selection.
const none = "none"

// Selection is the expanded entry of an accordion, if any.
// The zero value is Closed.
type Selection struct {
	index int
	open  bool
}

// Closed returns a selection with no entry expanded.
func Closed() Selection {
	return Selection{}
}

// OpenAt returns a selection with entry i expanded.
func OpenAt(i int) Selection {
	return Selection{index: i, open: true}
}

// Initial is the selection of a freshly mounted accordion: the first entry is open.
func Initial() Selection {
	return OpenAt(0)
}

// Index reports the open entry and whether any entry is open.
func (s Selection) Index() (int, bool) {
	return s.index, s.open
}

// IsClosed reports whether no entry is open.
func (s Selection) IsClosed() bool {
	return !s.open
}

// IsOpen reports whether entry i is the open entry.
func (s Selection) IsOpen(i int) bool {
	return s.open && s.index == i
}

// Toggle returns the selection after the user activates entry i.
// Toggling the open entry closes it; toggling any other entry opens that entry
// and implicitly closes the previous one.
func (s Selection) Toggle(i int) Selection {
	if s.IsOpen(i) {
		return Closed()
	}
	return OpenAt(i)
}

// String returns the wire form: "none" or the decimal index.
func (s Selection) String() string {
	if !s.open {
		return none
	}
	return strconv.Itoa(s.index)
}

// Parse reads a selection from its wire form for a list of n entries.
// Parsing never fails: anything that is not an index in [0, n) is Closed.
func Parse(raw string, n int) Selection {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == none {
		return Closed()
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return Closed()
	}
	return OpenAt(i)
}

// ParseIndex reads an entry index for a list of n entries.
func ParseIndex(raw string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

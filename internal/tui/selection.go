package tui

import (
	"strconv"
	"strings"
)

// Selection is the ordered set of selected state codes shared by every
// view. A click replaces the set, a shift-click toggles membership, and
// an empty set means "show the national picture".
type Selection struct {
	states []string
}

// Replace makes state the only selected state. Clicking the already
// sole-selected state clears the selection instead.
func (s *Selection) Replace(state string) {
	if len(s.states) == 1 && s.states[0] == state {
		s.Clear()
		return
	}
	s.states = []string{state}
}

// Toggle adds state to the selection, or removes it when present.
// Insertion order is preserved for the remaining states.
func (s *Selection) Toggle(state string) {
	for i, st := range s.states {
		if st == state {
			s.states = append(s.states[:i], s.states[i+1:]...)
			return
		}
	}
	s.states = append(s.states, state)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.states = nil
}

// Has reports whether state is selected.
func (s *Selection) Has(state string) bool {
	for _, st := range s.states {
		if st == state {
			return true
		}
	}
	return false
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.states) == 0
}

// Len returns the number of selected states.
func (s *Selection) Len() int {
	return len(s.states)
}

// States returns the selected state codes in insertion order.
func (s *Selection) States() []string {
	return s.states
}

// Summary renders a short status-bar description of the selection.
func (s *Selection) Summary() string {
	switch {
	case len(s.states) == 0:
		return ""
	case len(s.states) <= 4:
		return strings.Join(s.states, ",")
	default:
		return strings.Join(s.states[:3], ",") + "+" + strconv.Itoa(len(s.states)-3)
	}
}

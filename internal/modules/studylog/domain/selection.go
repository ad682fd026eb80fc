package domain

import (
	"sort"
	"time"
)

// Selection is the set of course names staged for the next log commit.
// Toggling a present name removes it and toggling an absent name adds it, so
// toggling twice is always a no-op.
type Selection struct {
	names map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{names: make(map[string]struct{})}
}

// Toggle flips membership of name and reports whether it is selected after
// the flip.
func (s *Selection) Toggle(name string) bool {
	if _, ok := s.names[name]; ok {
		delete(s.names, name)
		return false
	}
	s.names[name] = struct{}{}
	return true
}

func (s *Selection) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns the selected course names in sorted order.
func (s *Selection) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Selection) Len() int {
	return len(s.names)
}

func (s *Selection) Clear() {
	s.names = make(map[string]struct{})
}

// JournalEntry is one locally recorded commit. The journal is a convenience
// record, not the source of truth; the API owns the real log.
type JournalEntry struct {
	ID          int64
	CourseNames []string
	CommittedAt time.Time
}

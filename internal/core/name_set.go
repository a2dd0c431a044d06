package core

import (
	"strings"

	"upgrade-editor/internal/types"
)

// NameSet is an insertion-ordered set of upgrade names. Order is kept so
// a persisted line round-trips byte for byte.
type NameSet struct {
	order []string
	index map[string]struct{}
}

func NewNameSet(names ...string) NameSet {
	set := NameSet{index: map[string]struct{}{}}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// ParseLine splits a persisted line into a set. Empty input, the "None"
// sentinel and empty tokens all normalize to nothing.
func ParseLine(line string, separator rune) NameSet {
	set := NewNameSet()
	if line == "" || line == types.NoneSentinel {
		return set
	}
	for _, token := range strings.Split(line, string(separator)) {
		set.Add(token)
	}
	return set
}

// SerializeLine joins the set back into a persisted line.
func SerializeLine(set NameSet, separator rune) string {
	if set.Len() == 0 {
		return types.NoneSentinel
	}
	return strings.Join(set.order, string(separator))
}

func (s *NameSet) Add(name string) bool {
	if name == "" {
		return false
	}
	if s.index == nil {
		s.index = map[string]struct{}{}
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

func (s *NameSet) Remove(name string) bool {
	if _, ok := s.index[name]; !ok {
		return false
	}
	delete(s.index, name)
	for i, existing := range s.order {
		if existing == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s NameSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s NameSet) Len() int {
	return len(s.order)
}

// Names returns a copy of the members in insertion order.
func (s NameSet) Names() []string {
	return append([]string(nil), s.order...)
}

func (s *NameSet) Clear() {
	s.order = nil
	s.index = map[string]struct{}{}
}

// Retain drops every member for which keep returns false.
func (s *NameSet) Retain(keep func(name string) bool) {
	for _, name := range s.Names() {
		if !keep(name) {
			s.Remove(name)
		}
	}
}

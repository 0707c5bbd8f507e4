package tree

import "slices"

// OpenSet holds the identifiers of nodes whose children are shown. The zero
// value is an empty set. The empty identifier is never a member.
type OpenSet struct {
	m map[string]Identifier
}

// Insert adds id and reports whether it was absent. Inserting the empty
// identifier does nothing and returns false.
func (s *OpenSet) Insert(id Identifier) bool {
	if len(id) == 0 {
		return false
	}
	key := id.String()
	if _, ok := s.m[key]; ok {
		return false
	}
	if s.m == nil {
		s.m = make(map[string]Identifier)
	}
	s.m[key] = id.Clone()
	return true
}

// Remove deletes id and reports whether it was present.
func (s *OpenSet) Remove(id Identifier) bool {
	key := id.String()
	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	return true
}

// Contains reports whether id is a member. A nil set contains nothing.
func (s *OpenSet) Contains(id Identifier) bool {
	if s == nil || len(id) == 0 {
		return false
	}
	_, ok := s.m[id.String()]
	return ok
}

// Len returns the number of members.
func (s *OpenSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Clear removes every member.
func (s *OpenSet) Clear() {
	clear(s.m)
}

// Identifiers returns copies of all members in tree order.
func (s *OpenSet) Identifiers() []Identifier {
	if s == nil {
		return nil
	}
	out := make([]Identifier, 0, len(s.m))
	for _, id := range s.m {
		out = append(out, id.Clone())
	}
	slices.SortFunc(out, func(a, b Identifier) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return out
}

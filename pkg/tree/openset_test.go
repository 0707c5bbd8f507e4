package tree

import "testing"

func TestOpenSetZeroValue(t *testing.T) {
	var s OpenSet
	if s.Contains(Identifier{0}) || s.Len() != 0 {
		t.Fatal("zero value should be empty")
	}
	if s.Remove(Identifier{0}) {
		t.Error("Remove on empty set should report absent")
	}
	s.Clear()
}

func TestOpenSetInsertRemove(t *testing.T) {
	var s OpenSet
	if !s.Insert(Identifier{1, 2}) {
		t.Fatal("first insert should report absent")
	}
	if s.Insert(Identifier{1, 2}) {
		t.Error("second insert should report present")
	}
	if !s.Contains(Identifier{1, 2}) || s.Len() != 1 {
		t.Error("set should contain exactly [1 2]")
	}
	if !s.Remove(Identifier{1, 2}) {
		t.Error("remove should report present")
	}
	if s.Remove(Identifier{1, 2}) {
		t.Error("second remove should report absent")
	}
}

func TestOpenSetRejectsEmpty(t *testing.T) {
	var s OpenSet
	if s.Insert(nil) || s.Insert(Identifier{}) {
		t.Error("empty identifier must not be inserted")
	}
	if s.Contains(nil) || s.Len() != 0 {
		t.Error("empty identifier must never be a member")
	}
}

func TestOpenSetCopiesKeys(t *testing.T) {
	var s OpenSet
	id := Identifier{3, 4}
	s.Insert(id)
	id[1] = 9
	if !s.Contains(Identifier{3, 4}) {
		t.Error("mutating the caller's slice changed the member")
	}
}

func TestOpenSetIdentifiersOrdered(t *testing.T) {
	var s OpenSet
	for _, id := range []Identifier{{2}, {1, 3}, {1}, {10}, {1, 0, 5}} {
		s.Insert(id)
	}
	got := s.Identifiers()
	want := []Identifier{{1}, {1, 0, 5}, {1, 3}, {2}, {10}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNilOpenSetContainsNothing(t *testing.T) {
	var s *OpenSet
	if s.Contains(Identifier{0}) || s.Len() != 0 || s.Identifiers() != nil {
		t.Error("nil set should be empty")
	}
}

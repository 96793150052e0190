package domain

import (
	"reflect"
	"testing"
)

func TestNewIDSet_DropsDuplicatesAndEmpty(t *testing.T) {
	s := NewIDSet("b", "", "a", "b")
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected [b a], got %v", got)
	}
}

func TestIDSet_ToggleIsSelfInverse(t *testing.T) {
	s := NewIDSet("x")
	once := s.Toggle("y")
	if !once.Has("y") || once.Len() != 2 {
		t.Fatalf("expected y added, got %v", once.IDs())
	}
	twice := once.Toggle("y")
	if twice.Has("y") || !reflect.DeepEqual(twice.IDs(), []string{"x"}) {
		t.Errorf("expected [x], got %v", twice.IDs())
	}
}

func TestIDSet_Immutable(t *testing.T) {
	s := NewIDSet("a", "b")
	_ = s.With("c")
	_ = s.Without("a")
	if !reflect.DeepEqual(s.IDs(), []string{"a", "b"}) {
		t.Errorf("original set mutated: %v", s.IDs())
	}

	ids := s.IDs()
	ids[0] = "z"
	if s.Has("z") {
		t.Error("IDs must return a copy")
	}
}

func TestIDSet_WithoutAll(t *testing.T) {
	s := NewIDSet("a", "b", "c", "d")
	got := s.WithoutAll([]string{"b", "d", "missing"})
	if !reflect.DeepEqual(got.IDs(), []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", got.IDs())
	}
}

func TestIDSet_ZeroValue(t *testing.T) {
	var s IDSet
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("zero value should be empty")
	}
	if s.Has("a") {
		t.Error("zero value should not contain ids")
	}
	if got := s.Sorted(); len(got) != 0 {
		t.Errorf("expected no ids, got %v", got)
	}
}

func TestIDSet_Sorted(t *testing.T) {
	s := NewIDSet("dr-9", "dr-1", "dr-10")
	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"dr-1", "dr-10", "dr-9"}) {
		t.Errorf("unexpected order %v", got)
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"dr-9", "dr-1", "dr-10"}) {
		t.Errorf("Sorted must not reorder the set, got %v", got)
	}
}

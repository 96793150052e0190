package domain

import "sort"

// IDSet is an immutable set of ids that remembers insertion order.
// The zero value is an empty set.
type IDSet struct {
	ids []string
}

// NewIDSet builds a set from ids, dropping duplicates and empty strings.
func NewIDSet(ids ...string) IDSet {
	var s IDSet
	for _, id := range ids {
		if id == "" || s.Has(id) {
			continue
		}
		s.ids = append(s.ids, id)
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// With returns a copy of the set including id.
func (s IDSet) With(id string) IDSet {
	if s.Has(id) {
		return s
	}
	out := make([]string, len(s.ids), len(s.ids)+1)
	copy(out, s.ids)
	return IDSet{ids: append(out, id)}
}

// Without returns a copy of the set excluding id.
func (s IDSet) Without(id string) IDSet {
	return s.WithoutAll([]string{id})
}

// WithoutAll returns a copy of the set excluding every id in drop.
func (s IDSet) WithoutAll(drop []string) IDSet {
	if len(drop) == 0 || len(s.ids) == 0 {
		return s
	}
	dropSet := make(map[string]struct{}, len(drop))
	for _, id := range drop {
		dropSet[id] = struct{}{}
	}
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if _, ok := dropSet[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return IDSet{ids: out}
}

// Toggle adds id when absent and removes it when present.
func (s IDSet) Toggle(id string) IDSet {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// Len returns the number of ids.
func (s IDSet) Len() int { return len(s.ids) }

// IsEmpty reports whether the set has no ids.
func (s IDSet) IsEmpty() bool { return len(s.ids) == 0 }

// IDs returns the ids in insertion order.
func (s IDSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Sorted returns the ids in lexical order.
func (s IDSet) Sorted() []string {
	out := s.IDs()
	sort.Strings(out)
	return out
}

// Selection is the filter state of one dashboard: selected department and doctor ids.
type Selection struct {
	Departments IDSet
	Doctors     IDSet
}

// NewSelection builds a selection from raw id lists.
func NewSelection(departmentIDs, doctorIDs []string) Selection {
	return Selection{
		Departments: NewIDSet(departmentIDs...),
		Doctors:     NewIDSet(doctorIDs...),
	}
}

package model

// A mark is a piece of information that can be attached to a node, such as it
// being emphasized, in code font, or a link. It has a kind and optionally a
// set of attributes that provide further information (such as the target of
// the link, or the style of a textStyle mark).
type Mark struct {
	Type  MarkKind
	Attrs Attrs
}

// NewMark creates a mark of the given kind.
func NewMark(typ MarkKind, attrs Attrs) *Mark {
	return &Mark{Type: typ, Attrs: attrs}
}

// Given a set of marks, create a new set which contains this one as well, in
// the right position. If this mark is already in the set, the set itself is
// returned. A mark of the same kind already in the set is replaced by this
// one: marks exclude their own kind.
func (m *Mark) AddToSet(set []*Mark) []*Mark {
	cpy := make([]*Mark, 0, len(set)+1)
	placed := false
	for _, other := range set {
		if m.Eq(other) {
			return set
		}
		if other.Type == m.Type {
			continue
		}
		if !placed && other.Type > m.Type {
			cpy = append(cpy, m)
			placed = true
		}
		cpy = append(cpy, other)
	}
	if !placed {
		cpy = append(cpy, m)
	}
	return cpy
}

// Remove this mark from the given set, returning a new set. If this mark is
// not in the set, the set itself is returned.
func (m *Mark) RemoveFromSet(set []*Mark) []*Mark {
	for i, other := range set {
		if m.Eq(other) {
			cpy := make([]*Mark, 0, len(set)-1)
			cpy = append(cpy, set[:i]...)
			return append(cpy, set[i+1:]...)
		}
	}
	return set
}

// Test whether this mark is in the given set of marks.
func (m *Mark) IsInSet(set []*Mark) bool {
	for _, other := range set {
		if m.Eq(other) {
			return true
		}
	}
	return false
}

// Test whether this mark has the same type and attributes as another mark.
func (m *Mark) Eq(other *Mark) bool {
	if m == other {
		return true
	}
	return m.Type == other.Type && m.Attrs.Eq(other.Attrs)
}

// Test whether two sets of marks are identical.
func SameMarkSet(a, b []*Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

// Create a properly sorted mark set from an unsorted list of marks.
func MarkSetFrom(marks []*Mark) []*Mark {
	if len(marks) == 0 {
		return NoMarks
	}
	if len(marks) == 1 {
		return marks
	}
	set := NoMarks
	for _, m := range marks {
		set = m.AddToSet(set)
	}
	return set
}

// FindMark returns the first mark of the given kind in a set, or nil.
func FindMark(set []*Mark, typ MarkKind) *Mark {
	for _, m := range set {
		if m.Type == typ {
			return m
		}
	}
	return nil
}

// RemoveKindFromSet removes every mark of the given kind from a set.
func RemoveKindFromSet(set []*Mark, typ MarkKind) []*Mark {
	if FindMark(set, typ) == nil {
		return set
	}
	cpy := make([]*Mark, 0, len(set))
	for _, m := range set {
		if m.Type != typ {
			cpy = append(cpy, m)
		}
	}
	return cpy
}

// The empty set of marks.
var NoMarks = []*Mark{}
